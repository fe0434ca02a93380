package repository

import (
	"errors"
	"time"

	taskdomain "github.com/joelcalkins28/JobTracker-CRM/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *taskdomain.Task) error
	FindByID(userID, id string) (*taskdomain.Task, error)
	ListByUser(userID string, status *taskdomain.TaskStatus, limit, offset int) ([]*taskdomain.Task, int64, error)
	Update(task *taskdomain.Task) error
	Delete(userID, id string) error
}

// taskRepository implements TaskRepository using GORM
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new GORM-based TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *taskdomain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *taskRepository) FindByID(userID, id string) (*taskdomain.Task, error) {
	var task taskdomain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByUser(userID string, status *taskdomain.TaskStatus, limit, offset int) ([]*taskdomain.Task, int64, error) {
	var tasks []*taskdomain.Task
	var total int64

	query := r.db.Model(&taskdomain.Task{}).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}

	// Due-dated tasks first, nearest deadline up top; undated tasks trail.
	err := query.Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Limit(limit).Offset(offset).Find(&tasks).Error

	return tasks, total, err
}

func (r *taskRepository) Update(task *taskdomain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&taskdomain.Task{}).Error
}

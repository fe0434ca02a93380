package repository

import (
	"errors"
	"time"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for job application persistence.
type ApplicationRepository interface {
	Create(app *appdomain.JobApplication) error
	FindByID(userID, id string) (*appdomain.JobApplication, error)
	ListByUser(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error)
	Update(app *appdomain.JobApplication) error
	Delete(userID, id string) error
}

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new instance of applicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{
		db: db,
	}
}

func (r *applicationRepository) Create(app *appdomain.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(userID, id string) (*appdomain.JobApplication, error) {
	var app appdomain.JobApplication
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByUser(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error) {
	query := r.db.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var apps []*appdomain.JobApplication
	err := query.Order("date_applied DESC, created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Update(app *appdomain.JobApplication) error {
	app.UpdatedAt = time.Now()
	return r.db.Save(app).Error
}

func (r *applicationRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&appdomain.JobApplication{}).Error
}

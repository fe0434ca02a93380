package usecase

import (
	"errors"

	taskdomain "github.com/joelcalkins28/JobTracker-CRM/internal/task/domain"
	taskdto "github.com/joelcalkins28/JobTracker-CRM/internal/task/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/task/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskUsecase defines the task operations.
type TaskUsecase interface {
	Create(userID string, req *taskdto.CreateTaskRequest) (*taskdomain.Task, error)
	Get(userID, id string) (*taskdomain.Task, error)
	List(userID string, status *taskdomain.TaskStatus, limit, offset int) ([]*taskdomain.Task, int64, error)
	Update(userID, id string, req *taskdto.UpdateTaskRequest) (*taskdomain.Task, error)
	UpdateStatus(userID, id string, status taskdomain.TaskStatus) (*taskdomain.Task, error)
	Delete(userID, id string) error
}

type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) Create(userID string, req *taskdto.CreateTaskRequest) (*taskdomain.Task, error) {
	task := &taskdomain.Task{
		UserID:        userID,
		ApplicationID: req.ApplicationID,
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate,
		Priority:      taskdomain.PriorityMedium,
		Status:        taskdomain.TaskStatusPending,
	}
	if req.Priority != "" {
		task.Priority = taskdomain.Priority(req.Priority)
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Get(userID, id string) (*taskdomain.Task, error) {
	task, err := u.taskRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) List(userID string, status *taskdomain.TaskStatus, limit, offset int) ([]*taskdomain.Task, int64, error) {
	return u.taskRepo.ListByUser(userID, status, limit, offset)
}

func (u *taskUsecase) Update(userID, id string, req *taskdto.UpdateTaskRequest) (*taskdomain.Task, error) {
	task, err := u.taskRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != nil {
		task.Priority = taskdomain.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = taskdomain.TaskStatus(*req.Status)
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) UpdateStatus(userID, id string, status taskdomain.TaskStatus) (*taskdomain.Task, error) {
	task, err := u.taskRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Status = status
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Delete(userID, id string) error {
	task, err := u.taskRepo.FindByID(userID, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return u.taskRepo.Delete(userID, id)
}

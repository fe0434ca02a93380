package dto

import (
	"time"

	taskdomain "github.com/joelcalkins28/JobTracker-CRM/internal/task/domain"
)

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	ApplicationID string     `json:"application_id"`
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	Priority      string     `json:"priority"`
}

// UpdateTaskRequest is the payload for updating a task. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
}

// UpdateTaskStatusRequest moves a task between status columns.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskListResponse wraps a page of tasks with the total count.
type TaskListResponse struct {
	Tasks []*taskdomain.Task `json:"tasks"`
	Total int64              `json:"total"`
}

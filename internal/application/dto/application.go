package dto

import (
	"time"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
)

type CreateApplicationRequest struct {
	JobTitle       string                      `json:"job_title" binding:"required"`
	Company        string                      `json:"company" binding:"required"`
	Location       string                      `json:"location"`
	Description    string                      `json:"description"`
	Salary         string                      `json:"salary"`
	ApplicationURL string                      `json:"application_url"`
	Status         appdomain.ApplicationStatus `json:"status"`
	DateApplied    *time.Time                  `json:"date_applied"`
}

type UpdateApplicationRequest struct {
	JobTitle       string                      `json:"job_title" binding:"required"`
	Company        string                      `json:"company" binding:"required"`
	Location       string                      `json:"location"`
	Description    string                      `json:"description"`
	Salary         string                      `json:"salary"`
	ApplicationURL string                      `json:"application_url"`
	Status         appdomain.ApplicationStatus `json:"status" binding:"required"`
	DateApplied    *time.Time                  `json:"date_applied"`
}

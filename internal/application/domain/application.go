package domain

import "time"

// ApplicationStatus tracks where an application sits in the pipeline.
type ApplicationStatus string

const (
	StatusWishlist    ApplicationStatus = "Wishlist"
	StatusApplied     ApplicationStatus = "Applied"
	StatusPhoneScreen ApplicationStatus = "Phone Screen"
	StatusInterview   ApplicationStatus = "Interview"
	StatusOffer       ApplicationStatus = "Offer"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusWithdrawn   ApplicationStatus = "Withdrawn"
)

// ValidStatus reports whether s is one of the known pipeline statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusWishlist, StatusApplied, StatusPhoneScreen, StatusInterview,
		StatusOffer, StatusRejected, StatusAccepted, StatusWithdrawn:
		return true
	}
	return false
}

// JobApplication is one tracked job application.
type JobApplication struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	UserID         string            `json:"user_id" gorm:"index;not null"`
	JobTitle       string            `json:"job_title" gorm:"not null"`
	Company        string            `json:"company" gorm:"not null"`
	Location       string            `json:"location,omitempty"`
	Description    string            `json:"description,omitempty"`
	Salary         string            `json:"salary,omitempty"`
	ApplicationURL string            `json:"application_url,omitempty"`
	Status         ApplicationStatus `json:"status" gorm:"default:Applied"`
	DateApplied    time.Time         `json:"date_applied"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

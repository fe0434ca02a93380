package domain

import "time"

// DocumentType classifies an uploaded document.
type DocumentType string

const (
	DocumentResume         DocumentType = "Resume"
	DocumentCoverLetter    DocumentType = "Cover Letter"
	DocumentPortfolio      DocumentType = "Portfolio"
	DocumentRecommendation DocumentType = "Recommendation"
	DocumentOther          DocumentType = "Other"
)

// Document is metadata for a file attached to an application. The file
// itself lives wherever FileURL points; this service stores metadata only.
type Document struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	UserID        string       `json:"user_id" gorm:"index;not null"`
	ApplicationID string       `json:"application_id" gorm:"index;not null"`
	Name          string       `json:"name" gorm:"not null"`
	Type          DocumentType `json:"type" gorm:"default:Other"`
	FileURL       string       `json:"file_url" gorm:"not null"`
	CreatedAt     time.Time    `json:"created_at"`
}

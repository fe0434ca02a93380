package repository

import (
	"time"

	docdomain "github.com/joelcalkins28/JobTracker-CRM/internal/document/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository defines the interface for document metadata persistence.
type DocumentRepository interface {
	Create(doc *docdomain.Document) error
	ListByApplication(userID, applicationID string) ([]*docdomain.Document, error)
	Delete(userID, id string) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new instance of documentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) Create(doc *docdomain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now()
	return r.db.Create(doc).Error
}

func (r *documentRepository) ListByApplication(userID, applicationID string) ([]*docdomain.Document, error) {
	var docs []*docdomain.Document
	err := r.db.Where("user_id = ? AND application_id = ?", userID, applicationID).
		Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&docdomain.Document{}).Error
}

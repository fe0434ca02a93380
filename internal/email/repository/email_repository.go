package repository

import (
	"errors"
	"time"

	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailRepository defines the interface for stored email persistence.
type EmailRepository interface {
	Create(email *emaildomain.Email) error
	FindByID(userID, id string) (*emaildomain.Email, error)
	FindByGmailID(userID, gmailID string) (*emaildomain.Email, error)
	ListByUser(userID string, limit, offset int) ([]*emaildomain.Email, int64, error)
	ListByApplication(userID, applicationID string) ([]*emaildomain.Email, error)
	AttachToApplication(userID, emailID, applicationID string) error
}

// emailRepository implements EmailRepository interface
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new instance of emailRepository
func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{
		db: db,
	}
}

func (r *emailRepository) Create(email *emaildomain.Email) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	email.CreatedAt = time.Now()
	return r.db.Create(email).Error
}

func (r *emailRepository) FindByID(userID, id string) (*emaildomain.Email, error) {
	var email emaildomain.Email
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *emailRepository) FindByGmailID(userID, gmailID string) (*emaildomain.Email, error) {
	var email emaildomain.Email
	err := r.db.Where("user_id = ? AND gmail_id = ?", userID, gmailID).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *emailRepository) ListByUser(userID string, limit, offset int) ([]*emaildomain.Email, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	var total int64
	if err := r.db.Model(&emaildomain.Email{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emails []*emaildomain.Email
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").Limit(limit).Offset(offset).Find(&emails).Error
	return emails, total, err
}

func (r *emailRepository) ListByApplication(userID, applicationID string) ([]*emaildomain.Email, error) {
	var emails []*emaildomain.Email
	err := r.db.Where("user_id = ? AND application_id = ?", userID, applicationID).
		Order("date DESC").Find(&emails).Error
	return emails, err
}

func (r *emailRepository) AttachToApplication(userID, emailID, applicationID string) error {
	result := r.db.Model(&emaildomain.Email{}).
		Where("id = ? AND user_id = ?", emailID, userID).
		Update("application_id", applicationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

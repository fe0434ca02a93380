package repository

import (
	"errors"
	"time"

	contactdomain "github.com/joelcalkins28/JobTracker-CRM/internal/contact/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact and tag persistence.
type ContactRepository interface {
	Create(contact *contactdomain.Contact) error
	FindByID(userID, id string) (*contactdomain.Contact, error)
	ListByUser(userID, search string) ([]*contactdomain.Contact, error)
	Update(contact *contactdomain.Contact) error
	Delete(userID, id string) error

	ListCompanies(userID string) ([]string, error)
	ListTitles(userID string) ([]string, error)

	CreateTag(tag *contactdomain.Tag) error
	ListTags(userID string) ([]*contactdomain.Tag, error)
	FindTagsByIDs(userID string, ids []string) ([]contactdomain.Tag, error)
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of contactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) Create(contact *contactdomain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *contactRepository) FindByID(userID, id string) (*contactdomain.Contact, error) {
	var contact contactdomain.Contact
	err := r.db.Preload("Tags").Where("id = ? AND user_id = ?", id, userID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) ListByUser(userID, search string) ([]*contactdomain.Contact, error) {
	query := r.db.Preload("Tags").Where("user_id = ?", userID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR company ILIKE ? OR email ILIKE ?",
			like, like, like, like,
		)
	}

	var contacts []*contactdomain.Contact
	err := query.Order("last_name ASC, first_name ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) Update(contact *contactdomain.Contact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(contact).Association("Tags").Replace(contact.Tags); err != nil {
			return err
		}
		return tx.Save(contact).Error
	})
}

func (r *contactRepository) Delete(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		contact := contactdomain.Contact{ID: id}
		if err := tx.Model(&contact).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&contactdomain.Contact{}).Error
	})
}

func (r *contactRepository) ListCompanies(userID string) ([]string, error) {
	var companies []string
	err := r.db.Model(&contactdomain.Contact{}).
		Where("user_id = ? AND company <> ''", userID).
		Distinct().Order("company ASC").Pluck("company", &companies).Error
	return companies, err
}

func (r *contactRepository) ListTitles(userID string) ([]string, error) {
	var titles []string
	err := r.db.Model(&contactdomain.Contact{}).
		Where("user_id = ? AND position <> ''", userID).
		Distinct().Order("position ASC").Pluck("position", &titles).Error
	return titles, err
}

func (r *contactRepository) CreateTag(tag *contactdomain.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	tag.CreatedAt = time.Now()
	return r.db.Create(tag).Error
}

func (r *contactRepository) ListTags(userID string) ([]*contactdomain.Tag, error) {
	var tags []*contactdomain.Tag
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *contactRepository) FindTagsByIDs(userID string, ids []string) ([]contactdomain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []contactdomain.Tag
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error
	return tags, err
}

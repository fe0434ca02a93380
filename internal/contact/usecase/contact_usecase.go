package usecase

import (
	"errors"

	contactdomain "github.com/joelcalkins28/JobTracker-CRM/internal/contact/domain"
	contactdto "github.com/joelcalkins28/JobTracker-CRM/internal/contact/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/contact/repository"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactUsecase defines the contact and tag operations.
type ContactUsecase interface {
	Create(userID string, req *contactdto.ContactRequest) (*contactdomain.Contact, error)
	Get(userID, id string) (*contactdomain.Contact, error)
	List(userID, search string) ([]*contactdomain.Contact, error)
	Update(userID, id string, req *contactdto.ContactRequest) (*contactdomain.Contact, error)
	Delete(userID, id string) error

	ListCompanies(userID string) ([]string, error)
	ListTitles(userID string) ([]string, error)

	CreateTag(userID string, req *contactdto.TagRequest) (*contactdomain.Tag, error)
	ListTags(userID string) ([]*contactdomain.Tag, error)
}

type contactUsecase struct {
	contactRepo repository.ContactRepository
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

func (u *contactUsecase) Create(userID string, req *contactdto.ContactRequest) (*contactdomain.Contact, error) {
	tags, err := u.contactRepo.FindTagsByIDs(userID, req.TagIDs)
	if err != nil {
		return nil, err
	}

	contact := &contactdomain.Contact{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Position:    req.Position,
		LinkedInURL: req.LinkedInURL,
		Tags:        tags,
	}
	if err := u.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Get(userID, id string) (*contactdomain.Contact, error) {
	contact, err := u.contactRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (u *contactUsecase) List(userID, search string) ([]*contactdomain.Contact, error) {
	return u.contactRepo.ListByUser(userID, search)
}

func (u *contactUsecase) Update(userID, id string, req *contactdto.ContactRequest) (*contactdomain.Contact, error) {
	contact, err := u.contactRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	tags, err := u.contactRepo.FindTagsByIDs(userID, req.TagIDs)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Company = req.Company
	contact.Position = req.Position
	contact.LinkedInURL = req.LinkedInURL
	contact.Tags = tags

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Delete(userID, id string) error {
	contact, err := u.contactRepo.FindByID(userID, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}
	return u.contactRepo.Delete(userID, id)
}

func (u *contactUsecase) ListCompanies(userID string) ([]string, error) {
	return u.contactRepo.ListCompanies(userID)
}

func (u *contactUsecase) ListTitles(userID string) ([]string, error) {
	return u.contactRepo.ListTitles(userID)
}

func (u *contactUsecase) CreateTag(userID string, req *contactdto.TagRequest) (*contactdomain.Tag, error) {
	tag := &contactdomain.Tag{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	}
	if err := u.contactRepo.CreateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (u *contactUsecase) ListTags(userID string) ([]*contactdomain.Tag, error) {
	return u.contactRepo.ListTags(userID)
}

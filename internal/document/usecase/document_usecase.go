package usecase

import (
	"errors"

	approepo "github.com/joelcalkins28/JobTracker-CRM/internal/application/repository"
	docdomain "github.com/joelcalkins28/JobTracker-CRM/internal/document/domain"
	docdto "github.com/joelcalkins28/JobTracker-CRM/internal/document/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/document/repository"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// DocumentUsecase defines operations for document metadata.
type DocumentUsecase interface {
	Create(userID string, req *docdto.CreateDocumentRequest) (*docdomain.Document, error)
	ListByApplication(userID, applicationID string) ([]*docdomain.Document, error)
	Delete(userID, id string) error
}

type documentUsecase struct {
	docRepo repository.DocumentRepository
	appRepo approepo.ApplicationRepository
}

// NewDocumentUsecase creates a new instance of documentUsecase
func NewDocumentUsecase(docRepo repository.DocumentRepository, appRepo approepo.ApplicationRepository) DocumentUsecase {
	return &documentUsecase{docRepo: docRepo, appRepo: appRepo}
}

func (u *documentUsecase) Create(userID string, req *docdto.CreateDocumentRequest) (*docdomain.Document, error) {
	app, err := u.appRepo.FindByID(userID, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	doc := &docdomain.Document{
		UserID:        userID,
		ApplicationID: req.ApplicationID,
		Name:          req.Name,
		Type:          docdomain.DocumentOther,
		FileURL:       req.FileURL,
	}
	if req.Type != "" {
		doc.Type = docdomain.DocumentType(req.Type)
	}
	if err := u.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *documentUsecase) ListByApplication(userID, applicationID string) ([]*docdomain.Document, error) {
	return u.docRepo.ListByApplication(userID, applicationID)
}

func (u *documentUsecase) Delete(userID, id string) error {
	return u.docRepo.Delete(userID, id)
}

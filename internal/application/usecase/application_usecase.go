package usecase

import (
	"errors"
	"time"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
	appdto "github.com/joelcalkins28/JobTracker-CRM/internal/application/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/application/repository"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationUsecase defines the job application operations.
type ApplicationUsecase interface {
	Create(userID string, req *appdto.CreateApplicationRequest) (*appdomain.JobApplication, error)
	Get(userID, id string) (*appdomain.JobApplication, error)
	List(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error)
	Update(userID, id string, req *appdto.UpdateApplicationRequest) (*appdomain.JobApplication, error)
	Delete(userID, id string) error
}

type applicationUsecase struct {
	appRepo repository.ApplicationRepository
}

// NewApplicationUsecase creates a new instance of applicationUsecase
func NewApplicationUsecase(appRepo repository.ApplicationRepository) ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

func (u *applicationUsecase) Create(userID string, req *appdto.CreateApplicationRequest) (*appdomain.JobApplication, error) {
	status := req.Status
	if status == "" {
		status = appdomain.StatusApplied
	}
	if !appdomain.ValidStatus(status) {
		return nil, errors.New("invalid application status")
	}

	dateApplied := time.Now()
	if req.DateApplied != nil {
		dateApplied = *req.DateApplied
	}

	app := &appdomain.JobApplication{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Salary:         req.Salary,
		ApplicationURL: req.ApplicationURL,
		Status:         status,
		DateApplied:    dateApplied,
	}
	if err := u.appRepo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) Get(userID, id string) (*appdomain.JobApplication, error) {
	app, err := u.appRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (u *applicationUsecase) List(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error) {
	return u.appRepo.ListByUser(userID, status)
}

func (u *applicationUsecase) Update(userID, id string, req *appdto.UpdateApplicationRequest) (*appdomain.JobApplication, error) {
	app, err := u.appRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if !appdomain.ValidStatus(req.Status) {
		return nil, errors.New("invalid application status")
	}

	app.JobTitle = req.JobTitle
	app.Company = req.Company
	app.Location = req.Location
	app.Description = req.Description
	app.Salary = req.Salary
	app.ApplicationURL = req.ApplicationURL
	app.Status = req.Status
	if req.DateApplied != nil {
		app.DateApplied = *req.DateApplied
	}

	if err := u.appRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) Delete(userID, id string) error {
	app, err := u.appRepo.FindByID(userID, id)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}
	return u.appRepo.Delete(userID, id)
}

package usecase

import (
	"fmt"
	"testing"
	"time"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
	appdto "github.com/joelcalkins28/JobTracker-CRM/internal/application/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppRepo struct {
	apps map[string]*appdomain.JobApplication
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[string]*appdomain.JobApplication{}}
}

func (f *fakeAppRepo) Create(app *appdomain.JobApplication) error {
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", len(f.apps)+1)
	}
	f.apps[app.ID] = app
	return nil
}

func (f *fakeAppRepo) FindByID(userID, id string) (*appdomain.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok || app.UserID != userID {
		return nil, nil
	}
	return app, nil
}

func (f *fakeAppRepo) ListByUser(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error) {
	var out []*appdomain.JobApplication
	for _, app := range f.apps {
		if app.UserID != userID {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeAppRepo) Update(app *appdomain.JobApplication) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeAppRepo) Delete(userID, id string) error {
	delete(f.apps, id)
	return nil
}

func TestCreateApplication_Defaults(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())

	app, err := uc.Create("user-1", &appdto.CreateApplicationRequest{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	require.NoError(t, err)

	assert.Equal(t, appdomain.StatusApplied, app.Status)
	assert.WithinDuration(t, time.Now(), app.DateApplied, time.Minute)
}

func TestCreateApplication_InvalidStatus(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())

	_, err := uc.Create("user-1", &appdto.CreateApplicationRequest{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
		Status:   "daydreaming",
	})
	require.Error(t, err)
}

func TestGetApplication_ScopedToOwner(t *testing.T) {
	repo := newFakeAppRepo()
	_ = repo.Create(&appdomain.JobApplication{UserID: "user-1", JobTitle: "Backend Engineer", Company: "Acme"})
	uc := NewApplicationUsecase(repo)

	_, err := uc.Get("user-2", "app-1")
	require.ErrorIs(t, err, ErrApplicationNotFound)

	app, err := uc.Get("user-1", "app-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", app.Company)
}

func TestUpdateApplication_MovesStatus(t *testing.T) {
	repo := newFakeAppRepo()
	_ = repo.Create(&appdomain.JobApplication{UserID: "user-1", JobTitle: "Backend Engineer", Company: "Acme", Status: appdomain.StatusApplied})
	uc := NewApplicationUsecase(repo)

	app, err := uc.Update("user-1", "app-1", &appdto.UpdateApplicationRequest{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
		Status:   appdomain.StatusInterview,
	})
	require.NoError(t, err)
	assert.Equal(t, appdomain.StatusInterview, app.Status)
}

func TestDeleteApplication_Unknown(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())
	require.ErrorIs(t, uc.Delete("user-1", "nope"), ErrApplicationNotFound)
}

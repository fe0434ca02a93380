package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	calendardto "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/dto"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// -------- test fakes --------

type fakeCalendarUsecase struct {
	deleteErr error
	syncRes   *calendardomain.SyncResult
	syncErr   error
}

func (f *fakeCalendarUsecase) CreateEvent(userID string, req *calendardto.CreateEventRequest) (*calendardomain.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeCalendarUsecase) ListEvents(userID, applicationID string) ([]*calendardomain.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeCalendarUsecase) UpdateEvent(ctx context.Context, userID, eventID string, req *calendardto.UpdateEventRequest) (*calendardomain.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeCalendarUsecase) DeleteEvent(ctx context.Context, userID, eventID string) error {
	return f.deleteErr
}

func (f *fakeCalendarUsecase) GenerateApplicationEvents(userID string, req *calendardto.GenerateEventsRequest) ([]*calendardomain.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeCalendarUsecase) SyncUserCalendar(ctx context.Context, userID string) (*calendardomain.SyncResult, error) {
	if f.syncErr != nil {
		return nil, f.syncErr
	}
	return f.syncRes, nil
}

func newCalendarRouter(uc *fakeCalendarUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "user-1") })
	h := NewCalendarHandler(uc)
	r.DELETE("/api/calendar/events/:id", h.DeleteEvent)
	r.POST("/api/calendar/sync", h.Sync)
	return r
}

// -------- tests --------

func TestDeleteEventStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
	}{
		{"deleted", nil, http.StatusOK},
		{"unknown event", calendardomain.ErrEventNotFound, http.StatusNotFound},
		{"not connected", integrationdomain.ErrNotAuthenticated, http.StatusBadRequest},
		{"provider down", fmt.Errorf("%w: backend error", integrationdomain.ErrProviderUnavailable), http.StatusBadGateway},
		{"other failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newCalendarRouter(&fakeCalendarUsecase{deleteErr: tt.err})

			req := httptest.NewRequest(http.MethodDelete, "/api/calendar/events/ev-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHTTP, w.Code)
		})
	}
}

func TestSyncEndpoint(t *testing.T) {
	r := newCalendarRouter(&fakeCalendarUsecase{syncRes: &calendardomain.SyncResult{Synced: 2, Failed: 1, Total: 3}})

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"synced":2,"failed":1,"total":3}`, w.Body.String())
}

func TestSyncEndpoint_NotConnected(t *testing.T) {
	r := newCalendarRouter(&fakeCalendarUsecase{syncErr: integrationdomain.ErrNotAuthenticated})

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

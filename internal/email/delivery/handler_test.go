package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"
	emaildto "github.com/joelcalkins28/JobTracker-CRM/internal/email/dto"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeEmailUsecase struct {
	fetchOpts emaildomain.FetchOptions
	fetchResp *emaildto.SyncEmailsResponse
	fetchErr  error
}

func (f *fakeEmailUsecase) FetchAndStoreEmails(ctx context.Context, userID string, opts emaildomain.FetchOptions) (*emaildto.SyncEmailsResponse, error) {
	f.fetchOpts = opts
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchResp, nil
}

func (f *fakeEmailUsecase) SendEmail(ctx context.Context, userID string, req *emaildto.SendEmailRequest) (*emaildomain.Email, error) {
	return nil, nil
}

func (f *fakeEmailUsecase) ListEmails(userID string, limit, offset int) ([]*emaildomain.Email, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmailUsecase) AttachToApplication(userID, emailID, applicationID string) error {
	return nil
}

func newSyncRouter(uc *fakeEmailUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "user-1") })
	r.POST("/api/emails/sync", NewEmailHandler(uc).Sync)
	return r
}

// -------- tests --------

func TestSync_AcceptsEmptyBody(t *testing.T) {
	uc := &fakeEmailUsecase{fetchResp: &emaildto.SyncEmailsResponse{Count: 0}}
	r := newSyncRouter(uc)

	// Every sync field is optional, so a bodyless POST must work.
	req := httptest.NewRequest(http.MethodPost, "/api/emails/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestSync_BindsSuppliedFilters(t *testing.T) {
	uc := &fakeEmailUsecase{fetchResp: &emaildto.SyncEmailsResponse{Count: 2}}
	r := newSyncRouter(uc)

	body := `{"max_results": 10, "query": "from:recruiter", "label_ids": ["SENT"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/emails/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(10), uc.fetchOpts.MaxResults)
	assert.Equal(t, "from:recruiter", uc.fetchOpts.Query)
	assert.Equal(t, []string{"SENT"}, uc.fetchOpts.LabelIDs)
}

func TestSync_MalformedBody(t *testing.T) {
	uc := &fakeEmailUsecase{fetchResp: &emaildto.SyncEmailsResponse{}}
	r := newSyncRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/emails/sync", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSync_NotConnected(t *testing.T) {
	uc := &fakeEmailUsecase{fetchErr: integrationdomain.ErrNotAuthenticated}
	r := newSyncRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/emails/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	authrepo "github.com/joelcalkins28/JobTracker-CRM/internal/auth/repository"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeUserRepo struct {
	authrepo.UserRepository
	user    *authdomain.User
	cred    *authdomain.GoogleCredential
	cleared bool
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error) {
	return f.cred, nil
}

func (f *fakeUserRepo) ClearGoogleCredential(userID string) error {
	f.cred = nil
	f.cleared = true
	return nil
}

type fakeRevoker struct {
	revoked []string
	err     error
}

func (f *fakeRevoker) RevokeToken(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return f.err
}

type fakeSyncLogRepo struct {
	latest *integrationdomain.SyncLog
	logs   []*integrationdomain.SyncLog
}

func (f *fakeSyncLogRepo) Append(userID, service, details string, success bool) error { return nil }
func (f *fakeSyncLogRepo) FindLatest(userID, service string) (*integrationdomain.SyncLog, error) {
	return f.latest, nil
}
func (f *fakeSyncLogRepo) ListByUser(userID string, limit int) ([]*integrationdomain.SyncLog, error) {
	return f.logs, nil
}

// -------- tests --------

func TestStatus_NotConnected(t *testing.T) {
	users := &fakeUserRepo{user: &authdomain.User{ID: "user-1", Email: "me@example.com"}}
	uc := NewGoogleUsecase(users, &fakeSyncLogRepo{}, &fakeRevoker{})

	status, err := uc.Status("user-1")
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Empty(t, status.Email)
}

func TestStatus_ConnectedWithLastSync(t *testing.T) {
	syncedAt := time.Now().Add(-time.Hour)
	users := &fakeUserRepo{user: &authdomain.User{ID: "user-1", Email: "me@example.com", GoogleConnected: true}}
	logs := &fakeSyncLogRepo{latest: &integrationdomain.SyncLog{SyncedAt: syncedAt}}
	uc := NewGoogleUsecase(users, logs, &fakeRevoker{})

	status, err := uc.Status("user-1")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "me@example.com", status.Email)
	require.NotNil(t, status.LastSync)
	assert.Equal(t, syncedAt, *status.LastSync)
}

func TestDisconnect_RevokesRefreshToken(t *testing.T) {
	users := &fakeUserRepo{cred: &authdomain.GoogleCredential{AccessToken: "access", RefreshToken: "refresh"}}
	revoker := &fakeRevoker{}
	uc := NewGoogleUsecase(users, &fakeSyncLogRepo{}, revoker)

	require.NoError(t, uc.Disconnect(context.Background(), "user-1"))

	assert.Equal(t, []string{"refresh"}, revoker.revoked)
	assert.True(t, users.cleared)
}

func TestDisconnect_FallsBackToAccessToken(t *testing.T) {
	users := &fakeUserRepo{cred: &authdomain.GoogleCredential{AccessToken: "access"}}
	revoker := &fakeRevoker{}
	uc := NewGoogleUsecase(users, &fakeSyncLogRepo{}, revoker)

	require.NoError(t, uc.Disconnect(context.Background(), "user-1"))
	assert.Equal(t, []string{"access"}, revoker.revoked)
}

func TestDisconnect_ClearsEvenWhenRevokeFails(t *testing.T) {
	users := &fakeUserRepo{cred: &authdomain.GoogleCredential{RefreshToken: "refresh"}}
	revoker := &fakeRevoker{err: errors.New("revocation endpoint down")}
	uc := NewGoogleUsecase(users, &fakeSyncLogRepo{}, revoker)

	require.NoError(t, uc.Disconnect(context.Background(), "user-1"))
	assert.True(t, users.cleared, "the local credential must be cleared no matter what")
}

func TestDisconnect_NoCredentialIsANoOpRevoke(t *testing.T) {
	users := &fakeUserRepo{}
	revoker := &fakeRevoker{}
	uc := NewGoogleUsecase(users, &fakeSyncLogRepo{}, revoker)

	require.NoError(t, uc.Disconnect(context.Background(), "user-1"))
	assert.Empty(t, revoker.revoked)
	assert.True(t, users.cleared)
}

package usecase

import (
	"context"
	"log"
	"time"

	authrepo "github.com/joelcalkins28/JobTracker-CRM/internal/auth/repository"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
	"github.com/joelcalkins28/JobTracker-CRM/internal/integration/repository"
)

// TokenRevoker revokes OAuth tokens with the provider.
type TokenRevoker interface {
	RevokeToken(ctx context.Context, token string) error
}

// Status describes the Google integration for one user.
type Status struct {
	Connected bool       `json:"connected"`
	Email     string     `json:"email,omitempty"`
	LastSync  *time.Time `json:"last_sync,omitempty"`
}

// GoogleUsecase manages the Google integration lifecycle.
type GoogleUsecase interface {
	Status(userID string) (*Status, error)
	Disconnect(ctx context.Context, userID string) error
	SyncHistory(userID string, limit int) ([]*integrationdomain.SyncLog, error)
}

type googleUsecase struct {
	userRepo    authrepo.UserRepository
	syncLogRepo repository.SyncLogRepository
	revoker     TokenRevoker
}

// NewGoogleUsecase creates a new instance of googleUsecase
func NewGoogleUsecase(userRepo authrepo.UserRepository, syncLogRepo repository.SyncLogRepository, revoker TokenRevoker) GoogleUsecase {
	return &googleUsecase{
		userRepo:    userRepo,
		syncLogRepo: syncLogRepo,
		revoker:     revoker,
	}
}

func (u *googleUsecase) Status(userID string) (*Status, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.GoogleConnected {
		return &Status{Connected: false}, nil
	}

	status := &Status{
		Connected: true,
		Email:     user.Email,
	}

	if last, err := u.syncLogRepo.FindLatest(userID, integrationdomain.ServiceCalendar); err == nil && last != nil {
		status.LastSync = &last.SyncedAt
	}

	return status, nil
}

// Disconnect best-effort revokes the stored token and always clears the
// local credential. The user asked to stop using Google; that intent is
// honored even when the revoke call fails.
func (u *googleUsecase) Disconnect(ctx context.Context, userID string) error {
	cred, err := u.userRepo.GetGoogleCredential(userID)
	if err != nil {
		return err
	}

	if cred != nil {
		token := cred.RefreshToken
		if token == "" {
			token = cred.AccessToken
		}
		if token != "" {
			if err := u.revoker.RevokeToken(ctx, token); err != nil {
				log.Printf("[Google] token revocation failed for user %s: %v", userID, err)
			}
		}
	}

	return u.userRepo.ClearGoogleCredential(userID)
}

func (u *googleUsecase) SyncHistory(userID string, limit int) ([]*integrationdomain.SyncLog, error) {
	return u.syncLogRepo.ListByUser(userID, limit)
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"
	emaildto "github.com/joelcalkins28/JobTracker-CRM/internal/email/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/email/repository"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
	integrationrepo "github.com/joelcalkins28/JobTracker-CRM/internal/integration/repository"

	"golang.org/x/oauth2"
)

// fetchConcurrency caps parallel Gmail message fetches within one run.
const fetchConcurrency = 10

// CredentialStore is the slice of the user store the email flows need.
type CredentialStore interface {
	GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error)
	SetGoogleCredential(userID string, cred *authdomain.GoogleCredential) error
	FindByID(id string) (*authdomain.User, error)
}

// EmailUsecase defines the email operations exposed to delivery.
type EmailUsecase interface {
	FetchAndStoreEmails(ctx context.Context, userID string, opts emaildomain.FetchOptions) (*emaildto.SyncEmailsResponse, error)
	SendEmail(ctx context.Context, userID string, req *emaildto.SendEmailRequest) (*emaildomain.Email, error)
	ListEmails(userID string, limit, offset int) ([]*emaildomain.Email, int64, error)
	AttachToApplication(userID, emailID, applicationID string) error
}

// emailUsecase implements EmailUsecase interface
type emailUsecase struct {
	emailRepo   repository.EmailRepository
	users       CredentialStore
	provider    emaildomain.MailProvider
	syncLogRepo integrationrepo.SyncLogRepository
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(emailRepo repository.EmailRepository, users CredentialStore, provider emaildomain.MailProvider, syncLogRepo integrationrepo.SyncLogRepository) EmailUsecase {
	return &emailUsecase{
		emailRepo:   emailRepo,
		users:       users,
		provider:    provider,
		syncLogRepo: syncLogRepo,
	}
}

func (u *emailUsecase) tokenUpdater(userID string) integrationdomain.TokenUpdateFunc {
	return func(token *oauth2.Token) error {
		return u.users.SetGoogleCredential(userID, &authdomain.GoogleCredential{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			Expiry:       token.Expiry,
		})
	}
}

// FetchAndStoreEmails lists remote messages matching the filters, fetches
// full content and stores every message not already present locally.
// Re-running with overlapping results never creates duplicates: messages are
// deduplicated by their Gmail id per user. The returned page token is an
// opaque hint for the caller; additional pages are never resolved here.
func (u *emailUsecase) FetchAndStoreEmails(ctx context.Context, userID string, opts emaildomain.FetchOptions) (*emaildto.SyncEmailsResponse, error) {
	cred, err := u.users.GetGoogleCredential(userID)
	if err != nil {
		return nil, err
	}
	if !cred.Usable(time.Now()) {
		return nil, integrationdomain.ErrNotAuthenticated
	}

	if opts.MaxResults <= 0 {
		opts.MaxResults = emaildomain.DefaultMaxResults
	}
	if len(opts.LabelIDs) == 0 {
		opts.LabelIDs = []string{emaildomain.DefaultLabelID}
	}

	onTokenRefresh := u.tokenUpdater(userID)

	ids, nextPageToken, err := u.provider.ListMessages(ctx, cred.AccessToken, cred.RefreshToken, opts, onTokenRefresh)
	if err != nil {
		u.appendLog(userID, fmt.Sprintf("Sync failed: %v", err), false)
		return nil, fmt.Errorf("%w: %v", integrationdomain.ErrProviderUnavailable, err)
	}

	type fetchResult struct {
		msg *emaildomain.RemoteMessage
		err error
	}

	results := make(chan fetchResult, len(ids))
	semaphore := make(chan struct{}, fetchConcurrency)

	for _, id := range ids {
		go func(msgID string) {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			msg, err := u.provider.GetMessage(ctx, cred.AccessToken, cred.RefreshToken, msgID, onTokenRefresh)
			results <- fetchResult{msg, err}
		}(id)
	}

	stored := 0
	failed := 0
	for range ids {
		res := <-results
		if res.err != nil {
			failed++
			log.Printf("[GmailSync] failed to fetch message: %v", res.err)
			continue
		}

		existing, err := u.emailRepo.FindByGmailID(userID, res.msg.ID)
		if err != nil {
			failed++
			continue
		}
		if existing != nil {
			continue // already stored, never duplicate
		}

		email := &emaildomain.Email{
			UserID:     userID,
			Subject:    res.msg.Subject,
			Body:       res.msg.Body,
			Sender:     res.msg.From,
			Recipients: res.msg.To,
			Date:       res.msg.Date,
			IsRead:     res.msg.IsRead,
			GmailID:    res.msg.ID,
			ThreadID:   res.msg.ThreadID,
		}
		if err := u.emailRepo.Create(email); err != nil {
			failed++
			log.Printf("[GmailSync] failed to store message %s: %v", res.msg.ID, err)
			continue
		}
		stored++
	}

	details := fmt.Sprintf("Synced %d emails, %d failed", stored, failed)
	u.appendLog(userID, details, stored > 0 || failed == 0)

	return &emaildto.SyncEmailsResponse{
		Count:         stored,
		NextPageToken: nextPageToken,
	}, nil
}

// SendEmail sends through Gmail and stores the sent copy immediately, marked
// read.
func (u *emailUsecase) SendEmail(ctx context.Context, userID string, req *emaildto.SendEmailRequest) (*emaildomain.Email, error) {
	cred, err := u.users.GetGoogleCredential(userID)
	if err != nil {
		return nil, err
	}
	if !cred.Usable(time.Now()) {
		return nil, integrationdomain.ErrNotAuthenticated
	}

	user, err := u.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	from := ""
	if user != nil {
		from = user.Email
	}

	sent, err := u.provider.SendMessage(ctx, cred.AccessToken, cred.RefreshToken, from, req.To, req.Cc, req.Bcc, req.Subject, req.Body, u.tokenUpdater(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integrationdomain.ErrProviderUnavailable, err)
	}

	email := &emaildomain.Email{
		UserID:     userID,
		Subject:    req.Subject,
		Body:       req.Body,
		Sender:     from,
		Recipients: req.To,
		Date:       sent.Date,
		IsRead:     true,
		GmailID:    sent.ID,
		ThreadID:   sent.ThreadID,
	}
	if err := u.emailRepo.Create(email); err != nil {
		log.Printf("[GmailSync] sent message %s but failed to store copy: %v", sent.ID, err)
		return nil, fmt.Errorf("%w: %v", integrationdomain.ErrPersistence, err)
	}
	return email, nil
}

func (u *emailUsecase) ListEmails(userID string, limit, offset int) ([]*emaildomain.Email, int64, error) {
	return u.emailRepo.ListByUser(userID, limit, offset)
}

func (u *emailUsecase) AttachToApplication(userID, emailID, applicationID string) error {
	return u.emailRepo.AttachToApplication(userID, emailID, applicationID)
}

func (u *emailUsecase) appendLog(userID, details string, success bool) {
	if err := u.syncLogRepo.Append(userID, integrationdomain.ServiceGmail, details, success); err != nil {
		log.Printf("[GmailSync] failed to append sync log for user %s: %v", userID, err)
	}
}

package domain

import (
	"context"
	"time"

	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
)

// Email is a captured Gmail message. Rows are created by ingestion or by the
// send flow and are never mutated afterwards, except to attach an
// application. GmailID is unique per user so a remote message is never
// stored twice.
type Email struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index:idx_user_gmail,unique;not null"`
	ApplicationID string    `json:"application_id,omitempty" gorm:"index"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	Sender        string    `json:"sender"`
	Recipients    string    `json:"recipients"`
	Date          time.Time `json:"date"`
	IsRead        bool      `json:"is_read"`
	GmailID       string    `json:"gmail_id" gorm:"index:idx_user_gmail,unique;not null"`
	ThreadID      string    `json:"thread_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// RemoteMessage is a parsed Gmail message as returned by the gateway.
type RemoteMessage struct {
	ID       string
	ThreadID string
	Subject  string
	From     string
	To       string
	Date     time.Time
	Body     string
	IsRead   bool
}

// Defaults applied to a listing when the caller supplies no filters: one
// page of the inbox.
const (
	DefaultMaxResults = 50
	DefaultLabelID    = "INBOX"
)

// FetchOptions filter a remote message listing. PageToken is opaque; the
// gateway passes it through and never resolves additional pages itself.
type FetchOptions struct {
	MaxResults int64
	Query      string
	LabelIDs   []string
	PageToken  string
}

// MailProvider is the capability-typed Gmail client.
type MailProvider interface {
	ListMessages(ctx context.Context, accessToken, refreshToken string, opts FetchOptions, onTokenRefresh integrationdomain.TokenUpdateFunc) (ids []string, nextPageToken string, err error)
	GetMessage(ctx context.Context, accessToken, refreshToken, messageID string, onTokenRefresh integrationdomain.TokenUpdateFunc) (*RemoteMessage, error)
	SendMessage(ctx context.Context, accessToken, refreshToken, from, to, cc, bcc, subject, body string, onTokenRefresh integrationdomain.TokenUpdateFunc) (*RemoteMessage, error)
}

package domain

import (
	"time"

	"golang.org/x/oauth2"
)

// Service names recorded in the sync ledger.
const (
	ServiceCalendar = "calendar"
	ServiceGmail    = "gmail"
)

// SyncLog is an append-only audit record of one synchronization run.
// Rows are created once and never updated or deleted by the application.
type SyncLog struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"index;not null"`
	Service  string    `json:"service" gorm:"not null"` // "calendar" or "gmail"
	Details  string    `json:"details"`
	Success  bool      `json:"success"`
	SyncedAt time.Time `json:"synced_at" gorm:"index"`
}

// TokenUpdateFunc is invoked by the Google gateways when the oauth2 transport
// refreshes an access token, so the new token can be persisted.
type TokenUpdateFunc = func(token *oauth2.Token) error

package domain

import (
	"context"
	"time"

	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
)

// Keys of the private extended properties written to remote events, so a
// remote event can always be traced back to its local application.
const (
	PropApplicationID = "applicationId"
	PropEventType     = "eventType"
	PropSource        = "source"

	SourceName = "jobtracker-crm"

	// DefaultCalendarID is the remote calendar events are pushed to.
	DefaultCalendarID = "primary"
)

// CalendarEvent is a scheduled interaction tied to a job application.
//
// GoogleEventID is empty until the event has been pushed to Google at least
// once; an empty value marks the row as a sync candidate.
type CalendarEvent struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	ApplicationID string    `json:"application_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	StartTime     time.Time `json:"start_time" gorm:"not null"`
	EndTime       time.Time `json:"end_time" gorm:"not null"`
	EventType     string    `json:"event_type"` // e.g. "interview", "phone screen"

	GoogleCalendarID string `json:"google_calendar_id,omitempty" gorm:"index"`
	GoogleEventID    string `json:"google_event_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Synced reports whether the event has a remote counterpart.
func (e *CalendarEvent) Synced() bool {
	return e.GoogleEventID != ""
}

// RemoteEvent is the provider-neutral shape exchanged with the calendar
// gateway. Start and End are UTC.
type RemoteEvent struct {
	ID          string
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Private     map[string]string
}

// SyncResult summarizes one reconciliation run.
type SyncResult struct {
	Synced int `json:"synced"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// CalendarProvider is the capability-typed client for the remote calendar.
// Tokens are passed per call; onTokenRefresh fires when the transport
// refreshes the access token.
type CalendarProvider interface {
	CreateEvent(ctx context.Context, accessToken, refreshToken, calendarID string, event *RemoteEvent, onTokenRefresh integrationdomain.TokenUpdateFunc) (*RemoteEvent, error)
	UpdateEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, event *RemoteEvent, onTokenRefresh integrationdomain.TokenUpdateFunc) (*RemoteEvent, error)
	DeleteEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, onTokenRefresh integrationdomain.TokenUpdateFunc) error
	ListEvents(ctx context.Context, accessToken, refreshToken, calendarID string, timeMin, timeMax time.Time, maxResults int64, onTokenRefresh integrationdomain.TokenUpdateFunc) ([]*RemoteEvent, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	apprepo "github.com/joelcalkins28/JobTracker-CRM/internal/application/repository"
	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	calendardto "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/calendar/repository"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
	integrationrepo "github.com/joelcalkins28/JobTracker-CRM/internal/integration/repository"

	"golang.org/x/oauth2"
)

var (
	ErrInvalidTimeRange    = errors.New("end time must not be before start time")
	ErrApplicationNotFound = errors.New("application not found")
)

// syncConcurrency caps parallel provider calls within one sync run.
const syncConcurrency = 5

// CredentialStore is the slice of the user store the sync flows need.
type CredentialStore interface {
	GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error)
	SetGoogleCredential(userID string, cred *authdomain.GoogleCredential) error
}

// CalendarUsecase defines the calendar operations exposed to delivery.
type CalendarUsecase interface {
	CreateEvent(userID string, req *calendardto.CreateEventRequest) (*calendardomain.CalendarEvent, error)
	ListEvents(userID, applicationID string) ([]*calendardomain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, userID, eventID string, req *calendardto.UpdateEventRequest) (*calendardomain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
	GenerateApplicationEvents(userID string, req *calendardto.GenerateEventsRequest) ([]*calendardomain.CalendarEvent, error)

	SyncUserCalendar(ctx context.Context, userID string) (*calendardomain.SyncResult, error)
}

// calendarUsecase implements CalendarUsecase. SyncUserCalendar is the
// reconciliation engine: it pushes unsynced local events to Google one-way
// and backfills the remote identifiers.
type calendarUsecase struct {
	eventRepo   repository.EventRepository
	appRepo     apprepo.ApplicationRepository
	users       CredentialStore
	provider    calendardomain.CalendarProvider
	syncLogRepo integrationrepo.SyncLogRepository

	// Per-user locks serialize overlapping sync invocations (a user
	// double-clicking "sync now" must not double-create remote events).
	syncMu    sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewCalendarUsecase creates a new instance of calendarUsecase
func NewCalendarUsecase(eventRepo repository.EventRepository, appRepo apprepo.ApplicationRepository, users CredentialStore, provider calendardomain.CalendarProvider, syncLogRepo integrationrepo.SyncLogRepository) CalendarUsecase {
	return &calendarUsecase{
		eventRepo:   eventRepo,
		appRepo:     appRepo,
		users:       users,
		provider:    provider,
		syncLogRepo: syncLogRepo,
		userLocks:   make(map[string]*sync.Mutex),
	}
}

func (u *calendarUsecase) userLock(userID string) *sync.Mutex {
	u.syncMu.Lock()
	defer u.syncMu.Unlock()
	mu, ok := u.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		u.userLocks[userID] = mu
	}
	return mu
}

// tokenUpdater persists tokens refreshed by the oauth2 transport mid-call.
func (u *calendarUsecase) tokenUpdater(userID string) integrationdomain.TokenUpdateFunc {
	return func(token *oauth2.Token) error {
		return u.users.SetGoogleCredential(userID, &authdomain.GoogleCredential{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			Expiry:       token.Expiry,
		})
	}
}

func (u *calendarUsecase) CreateEvent(userID string, req *calendardto.CreateEventRequest) (*calendardomain.CalendarEvent, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	app, err := u.appRepo.FindByID(userID, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	event := &calendardomain.CalendarEvent{
		UserID:        userID,
		ApplicationID: req.ApplicationID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartTime:     req.StartTime.UTC(),
		EndTime:       req.EndTime.UTC(),
		EventType:     req.EventType,
	}
	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *calendarUsecase) ListEvents(userID, applicationID string) ([]*calendardomain.CalendarEvent, error) {
	if applicationID != "" {
		return u.eventRepo.ListByApplication(userID, applicationID)
	}
	return u.eventRepo.ListByUser(userID)
}

// UpdateEvent mutates the local row and, when the event has been synced,
// best-effort pushes the new content to the remote counterpart.
func (u *calendarUsecase) UpdateEvent(ctx context.Context, userID, eventID string, req *calendardto.UpdateEventRequest) (*calendardomain.CalendarEvent, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	event, err := u.eventRepo.FindByID(userID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, calendardomain.ErrEventNotFound
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.StartTime = req.StartTime.UTC()
	event.EndTime = req.EndTime.UTC()
	event.EventType = req.EventType
	if err := u.eventRepo.Update(event); err != nil {
		return nil, err
	}

	if event.Synced() {
		cred, err := u.users.GetGoogleCredential(userID)
		if err == nil && cred.Usable(time.Now()) {
			if _, err := u.provider.UpdateEvent(ctx, cred.AccessToken, cred.RefreshToken, u.calendarID(event), event.GoogleEventID, u.remoteEvent(event), u.tokenUpdater(userID)); err != nil {
				log.Printf("[CalendarSync] failed to push update for event %s: %v", event.ID, err)
			}
		}
	}

	return event, nil
}

// DeleteEvent removes the remote counterpart first, then the local row.
// A remote NotFound counts as success; any other remote failure keeps the
// local row so the remote event is never orphaned silently.
func (u *calendarUsecase) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, err := u.eventRepo.FindByID(userID, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return calendardomain.ErrEventNotFound
	}

	if event.Synced() {
		cred, err := u.users.GetGoogleCredential(userID)
		if err != nil {
			return err
		}
		if !cred.Usable(time.Now()) {
			return integrationdomain.ErrNotAuthenticated
		}

		err = u.provider.DeleteEvent(ctx, cred.AccessToken, cred.RefreshToken, u.calendarID(event), event.GoogleEventID, u.tokenUpdater(userID))
		if err != nil && !errors.Is(err, integrationdomain.ErrRemoteNotFound) {
			return fmt.Errorf("%w: %v", integrationdomain.ErrProviderUnavailable, err)
		}
	}

	return u.eventRepo.Delete(event.ID)
}

// GenerateApplicationEvents creates local calendar events derived from a job
// application, titled "<Type>: <Company> - <JobTitle>". The rows are created
// unsynced; the next sync run pushes them to Google.
func (u *calendarUsecase) GenerateApplicationEvents(userID string, req *calendardto.GenerateEventsRequest) ([]*calendardomain.CalendarEvent, error) {
	app, err := u.appRepo.FindByID(userID, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	created := make([]*calendardomain.CalendarEvent, 0, len(req.Events))
	for _, g := range req.Events {
		end := g.StartTime.Add(time.Hour)
		if g.EndTime != nil {
			end = *g.EndTime
		}
		if end.Before(g.StartTime) {
			return nil, ErrInvalidTimeRange
		}

		description := g.Description
		if description == "" {
			description = fmt.Sprintf("Job application: %s at %s", app.JobTitle, app.Company)
			if app.Location != "" {
				description += "\nLocation: " + app.Location
			}
			if app.Status != "" {
				description += "\nStatus: " + string(app.Status)
			}
			if app.ApplicationURL != "" {
				description += "\nJob posting: " + app.ApplicationURL
			}
		}

		event := &calendardomain.CalendarEvent{
			UserID:        userID,
			ApplicationID: app.ID,
			Title:         fmt.Sprintf("%s: %s - %s", eventTitle(g.EventType), app.Company, app.JobTitle),
			Description:   description,
			Location:      g.Location,
			StartTime:     g.StartTime.UTC(),
			EndTime:       end.UTC(),
			EventType:     g.EventType,
		}
		if err := u.eventRepo.Create(event); err != nil {
			return created, err
		}
		created = append(created, event)
	}
	return created, nil
}

func eventTitle(eventType string) string {
	switch eventType {
	case "interview":
		return "Interview"
	case "follow-up":
		return "Follow-up"
	case "deadline":
		return "Application Deadline"
	default:
		return eventType
	}
}

// SyncUserCalendar pushes the user's unsynced events to Google. Candidates
// are processed independently; one failure never aborts the rest. Exactly
// one sync ledger row is appended once the candidate stage is reached.
func (u *calendarUsecase) SyncUserCalendar(ctx context.Context, userID string) (*calendardomain.SyncResult, error) {
	mu := u.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	cred, err := u.users.GetGoogleCredential(userID)
	if err != nil {
		return nil, err
	}
	if !cred.Usable(time.Now()) {
		// Precondition short-circuit: no provider calls, no ledger row.
		return nil, integrationdomain.ErrNotAuthenticated
	}

	candidates, err := u.eventRepo.ListUnsynced(userID)
	if err != nil {
		return nil, err
	}

	onTokenRefresh := u.tokenUpdater(userID)

	type outcome struct {
		eventID string
		err     error
	}

	results := make(chan outcome, len(candidates))
	semaphore := make(chan struct{}, syncConcurrency)

	for _, event := range candidates {
		go func(event *calendardomain.CalendarEvent) {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results <- outcome{event.ID, u.pushEvent(ctx, cred, event, onTokenRefresh)}
		}(event)
	}

	result := &calendardomain.SyncResult{Total: len(candidates)}
	for range candidates {
		o := <-results
		if o.err != nil {
			result.Failed++
			log.Printf("[CalendarSync] event %s failed: %v", o.eventID, o.err)
		} else {
			result.Synced++
		}
	}

	details := fmt.Sprintf("Synced %d events successfully, %d failed", result.Synced, result.Failed)
	success := result.Synced > 0 || result.Failed == 0
	if err := u.syncLogRepo.Append(userID, integrationdomain.ServiceCalendar, details, success); err != nil {
		log.Printf("[CalendarSync] failed to append sync log for user %s: %v", userID, err)
	}

	return result, nil
}

// pushEvent runs one candidate's create-then-backfill sequence. The event
// keeps a null remote id unless the remote create succeeded, so a re-run
// after failure picks it up again without double-creating.
func (u *calendarUsecase) pushEvent(ctx context.Context, cred *authdomain.GoogleCredential, event *calendardomain.CalendarEvent, onTokenRefresh integrationdomain.TokenUpdateFunc) error {
	created, err := u.provider.CreateEvent(ctx, cred.AccessToken, cred.RefreshToken, calendardomain.DefaultCalendarID, u.remoteEvent(event), onTokenRefresh)
	if err != nil {
		return err
	}

	if err := u.eventRepo.BackfillRemoteID(event.ID, created.CalendarID, created.ID); err != nil {
		// The remote event now exists with no local reference; the next run
		// will create it again. Loud log so the orphan can be cleaned up.
		log.Printf("[CalendarSync] ORPHANED remote event %s (local %s): backfill failed: %v", created.ID, event.ID, err)
		return fmt.Errorf("%w: %v", integrationdomain.ErrPersistence, err)
	}
	return nil
}

func (u *calendarUsecase) remoteEvent(event *calendardomain.CalendarEvent) *calendardomain.RemoteEvent {
	return &calendardomain.RemoteEvent{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		Start:       event.StartTime.UTC(),
		End:         event.EndTime.UTC(),
		Private: map[string]string{
			calendardomain.PropApplicationID: event.ApplicationID,
			calendardomain.PropEventType:     event.EventType,
			calendardomain.PropSource:        calendardomain.SourceName,
		},
	}
}

func (u *calendarUsecase) calendarID(event *calendardomain.CalendarEvent) string {
	if event.GoogleCalendarID != "" {
		return event.GoogleCalendarID
	}
	return calendardomain.DefaultCalendarID
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	calendardto "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/dto"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeEventRepo struct {
	mu          sync.Mutex
	events      map[string]*calendardomain.CalendarEvent
	order       []string
	backfillErr error
	deleted     []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*calendardomain.CalendarEvent{}}
}

func (f *fakeEventRepo) Create(event *calendardomain.CalendarEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID == "" {
		event.ID = fmt.Sprintf("ev-%d", len(f.order)+1)
	}
	event.CreatedAt = time.Now()
	f.events[event.ID] = event
	f.order = append(f.order, event.ID)
	return nil
}

func (f *fakeEventRepo) FindByID(userID, id string) (*calendardomain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok || event.UserID != userID {
		return nil, nil
	}
	return event, nil
}

func (f *fakeEventRepo) ListByUser(userID string) ([]*calendardomain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*calendardomain.CalendarEvent
	for _, id := range f.order {
		if f.events[id].UserID == userID {
			out = append(out, f.events[id])
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByApplication(userID, applicationID string) ([]*calendardomain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*calendardomain.CalendarEvent
	for _, id := range f.order {
		if f.events[id].UserID == userID && f.events[id].ApplicationID == applicationID {
			out = append(out, f.events[id])
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(event *calendardomain.CalendarEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEventRepo) ListUnsynced(userID string) ([]*calendardomain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*calendardomain.CalendarEvent
	for _, id := range f.order {
		event := f.events[id]
		if event.UserID == userID && event.GoogleEventID == "" {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) BackfillRemoteID(eventID, googleCalendarID, googleEventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.backfillErr != nil {
		return f.backfillErr
	}
	event, ok := f.events[eventID]
	if !ok {
		return errors.New("no such event")
	}
	event.GoogleCalendarID = googleCalendarID
	event.GoogleEventID = googleEventID
	return nil
}

type fakeAppRepo struct {
	apps map[string]*appdomain.JobApplication
}

func (f *fakeAppRepo) Create(app *appdomain.JobApplication) error { return nil }
func (f *fakeAppRepo) FindByID(userID, id string) (*appdomain.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok || app.UserID != userID {
		return nil, nil
	}
	return app, nil
}
func (f *fakeAppRepo) ListByUser(userID string, status *appdomain.ApplicationStatus) ([]*appdomain.JobApplication, error) {
	return nil, nil
}
func (f *fakeAppRepo) Update(app *appdomain.JobApplication) error { return nil }
func (f *fakeAppRepo) Delete(userID, id string) error             { return nil }

type fakeCredStore struct {
	mu   sync.Mutex
	cred *authdomain.GoogleCredential
	sets []*authdomain.GoogleCredential
}

func (f *fakeCredStore) GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cred, nil
}

func (f *fakeCredStore) SetGoogleCredential(userID string, cred *authdomain.GoogleCredential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets = append(f.sets, cred)
	return nil
}

type fakeProvider struct {
	mu          sync.Mutex
	createCalls int
	deleteCalls int
	updateCalls int

	// failEvents maps an event summary to the error its create should
	// return.
	failEvents map[string]error
	deleteErr  error
}

func (f *fakeProvider) CreateEvent(ctx context.Context, accessToken, refreshToken, calendarID string, event *calendardomain.RemoteEvent, onTokenRefresh integrationdomain.TokenUpdateFunc) (*calendardomain.RemoteEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err, ok := f.failEvents[event.Summary]; ok {
		return nil, err
	}
	created := *event
	created.ID = "g-" + event.Summary
	created.CalendarID = calendarID
	return &created, nil
}

func (f *fakeProvider) UpdateEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, event *calendardomain.RemoteEvent, onTokenRefresh integrationdomain.TokenUpdateFunc) (*calendardomain.RemoteEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	return event, nil
}

func (f *fakeProvider) DeleteEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, onTokenRefresh integrationdomain.TokenUpdateFunc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeProvider) ListEvents(ctx context.Context, accessToken, refreshToken, calendarID string, timeMin, timeMax time.Time, maxResults int64, onTokenRefresh integrationdomain.TokenUpdateFunc) ([]*calendardomain.RemoteEvent, error) {
	return nil, nil
}

type syncLogEntry struct {
	userID  string
	service string
	details string
	success bool
}

type fakeSyncLog struct {
	mu      sync.Mutex
	entries []syncLogEntry
}

func (f *fakeSyncLog) Append(userID, service, details string, success bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, syncLogEntry{userID, service, details, success})
	return nil
}

func (f *fakeSyncLog) FindLatest(userID, service string) (*integrationdomain.SyncLog, error) {
	return nil, nil
}

func (f *fakeSyncLog) ListByUser(userID string, limit int) ([]*integrationdomain.SyncLog, error) {
	return nil, nil
}

// -------- helpers --------

const testUserID = "user-1"

func validCred() *authdomain.GoogleCredential {
	return &authdomain.GoogleCredential{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}
}

func expiredCred() *authdomain.GoogleCredential {
	return &authdomain.GoogleCredential{
		AccessToken: "access",
		Expiry:      time.Now().Add(-time.Hour),
	}
}

type fixture struct {
	events   *fakeEventRepo
	apps     *fakeAppRepo
	users    *fakeCredStore
	provider *fakeProvider
	syncLog  *fakeSyncLog
	uc       CalendarUsecase
}

func newFixture(cred *authdomain.GoogleCredential) *fixture {
	f := &fixture{
		events: newFakeEventRepo(),
		apps: &fakeAppRepo{apps: map[string]*appdomain.JobApplication{
			"app-1": {ID: "app-1", UserID: testUserID, JobTitle: "Backend Engineer", Company: "Acme"},
		}},
		users:    &fakeCredStore{cred: cred},
		provider: &fakeProvider{},
		syncLog:  &fakeSyncLog{},
	}
	f.uc = NewCalendarUsecase(f.events, f.apps, f.users, f.provider, f.syncLog)
	return f
}

func (f *fixture) addEvent(title, googleEventID string) *calendardomain.CalendarEvent {
	event := &calendardomain.CalendarEvent{
		UserID:        testUserID,
		ApplicationID: "app-1",
		Title:         title,
		StartTime:     time.Now().Add(24 * time.Hour),
		EndTime:       time.Now().Add(25 * time.Hour),
		GoogleEventID: googleEventID,
	}
	if googleEventID != "" {
		event.GoogleCalendarID = calendardomain.DefaultCalendarID
	}
	_ = f.events.Create(event)
	return event
}

// -------- sync tests --------

func TestSyncUserCalendar_AllSucceed(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Interview A", "")
	f.addEvent("Interview B", "")
	f.addEvent("Interview C", "")

	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 3, result.Total)

	// Every candidate got its remote id backfilled.
	for _, id := range f.events.order {
		assert.NotEmpty(t, f.events.events[id].GoogleEventID)
		assert.Equal(t, calendardomain.DefaultCalendarID, f.events.events[id].GoogleCalendarID)
	}

	require.Len(t, f.syncLog.entries, 1)
	entry := f.syncLog.entries[0]
	assert.Equal(t, integrationdomain.ServiceCalendar, entry.service)
	assert.Equal(t, "Synced 3 events successfully, 0 failed", entry.details)
	assert.True(t, entry.success)
}

func TestSyncUserCalendar_PartialFailureIsolation(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Interview A", "")
	bad := f.addEvent("Interview B", "")
	f.addEvent("Interview C", "")
	f.provider.failEvents = map[string]error{"Interview B": errors.New("backend error")}

	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total)

	// The failed candidate stays unsynced; the rest were not aborted.
	assert.Empty(t, f.events.events[bad.ID].GoogleEventID)

	require.Len(t, f.syncLog.entries, 1)
	entry := f.syncLog.entries[0]
	assert.Equal(t, "Synced 2 events successfully, 1 failed", entry.details)
	assert.True(t, entry.success, "a partially successful run still counts as success")
}

func TestSyncUserCalendar_AllFail(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Interview A", "")
	f.addEvent("Interview B", "")
	f.provider.failEvents = map[string]error{
		"Interview A": errors.New("backend error"),
		"Interview B": errors.New("backend error"),
	}

	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 2, result.Failed)

	require.Len(t, f.syncLog.entries, 1)
	assert.False(t, f.syncLog.entries[0].success)
}

func TestSyncUserCalendar_NoCandidates(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Already synced", "g-existing")

	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, f.provider.createCalls)

	// A run with nothing to do still writes its ledger row, as a success.
	require.Len(t, f.syncLog.entries, 1)
	assert.Equal(t, "Synced 0 events successfully, 0 failed", f.syncLog.entries[0].details)
	assert.True(t, f.syncLog.entries[0].success)
}

func TestSyncUserCalendar_NotConnectedShortCircuits(t *testing.T) {
	f := newFixture(expiredCred())
	f.addEvent("Interview A", "")

	_, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.ErrorIs(t, err, integrationdomain.ErrNotAuthenticated)

	// No provider traffic and no ledger row before the candidate stage.
	assert.Equal(t, 0, f.provider.createCalls)
	assert.Empty(t, f.syncLog.entries)
}

func TestSyncUserCalendar_NoCredential(t *testing.T) {
	f := newFixture(nil)
	f.addEvent("Interview A", "")

	_, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.ErrorIs(t, err, integrationdomain.ErrNotAuthenticated)
	assert.Empty(t, f.syncLog.entries)
}

func TestSyncUserCalendar_SecondRunIsIdempotent(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Interview A", "")
	f.addEvent("Interview B", "")

	_, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)
	require.Equal(t, 2, f.provider.createCalls)

	// All candidates now carry remote ids, so the second run creates
	// nothing remotely.
	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 2, f.provider.createCalls)
}

func TestSyncUserCalendar_BackfillFailureCountsAsFailed(t *testing.T) {
	f := newFixture(validCred())
	f.addEvent("Interview A", "")
	f.events.backfillErr = errors.New("disk full")

	result, err := f.uc.SyncUserCalendar(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, f.syncLog.entries, 1)
	assert.False(t, f.syncLog.entries[0].success)
}

// -------- event CRUD tests --------

func TestCreateEvent_RejectsInvertedTimeRange(t *testing.T) {
	f := newFixture(validCred())

	start := time.Now().Add(2 * time.Hour)
	_, err := f.uc.CreateEvent(testUserID, &calendardto.CreateEventRequest{
		ApplicationID: "app-1",
		Title:         "Interview",
		StartTime:     start,
		EndTime:       start.Add(-time.Hour),
	})
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateEvent_RejectsUnknownApplication(t *testing.T) {
	f := newFixture(validCred())

	start := time.Now().Add(2 * time.Hour)
	_, err := f.uc.CreateEvent(testUserID, &calendardto.CreateEventRequest{
		ApplicationID: "app-nope",
		Title:         "Interview",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
	})
	require.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestCreateEvent_StartsUnsynced(t *testing.T) {
	f := newFixture(validCred())

	start := time.Now().Add(2 * time.Hour)
	event, err := f.uc.CreateEvent(testUserID, &calendardto.CreateEventRequest{
		ApplicationID: "app-1",
		Title:         "Interview",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, event.Synced())
	assert.Equal(t, 0, f.provider.createCalls, "creation must not touch the provider")
}

func TestDeleteEvent_UnknownEvent(t *testing.T) {
	f := newFixture(validCred())

	err := f.uc.DeleteEvent(context.Background(), testUserID, "nope")
	require.ErrorIs(t, err, calendardomain.ErrEventNotFound)
}

func TestDeleteEvent_UnsyncedSkipsProvider(t *testing.T) {
	f := newFixture(validCred())
	event := f.addEvent("Interview A", "")

	err := f.uc.DeleteEvent(context.Background(), testUserID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.provider.deleteCalls)
	assert.Contains(t, f.events.deleted, event.ID)
}

func TestDeleteEvent_RemoteNotFoundIsSuccess(t *testing.T) {
	f := newFixture(validCred())
	event := f.addEvent("Interview A", "g-1")
	f.provider.deleteErr = integrationdomain.ErrRemoteNotFound

	err := f.uc.DeleteEvent(context.Background(), testUserID, event.ID)
	require.NoError(t, err)
	assert.Contains(t, f.events.deleted, event.ID)
}

func TestDeleteEvent_RemoteFailureKeepsLocalRow(t *testing.T) {
	f := newFixture(validCred())
	event := f.addEvent("Interview A", "g-1")
	f.provider.deleteErr = errors.New("backend error")

	err := f.uc.DeleteEvent(context.Background(), testUserID, event.ID)
	require.ErrorIs(t, err, integrationdomain.ErrProviderUnavailable)

	assert.NotContains(t, f.events.deleted, event.ID)
	_, ok := f.events.events[event.ID]
	assert.True(t, ok, "the local row must survive a failed remote delete")
}

func TestUpdateEvent_PushesToRemoteWhenSynced(t *testing.T) {
	f := newFixture(validCred())
	event := f.addEvent("Interview A", "g-1")

	start := time.Now().Add(48 * time.Hour)
	updated, err := f.uc.UpdateEvent(context.Background(), testUserID, event.ID, &calendardto.UpdateEventRequest{
		Title:     "Interview A (rescheduled)",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "Interview A (rescheduled)", updated.Title)
	assert.Equal(t, 1, f.provider.updateCalls)
}

func TestGenerateApplicationEvents_Defaults(t *testing.T) {
	f := newFixture(validCred())

	start := time.Now().Add(72 * time.Hour)
	events, err := f.uc.GenerateApplicationEvents(testUserID, &calendardto.GenerateEventsRequest{
		ApplicationID: "app-1",
		Events: []calendardto.GeneratedEvent{
			{EventType: "interview", StartTime: start},
			{EventType: "follow-up", StartTime: start.Add(7 * 24 * time.Hour)},
		},
	})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Interview: Acme - Backend Engineer", events[0].Title)
	assert.Equal(t, "Follow-up: Acme - Backend Engineer", events[1].Title)
	// Default duration is one hour.
	assert.Equal(t, time.Hour, events[0].EndTime.Sub(events[0].StartTime))
	assert.Contains(t, events[0].Description, "Backend Engineer at Acme")
	assert.False(t, events[0].Synced())
}

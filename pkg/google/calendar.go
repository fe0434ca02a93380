package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// getCalendarService creates a Calendar service with the user's tokens.
func (s *Service) getCalendarService(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) (*calendar.Service, error) {
	client := s.tokenClient(ctx, accessToken, refreshToken, onTokenRefresh)

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %v", err)
	}
	return srv, nil
}

// CreateEvent inserts an event into the remote calendar.
func (s *Service) CreateEvent(ctx context.Context, accessToken, refreshToken, calendarID string, event *calendardomain.RemoteEvent, onTokenRefresh TokenUpdateFunc) (*calendardomain.RemoteEvent, error) {
	srv, err := s.getCalendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	created, err := srv.Events.Insert(calendarID, toGoogleEvent(event)).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create event: %w", classify(err))
	}

	return fromGoogleEvent(calendarID, created), nil
}

// UpdateEvent replaces an existing remote event.
func (s *Service) UpdateEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, event *calendardomain.RemoteEvent, onTokenRefresh TokenUpdateFunc) (*calendardomain.RemoteEvent, error) {
	srv, err := s.getCalendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	updated, err := srv.Events.Update(calendarID, eventID, toGoogleEvent(event)).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to update event: %w", classify(err))
	}

	return fromGoogleEvent(calendarID, updated), nil
}

// DeleteEvent removes a remote event. An already-gone event surfaces as
// integrationdomain.ErrRemoteNotFound.
func (s *Service) DeleteEvent(ctx context.Context, accessToken, refreshToken, calendarID, eventID string, onTokenRefresh TokenUpdateFunc) error {
	srv, err := s.getCalendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return err
	}

	if err := srv.Events.Delete(calendarID, eventID).Do(); err != nil {
		return classify(err)
	}
	return nil
}

// ListEvents fetches remote events in a time window, expanded and ordered by
// start time.
func (s *Service) ListEvents(ctx context.Context, accessToken, refreshToken, calendarID string, timeMin, timeMax time.Time, maxResults int64, onTokenRefresh TokenUpdateFunc) ([]*calendardomain.RemoteEvent, error) {
	srv, err := s.getCalendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	if maxResults <= 0 {
		maxResults = 10
	}

	resp, err := srv.Events.List(calendarID).
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		TimeMax(timeMax.UTC().Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list events: %w", classify(err))
	}

	events := make([]*calendardomain.RemoteEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromGoogleEvent(calendarID, item))
	}
	return events, nil
}

// classify maps googleapi errors onto the domain taxonomy.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound, http.StatusGone:
			return integrationdomain.ErrRemoteNotFound
		case http.StatusUnauthorized:
			return integrationdomain.ErrNotAuthenticated
		}
	}
	return err
}

func toGoogleEvent(event *calendardomain.RemoteEvent) *calendar.Event {
	g := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
	if len(event.Private) > 0 {
		g.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: event.Private,
		}
	}
	return g
}

func fromGoogleEvent(calendarID string, g *calendar.Event) *calendardomain.RemoteEvent {
	event := &calendardomain.RemoteEvent{
		ID:          g.Id,
		CalendarID:  calendarID,
		Summary:     g.Summary,
		Description: g.Description,
		Location:    g.Location,
	}
	if g.Start != nil && g.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, g.Start.DateTime); err == nil {
			event.Start = t.UTC()
		}
	}
	if g.End != nil && g.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, g.End.DateTime); err == nil {
			event.End = t.UTC()
		}
	}
	if g.ExtendedProperties != nil {
		event.Private = g.ExtendedProperties.Private
	}
	return event
}

package repository

import (
	"errors"
	"time"

	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository defines the interface for calendar event persistence.
type EventRepository interface {
	Create(event *calendardomain.CalendarEvent) error
	FindByID(userID, id string) (*calendardomain.CalendarEvent, error)
	ListByUser(userID string) ([]*calendardomain.CalendarEvent, error)
	ListByApplication(userID, applicationID string) ([]*calendardomain.CalendarEvent, error)
	Update(event *calendardomain.CalendarEvent) error
	Delete(id string) error

	// ListUnsynced returns the user's events with no remote counterpart,
	// ordered deterministically so sync runs are reproducible.
	ListUnsynced(userID string) ([]*calendardomain.CalendarEvent, error)

	// BackfillRemoteID records the remote identifiers after a successful
	// remote create.
	BackfillRemoteID(eventID, googleCalendarID, googleEventID string) error
}

// eventRepository implements EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of eventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) Create(event *calendardomain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByID(userID, id string) (*calendardomain.CalendarEvent, error) {
	var event calendardomain.CalendarEvent
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByUser(userID string) ([]*calendardomain.CalendarEvent, error) {
	var events []*calendardomain.CalendarEvent
	err := r.db.Where("user_id = ?", userID).
		Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) ListByApplication(userID, applicationID string) ([]*calendardomain.CalendarEvent, error) {
	var events []*calendardomain.CalendarEvent
	err := r.db.Where("user_id = ? AND application_id = ?", userID, applicationID).
		Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *calendardomain.CalendarEvent) error {
	event.UpdatedAt = time.Now()
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id string) error {
	return r.db.Delete(&calendardomain.CalendarEvent{}, "id = ?", id).Error
}

func (r *eventRepository) ListUnsynced(userID string) ([]*calendardomain.CalendarEvent, error) {
	var events []*calendardomain.CalendarEvent
	err := r.db.Where("user_id = ? AND (google_event_id = '' OR google_event_id IS NULL)", userID).
		Order("created_at ASC, id ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) BackfillRemoteID(eventID, googleCalendarID, googleEventID string) error {
	return r.db.Model(&calendardomain.CalendarEvent{}).Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"google_calendar_id": googleCalendarID,
			"google_event_id":    googleEventID,
			"updated_at":         time.Now(),
		}).Error
}

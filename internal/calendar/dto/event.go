package dto

import "time"

type CreateEventRequest struct {
	ApplicationID string    `json:"application_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	EventType     string    `json:"event_type"`
}

type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	EventType   string    `json:"event_type"`
}

// GenerateEventsRequest asks for calendar events derived from an application,
// e.g. an interview slot plus a follow-up reminder.
type GenerateEventsRequest struct {
	ApplicationID string             `json:"application_id" binding:"required"`
	Events        []GeneratedEvent   `json:"events" binding:"required,min=1,dive"`
}

type GeneratedEvent struct {
	EventType   string     `json:"event_type" binding:"required"` // "interview", "follow-up", "deadline", ...
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
}

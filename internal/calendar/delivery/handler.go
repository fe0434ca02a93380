package delivery

import (
	"errors"
	"net/http"

	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	calendardto "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/calendar/usecase"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarUsecase usecase.CalendarUsecase
}

func NewCalendarHandler(calendarUsecase usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{
		calendarUsecase: calendarUsecase,
	}
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	userID := c.GetString("userID")

	var req calendardto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.calendarUsecase.CreateEvent(userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTimeRange) || errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	userID := c.GetString("userID")
	applicationID := c.Query("application_id")

	events, err := h.calendarUsecase.ListEvents(userID, applicationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req calendardto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.calendarUsecase.UpdateEvent(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, calendardomain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if errors.Is(err, usecase.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event. When the event was pushed to Google, the
// remote copy must be confirmed gone before the local row is deleted, so a
// provider outage surfaces as 502 and keeps the event.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.calendarUsecase.DeleteEvent(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, calendardomain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if errors.Is(err, integrationdomain.ErrNotAuthenticated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Google Calendar is not connected"})
			return
		}
		if errors.Is(err, integrationdomain.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not delete event from Google Calendar"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *CalendarHandler) GenerateEvents(c *gin.Context) {
	userID := c.GetString("userID")

	var req calendardto.GenerateEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.calendarUsecase.GenerateApplicationEvents(userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"events": events})
}

func (h *CalendarHandler) Sync(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.calendarUsecase.SyncUserCalendar(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, integrationdomain.ErrNotAuthenticated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Google Calendar is not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"synced": result.Synced,
		"failed": result.Failed,
		"total":  result.Total,
	})
}

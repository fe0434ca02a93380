package delivery

import (
	"net/http"
	"strconv"

	"github.com/joelcalkins28/JobTracker-CRM/internal/integration/usecase"

	"github.com/gin-gonic/gin"
)

type GoogleHandler struct {
	googleUsecase usecase.GoogleUsecase
}

func NewGoogleHandler(googleUsecase usecase.GoogleUsecase) *GoogleHandler {
	return &GoogleHandler{
		googleUsecase: googleUsecase,
	}
}

func (h *GoogleHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	status, err := h.googleUsecase.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Disconnect revokes the Google grant when possible and always clears the
// stored credential, so the local state never claims a connection it lost.
func (h *GoogleHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.googleUsecase.Disconnect(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Google account disconnected"})
}

func (h *GoogleHandler) SyncHistory(c *gin.Context) {
	userID := c.GetString("userID")

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.googleUsecase.SyncHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": logs})
}

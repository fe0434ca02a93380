package delivery

import (
	"errors"
	"net/http"
	"strconv"

	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"
	emaildto "github.com/joelcalkins28/JobTracker-CRM/internal/email/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/email/usecase"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
	}
}

// Sync pulls recent Gmail messages into the local store. Messages already
// seen are skipped, so repeated calls are safe.
func (h *EmailHandler) Sync(c *gin.Context) {
	userID := c.GetString("userID")

	// Every field is optional; a bodyless POST means "all defaults".
	var req emaildto.SyncEmailsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	resp, err := h.emailUsecase.FetchAndStoreEmails(c.Request.Context(), userID, emaildomain.FetchOptions{
		MaxResults: req.MaxResults,
		Query:      req.Query,
		LabelIDs:   req.LabelIDs,
		PageToken:  req.PageToken,
	})
	if err != nil {
		if errors.Is(err, integrationdomain.ErrNotAuthenticated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gmail is not connected"})
			return
		}
		if errors.Is(err, integrationdomain.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch messages from Gmail"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmailHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	limit := 20
	offset := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	emails, total, err := h.emailUsecase.ListEmails(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails": emails,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *EmailHandler) Send(c *gin.Context) {
	userID := c.GetString("userID")

	var req emaildto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.emailUsecase.SendEmail(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, integrationdomain.ErrNotAuthenticated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gmail is not connected"})
			return
		}
		if errors.Is(err, integrationdomain.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not send message via Gmail"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, email)
}

func (h *EmailHandler) AttachToApplication(c *gin.Context) {
	userID := c.GetString("userID")
	emailID := c.Param("id")

	var req emaildto.AttachApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.emailUsecase.AttachToApplication(userID, emailID, req.ApplicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email linked to application"})
}

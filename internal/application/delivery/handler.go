package delivery

import (
	"errors"
	"net/http"

	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
	appdto "github.com/joelcalkins28/JobTracker-CRM/internal/application/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUsecase usecase.ApplicationUsecase
}

func NewApplicationHandler(appUsecase usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{
		appUsecase: appUsecase,
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req appdto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appUsecase.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	app, err := h.appUsecase.Get(userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	var status *appdomain.ApplicationStatus
	if s := c.Query("status"); s != "" {
		st := appdomain.ApplicationStatus(s)
		if !appdomain.ValidStatus(st) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &st
	}

	apps, err := h.appUsecase.List(userID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req appdto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appUsecase.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.appUsecase.Delete(userID, id); err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

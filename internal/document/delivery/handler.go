package delivery

import (
	"errors"
	"net/http"

	docdto "github.com/joelcalkins28/JobTracker-CRM/internal/document/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/document/usecase"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	docUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(docUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{
		docUsecase: docUsecase,
	}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req docdto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.docUsecase.Create(userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	applicationID := c.Query("application_id")
	if applicationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application_id is required"})
		return
	}

	docs, err := h.docUsecase.ListByApplication(userID, applicationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.docUsecase.Delete(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

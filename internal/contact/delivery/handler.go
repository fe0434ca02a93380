package delivery

import (
	"errors"
	"net/http"

	contactdto "github.com/joelcalkins28/JobTracker-CRM/internal/contact/dto"
	"github.com/joelcalkins28/JobTracker-CRM/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req contactdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	contact, err := h.contactUsecase.Get(userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	search := c.Query("search")

	contacts, err := h.contactUsecase.List(userID, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *ContactHandler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req contactdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.contactUsecase.Delete(userID, id); err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}

func (h *ContactHandler) ListCompanies(c *gin.Context) {
	userID := c.GetString("userID")

	companies, err := h.contactUsecase.ListCompanies(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *ContactHandler) ListTitles(c *gin.Context) {
	userID := c.GetString("userID")

	titles, err := h.contactUsecase.ListTitles(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

func (h *ContactHandler) CreateTag(c *gin.Context) {
	userID := c.GetString("userID")

	var req contactdto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.contactUsecase.CreateTag(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *ContactHandler) ListTags(c *gin.Context) {
	userID := c.GetString("userID")

	tags, err := h.contactUsecase.ListTags(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

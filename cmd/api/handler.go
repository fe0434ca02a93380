package api

import (
	appUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/application/usecase"
	authUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/auth/usecase"
	calendarUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/usecase"
	contactUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/contact/usecase"
	docUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/document/usecase"
	emailUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/email/usecase"
	googleUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/integration/usecase"
	taskUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/task/usecase"
	"github.com/joelcalkins28/JobTracker-CRM/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	appUsecase      appUsecase.ApplicationUsecase
	contactUsecase  contactUsecase.ContactUsecase
	docUsecase      docUsecase.DocumentUsecase
	taskUsecase     taskUsecase.TaskUsecase
	calendarUsecase calendarUsecase.CalendarUsecase
	emailUsecase    emailUsecase.EmailUsecase
	googleUsecase   googleUsecase.GoogleUsecase
	config          *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	appUc appUsecase.ApplicationUsecase,
	contactUc contactUsecase.ContactUsecase,
	docUc docUsecase.DocumentUsecase,
	taskUc taskUsecase.TaskUsecase,
	calendarUc calendarUsecase.CalendarUsecase,
	emailUc emailUsecase.EmailUsecase,
	googleUc googleUsecase.GoogleUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:     authUc,
		appUsecase:      appUc,
		contactUsecase:  contactUc,
		docUsecase:      docUc,
		taskUsecase:     taskUc,
		calendarUsecase: calendarUc,
		emailUsecase:    emailUc,
		googleUsecase:   googleUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}

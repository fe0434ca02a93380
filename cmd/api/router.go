package api

import (
	"net/http"

	appDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/application/delivery"
	"github.com/joelcalkins28/JobTracker-CRM/internal/auth/delivery"
	calendarDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/delivery"
	contactDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/contact/delivery"
	docDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/document/delivery"
	emailDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/email/delivery"
	googleDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/integration/delivery"
	taskDelivery "github.com/joelcalkins28/JobTracker-CRM/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase, h.config)
	appHandler := appDelivery.NewApplicationHandler(h.appUsecase)
	contactHandler := contactDelivery.NewContactHandler(h.contactUsecase)
	docHandler := docDelivery.NewDocumentHandler(h.docUsecase)
	taskHandler := taskDelivery.NewTaskHandler(h.taskUsecase)
	calendarHandler := calendarDelivery.NewCalendarHandler(h.calendarUsecase)
	emailHandler := emailDelivery.NewEmailHandler(h.emailUsecase)
	googleHandler := googleDelivery.NewGoogleHandler(h.googleUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.GET("/google/authorize", authHandler.GoogleAuthorize)
			auth.GET("/google/callback", authHandler.GoogleCallback)
		}

		// Google integration routes (protected)
		google := api.Group("/google")
		google.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			google.GET("/status", googleHandler.Status)
			google.POST("/disconnect", googleHandler.Disconnect)
			google.GET("/history", googleHandler.SyncHistory)
		}

		// Job application routes (protected)
		applications := api.Group("/applications")
		applications.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			applications.GET("", appHandler.List)
			applications.POST("", appHandler.Create)
			applications.GET("/:id", appHandler.Get)
			applications.PUT("/:id", appHandler.Update)
			applications.DELETE("/:id", appHandler.Delete)
		}

		// Contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			contacts.GET("", contactHandler.List)
			contacts.POST("", contactHandler.Create)
			contacts.GET("/companies", contactHandler.ListCompanies)
			contacts.GET("/titles", contactHandler.ListTitles)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		// Tag routes (protected)
		tags := api.Group("/tags")
		tags.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tags.GET("", contactHandler.ListTags)
			tags.POST("", contactHandler.CreateTag)
		}

		// Document metadata routes (protected)
		documents := api.Group("/documents")
		documents.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			documents.GET("", docHandler.List)
			documents.POST("", docHandler.Create)
			documents.DELETE("/:id", docHandler.Delete)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		}

		// Calendar routes (protected)
		calendar := api.Group("/calendar")
		calendar.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			calendar.GET("/events", calendarHandler.ListEvents)
			calendar.POST("/events", calendarHandler.CreateEvent)
			calendar.PUT("/events/:id", calendarHandler.UpdateEvent)
			calendar.DELETE("/events/:id", calendarHandler.DeleteEvent)
			calendar.POST("/events/generate", calendarHandler.GenerateEvents)
			calendar.POST("/sync", calendarHandler.Sync)
		}

		// Email routes (protected)
		emails := api.Group("/emails")
		emails.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			emails.GET("", emailHandler.List)
			emails.POST("/sync", emailHandler.Sync)
			emails.POST("/send", emailHandler.Send)
			emails.PATCH("/:id/application", emailHandler.AttachToApplication)
		}
	}
}

package main

import (
	"log"

	api "github.com/joelcalkins28/JobTracker-CRM/cmd/api"
	appdomain "github.com/joelcalkins28/JobTracker-CRM/internal/application/domain"
	appRepo "github.com/joelcalkins28/JobTracker-CRM/internal/application/repository"
	appUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/application/usecase"
	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"
	authRepo "github.com/joelcalkins28/JobTracker-CRM/internal/auth/repository"
	authUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/auth/usecase"
	calendardomain "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/domain"
	calendarRepo "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/repository"
	calendarUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/calendar/usecase"
	contactdomain "github.com/joelcalkins28/JobTracker-CRM/internal/contact/domain"
	contactRepo "github.com/joelcalkins28/JobTracker-CRM/internal/contact/repository"
	contactUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/contact/usecase"
	docdomain "github.com/joelcalkins28/JobTracker-CRM/internal/document/domain"
	docRepo "github.com/joelcalkins28/JobTracker-CRM/internal/document/repository"
	docUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/document/usecase"
	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"
	emailRepo "github.com/joelcalkins28/JobTracker-CRM/internal/email/repository"
	emailUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/email/usecase"
	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"
	integrationRepo "github.com/joelcalkins28/JobTracker-CRM/internal/integration/repository"
	googleUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/integration/usecase"
	taskdomain "github.com/joelcalkins28/JobTracker-CRM/internal/task/domain"
	taskRepo "github.com/joelcalkins28/JobTracker-CRM/internal/task/repository"
	taskUsecase "github.com/joelcalkins28/JobTracker-CRM/internal/task/usecase"
	"github.com/joelcalkins28/JobTracker-CRM/pkg/config"
	"github.com/joelcalkins28/JobTracker-CRM/pkg/database"
	"github.com/joelcalkins28/JobTracker-CRM/pkg/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&appdomain.JobApplication{},
		&contactdomain.Tag{},
		&contactdomain.Contact{},
		&docdomain.Document{},
		&taskdomain.Task{},
		&calendardomain.CalendarEvent{},
		&emaildomain.Email{},
		&integrationdomain.SyncLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	applicationRepository := appRepo.NewApplicationRepository(db)
	contactRepository := contactRepo.NewContactRepository(db)
	documentRepository := docRepo.NewDocumentRepository(db)
	taskRepository := taskRepo.NewTaskRepository(db)
	eventRepository := calendarRepo.NewEventRepository(db)
	emailRepository := emailRepo.NewEmailRepository(db)
	syncLogRepository := integrationRepo.NewSyncLogRepository(db)

	// Initialize Google service (OAuth, Calendar, Gmail)
	googleService := google.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, googleService, cfg)
	appUc := appUsecase.NewApplicationUsecase(applicationRepository)
	contactUc := contactUsecase.NewContactUsecase(contactRepository)
	docUc := docUsecase.NewDocumentUsecase(documentRepository, applicationRepository)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)
	calendarUc := calendarUsecase.NewCalendarUsecase(eventRepository, applicationRepository, userRepository, googleService, syncLogRepository)
	emailUc := emailUsecase.NewEmailUsecase(emailRepository, userRepository, googleService, syncLogRepository)
	googleUc := googleUsecase.NewGoogleUsecase(userRepository, syncLogRepository, googleService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, appUc, contactUc, docUc, taskUc, calendarUc, emailUc, googleUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

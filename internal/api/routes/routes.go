package routes

import (
	"sales-crm-backend/internal/api/handlers"
	"sales-crm-backend/internal/api/middleware"
	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. It returns the
// router together with the reminder scheduler so the caller can run the
// startup notification sync after the server wiring is complete.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.ReminderScheduler) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	contactRepo := repository.NewContactRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	draftRepo := repository.NewEmailDraftRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	// Initialize the change feed and scheduler shared by the services
	feed := service.NewChangeFeed()
	notifier := service.NewTimerNotifier()
	scheduler := service.NewReminderScheduler(reminderRepo, notifier, cfg.ReminderSyncDays)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, feed, validator)
	contactService := service.NewContactService(contactRepo, companyRepo, feed, validator)
	enquiryService := service.NewEnquiryService(enquiryRepo, companyRepo, contactRepo, feed, validator)
	reminderService := service.NewReminderService(reminderRepo, enquiryRepo, scheduler, feed, validator)
	dashboardService := service.NewDashboardService(enquiryRepo, companyRepo)
	exportService := service.NewExportService(enquiryRepo, nil, cfg.ExportDir)
	generator := service.NewChatClient(cfg)
	drafter := service.NewEmailDrafter(enquiryRepo, draftRepo, generator, feed)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	contactHandler := handlers.NewContactHandler(contactService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	draftHandler := handlers.NewDraftHandler(drafter)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)
	notificationHandler := handlers.NewNotificationHandler(scheduler)
	eventsHandler := handlers.NewEventsHandler(feed)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Company routes
		companies := v1.Group("/companies")
		{
			companies.GET("", companyHandler.ListCompanies) // Optional q parameter for search
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("/:id", companyHandler.GetCompany) // Optional include_contacts parameter
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContactsByCompany) // Requires company_id parameter
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Enquiry routes
		enquiries := v1.Group("/enquiries")
		{
			enquiries.GET("", enquiryHandler.ListEnquiries) // Filter and q parameters
			enquiries.POST("", enquiryHandler.CreateEnquiry)
			enquiries.GET("/export", exportHandler.ExportEnquiries) // Same filter parameters as the list
			enquiries.GET("/:id", enquiryHandler.GetEnquiry)
			enquiries.PUT("/:id", enquiryHandler.UpdateEnquiry)
			enquiries.PATCH("/:id/status", enquiryHandler.ChangeStatus)
			enquiries.DELETE("/:id", enquiryHandler.DeleteEnquiry)
			enquiries.POST("/:id/drafts", draftHandler.GenerateDraft)
			enquiries.GET("/:id/drafts", draftHandler.ListDrafts)
		}

		// Reminder routes
		reminders := v1.Group("/reminders")
		{
			reminders.GET("", reminderHandler.ListRemindersByEnquiry) // Requires enquiry_id parameter
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.GET("/:id", reminderHandler.GetReminder)
			reminders.PUT("/:id", reminderHandler.UpdateReminder)
			reminders.PATCH("/:id/completed", reminderHandler.SetCompleted)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}

		// Notification scheduler routes
		notifications := v1.Group("/notifications")
		{
			notifications.POST("/sync", notificationHandler.SyncNotifications)
			notifications.POST("/test", notificationHandler.SendTestNotification)
			notifications.GET("/status", notificationHandler.GetNotificationStatus)
		}

		// Dashboard route
		v1.GET("/dashboard", dashboardHandler.GetDashboard)

		// Change event stream
		v1.GET("/events", eventsHandler.Stream)
	}

	return router, scheduler
}

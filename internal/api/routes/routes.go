package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"agricoop-backend/internal/api/handlers"
	"agricoop-backend/internal/api/middleware"
	"agricoop-backend/internal/auth"
	"agricoop-backend/internal/config"
	"agricoop-backend/internal/logger"
	"agricoop-backend/internal/repository"
	"agricoop-backend/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and logger
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	certRepo := repository.NewCertificationRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	harvestRepo := repository.NewHarvestScheduleRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)

	// Initialize the websocket hub before the chat service so stored
	// messages reach live subscribers
	chatHub := handlers.NewChatHub(log)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	farmService := service.NewFarmService(farmRepo, validator)
	businessService := service.NewBusinessService(businessRepo, validator)
	certService := service.NewCertificationService(certRepo, validator)
	announcementService := service.NewAnnouncementService(announcementRepo, commentRepo, validator)
	searchService := service.NewSearchService(userRepo, farmRepo, businessRepo, announcementRepo)
	harvestService := service.NewHarvestService(harvestRepo, userRepo, validator, log)
	chatService := service.NewChatService(chatRepo, chatHub)
	reportService := service.NewReportService(harvestService)

	// Initialize auth
	authService := auth.NewService(cfg, userRepo)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	farmHandler := handlers.NewFarmHandler(farmService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	certHandler := handlers.NewCertificationHandler(certService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, userService)
	searchHandler := handlers.NewSearchHandler(searchService)
	harvestHandler := handlers.NewHarvestHandler(harvestService, userService)
	plannerHandler := handlers.NewPlannerHandler(harvestService, reportService)
	chatHandler := handlers.NewChatHandler(chatService, userService, chatHub)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/change-password", authMiddleware.RequireAuth(), authHandler.ChangePassword)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpdateMe)
			users.GET("/:id", userHandler.GetByID)
		}

		// Farm routes
		farms := v1.Group("/farms")
		{
			farms.GET("", farmHandler.List)
			farms.POST("", farmHandler.Create)
			farms.GET("/:id", farmHandler.GetByID)
			farms.PUT("/:id", farmHandler.Update)
			farms.DELETE("/:id", farmHandler.Delete)
		}

		// Business routes
		businesses := v1.Group("/businesses")
		{
			businesses.GET("", businessHandler.List)
			businesses.POST("", businessHandler.Create)
			businesses.GET("/:id", businessHandler.GetByID)
			businesses.PUT("/:id", businessHandler.Update)
			businesses.DELETE("/:id", businessHandler.Delete)
		}

		// Certification routes
		certifications := v1.Group("/certifications")
		{
			certifications.GET("", certHandler.List)
			certifications.POST("", certHandler.Create)
			certifications.GET("/expiring", certHandler.ListExpiring)
			certifications.PUT("/:id", certHandler.Update)
			certifications.DELETE("/:id", certHandler.Delete)
		}

		// Announcement routes
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", announcementHandler.List)
			announcements.POST("", announcementHandler.Create)
			announcements.GET("/:id", announcementHandler.GetByID)
			announcements.PUT("/:id", announcementHandler.Update)
			announcements.DELETE("/:id", announcementHandler.Delete)
			announcements.POST("/:id/like", announcementHandler.ToggleLike)
			announcements.GET("/:id/comments", announcementHandler.ListComments)
			announcements.POST("/:id/comments", announcementHandler.AddComment)
			announcements.DELETE("/comments/:comment_id", announcementHandler.DeleteComment)
		}

		// Search route
		v1.GET("/search", searchHandler.Search)

		// Harvest schedule routes
		harvests := v1.Group("/harvests")
		{
			harvests.GET("", harvestHandler.List)
			harvests.POST("", harvestHandler.Create)
			harvests.GET("/:id", harvestHandler.GetByID)
			harvests.PUT("/:id", harvestHandler.Update)
			harvests.DELETE("/:id", harvestHandler.Delete)
		}

		// Planner routes
		planner := v1.Group("/planner")
		{
			planner.GET("/analytics", plannerHandler.Analytics)
			planner.GET("/group", plannerHandler.Group)
			planner.GET("/report/export", plannerHandler.ExportReport)
		}

		// Conflict resolution chat routes
		conflicts := v1.Group("/conflicts")
		{
			conflicts.GET("/:date/messages", chatHandler.ListMessages)
			conflicts.POST("/:date/messages", chatHandler.SendMessage)
			conflicts.GET("/:date/ws", chatHandler.Stream)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}

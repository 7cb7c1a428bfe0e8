package server

import (
	"strings"
	"time"

	"anoa.com/skillswap/internal/config"
	"anoa.com/skillswap/internal/middleware"

	adminHttp "anoa.com/skillswap/internal/modules/admin/delivery/http"
	adminRepo "anoa.com/skillswap/internal/modules/admin/repository"
	adminService "anoa.com/skillswap/internal/modules/admin/service"

	feedbackHttp "anoa.com/skillswap/internal/modules/feedback/delivery/http"
	feedbackRepo "anoa.com/skillswap/internal/modules/feedback/repository"
	feedbackService "anoa.com/skillswap/internal/modules/feedback/service"

	notiHttp "anoa.com/skillswap/internal/modules/notification/delivery/http"
	notifRepo "anoa.com/skillswap/internal/modules/notification/repository"
	notifService "anoa.com/skillswap/internal/modules/notification/service"

	profileHttp "anoa.com/skillswap/internal/modules/profile/delivery/http"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	profileService "anoa.com/skillswap/internal/modules/profile/service"

	reportHttp "anoa.com/skillswap/internal/modules/report/delivery/http"
	reportRepo "anoa.com/skillswap/internal/modules/report/repository"
	reportService "anoa.com/skillswap/internal/modules/report/service"

	searchService "anoa.com/skillswap/internal/modules/search/service"

	swapHttp "anoa.com/skillswap/internal/modules/swap/delivery/http"
	swapRepo "anoa.com/skillswap/internal/modules/swap/repository"
	swapService "anoa.com/skillswap/internal/modules/swap/service"

	userHttp "anoa.com/skillswap/internal/modules/user/delivery/http"
	userService "anoa.com/skillswap/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, meiliClient meilisearch.ServiceManager) *Server {
	searchSvc := searchService.NewSearchService(meiliClient)

	profiles := profileRepo.NewProfileRepository(db)
	profileSvc := profileService.NewProfileService(profiles, searchSvc)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	authSvc := userService.NewAuthService(profiles, searchSvc, cfg.JWTSecret)
	authHandler := userHttp.NewAuthHandler(authSvc)

	notifications := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notifications, redisClient)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc, redisClient)

	swaps := swapRepo.NewSwapRequestRepository(db)
	swapSvc := swapService.NewSwapService(swaps, profiles, notificationSvc, redisClient)
	aggregator := swapService.NewAggregator(swaps, profiles, redisClient)
	swapHandler := swapHttp.NewSwapHandler(swapSvc, aggregator)

	feedbacks := feedbackRepo.NewFeedbackRepository(db)
	feedbackSvc := feedbackService.NewFeedbackService(feedbacks, profiles)
	feedbackHandler := feedbackHttp.NewFeedbackHandler(feedbackSvc)

	reports := reportRepo.NewReportRepository(db)
	reportSvc := reportService.NewReportService(reports)
	reportHandler := reportHttp.NewReportHandler(reportSvc)

	actions := adminRepo.NewAdminActionRepository(db)
	adminSvc := adminService.NewAdminService(profiles, actions, searchSvc)
	adminHandler := adminHttp.NewAdminHandler(adminSvc, reportSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(profiles, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.POST("/users/:id/ban", adminHandler.BanUser)
			adminGroup.GET("/reports", adminHandler.ListReports)
			adminGroup.GET("/actions", adminHandler.ListActions)
		}

		// Profile routes
		protected.GET("/profiles", profileHandler.ListProfiles)
		protected.GET("/profiles/:id", profileHandler.GetProfile)
		protected.GET("/profile/me", profileHandler.GetCurrentProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// Swap routes
		protected.POST("/swaps", swapHandler.CreateRequest)
		protected.PATCH("/swaps/:id/status", swapHandler.UpdateStatus)
		protected.GET("/swaps/ws", swapHandler.HandleWebSocket)

		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)

		// Feedback routes
		protected.POST("/feedback", feedbackHandler.CreateFeedback)
		protected.GET("/feedback/user/:id", feedbackHandler.ListForUser)

		// Report routes
		protected.POST("/reports", reportHandler.CreateReport)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

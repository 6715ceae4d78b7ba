package routes

import (
	"bugbounty-platform-backend/internal/api/handlers"
	"bugbounty-platform-backend/internal/api/middleware"
	"bugbounty-platform-backend/internal/auth"
	"bugbounty-platform-backend/internal/config"
	"bugbounty-platform-backend/internal/notification"
	"bugbounty-platform-backend/internal/repository"
	"bugbounty-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
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

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	programRepo := repository.NewProgramRepository(db)
	reportRepo := repository.NewReportRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Initialize services
	notifier := notification.NewFromConfig(cfg)
	accessService := service.NewAccessService(userRepo, companyRepo)
	reportService := service.NewReportService(reportRepo, programRepo, attachmentRepo, accessService, notifier, validator)
	programService := service.NewProgramService(programRepo, accessService, validator)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, companyRepo, cfg, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	reportHandler := handlers.NewReportHandler(reportService, accessService)
	programHandler := handlers.NewProgramHandler(programService, accessService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/hackers/signup", authHandler.SignupHacker)
		authGroup.POST("/hackers/login", authHandler.LoginHacker)
		authGroup.POST("/companies/signup", authHandler.SignupCompany)
		authGroup.POST("/companies/login", authHandler.LoginCompany)
	}

	// Report routes
	reports := v1.Group("/reports")
	reports.Use(authMiddleware.RequireAuth())
	{
		reports.POST("/manual", reportHandler.SubmitManual)
		reports.POST("/cvss", reportHandler.SubmitCVSS)
		reports.GET("", reportHandler.ListMine)
		reports.GET("/company", reportHandler.ListForCompany)
		reports.GET("/range", reportHandler.ListByDateRange)
		reports.GET("/:id", reportHandler.GetReport)
		reports.DELETE("/:id", reportHandler.DeleteReport)
		reports.PATCH("/:id/review", reportHandler.Review)
		reports.PATCH("/:id/accept", reportHandler.Accept)
		reports.PATCH("/:id/reject", reportHandler.Reject)
		reports.GET("/:id/attachments/:attachmentID", reportHandler.DownloadAttachment)
	}

	// Program routes
	programs := v1.Group("/programs")
	programs.Use(authMiddleware.RequireAuth())
	{
		programs.PUT("", programHandler.ReplaceProgram)
		programs.GET("", programHandler.ListMine)
		programs.GET("/:id", programHandler.GetProgram)
		programs.DELETE("/:id", programHandler.DeleteProgram)
		programs.GET("/:id/assets", programHandler.GetAllAssets)
		programs.PUT("/:id/assets", programHandler.ReplaceAggregate)
	}

	return router
}

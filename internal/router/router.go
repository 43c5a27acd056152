package router

import (
	"os"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/handlers"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/middleware"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services/auth"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with all API routes
func SetupRouter(db *gorm.DB, authService *auth.AuthService, notificationService *services.NotificationService, periodService *services.RegistrationPeriodService) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	majorRepo := repository.NewMajorRepository(db)
	categoryRepo := repository.NewTopicCategoryRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	periodRepo := repository.NewRegistrationPeriodRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	councilRepo := repository.NewCouncilRepository(db)
	rubricRepo := repository.NewRubricRepository(db)
	settingRepo := repository.NewSystemSettingRepository(db)
	regStore := repository.NewRegistrationStore(db)

	// Services
	registrationService := services.NewRegistrationService(regStore, notificationService)
	topicService := services.NewTopicService(topicRepo, periodRepo, settingRepo, notificationService)
	semesterService := services.NewSemesterService(semesterRepo)
	councilService := services.NewCouncilService(councilRepo, semesterRepo, topicRepo, userRepo)
	rubricService := services.NewRubricService(rubricRepo)
	majorService := services.NewMajorService(majorRepo)
	categoryService := services.NewTopicCategoryService(categoryRepo)
	userService := services.NewUserService(userRepo, majorRepo)
	settingService := services.NewSystemSettingService(settingRepo)

	exportsDir := os.Getenv("EXPORTS_DIR")
	if exportsDir == "" {
		exportsDir = "./exports"
	}
	excelService := excel.NewExcelService(userRepo, majorRepo, topicRepo, regStore, exportsDir)

	// Middleware
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(db, authService)
	staffOnly := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	topicHandler := handlers.NewTopicHandler(topicService, registrationService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	semesterHandler := handlers.NewSemesterHandler(semesterService)
	periodHandler := handlers.NewRegistrationPeriodHandler(periodService)
	councilHandler := handlers.NewCouncilHandler(councilService)
	rubricHandler := handlers.NewRubricHandler(rubricService)
	majorHandler := handlers.NewMajorHandler(majorService)
	categoryHandler := handlers.NewTopicCategoryHandler(categoryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(userService, settingService)
	excelHandler := handlers.NewExcelHandler(excelService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.RefreshToken)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.Me)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}

			// Topic catalog and registration workflow
			topics := protected.Group("/topics")
			{
				topics.GET("", topicHandler.List)
				topics.POST("", topicHandler.Create)
				topics.GET("/mine", topicHandler.Mine)
				topics.GET("/:id", topicHandler.Get)
				topics.PUT("/:id", topicHandler.Update)
				topics.DELETE("/:id", topicHandler.Delete)
				topics.POST("/:id/approve", staffOnly, topicHandler.Approve)

				topics.POST("/:id/register", middleware.RequireRole(models.RoleStudent), registrationHandler.Register)
				topics.DELETE("/:id/register", middleware.RequireRole(models.RoleStudent), registrationHandler.Cancel)
				topics.GET("/:id/members", registrationHandler.ListMembers)
				topics.POST("/:id/members/:studentId/decision", middleware.RequireRole(models.RoleTeacher), registrationHandler.Decide)
				topics.DELETE("/:id/members/:studentId", middleware.RequireRole(models.RoleTeacher), registrationHandler.Remove)
			}

			registrations := protected.Group("/registrations")
			{
				registrations.GET("/me", registrationHandler.MyRegistrations)
			}

			// Academic structure (read for everyone, writes admin only)
			semesters := protected.Group("/semesters")
			{
				semesters.GET("", semesterHandler.List)
				semesters.GET("/active", semesterHandler.GetActive)
				semesters.GET("/:id", semesterHandler.Get)
				semesters.POST("", adminOnly, semesterHandler.Create)
				semesters.PUT("/:id", adminOnly, semesterHandler.Update)
				semesters.DELETE("/:id", adminOnly, semesterHandler.Delete)
			}

			periods := protected.Group("/registration-periods")
			{
				periods.GET("", periodHandler.List)
				periods.GET("/:id", periodHandler.Get)
				periods.POST("", adminOnly, periodHandler.Create)
				periods.PUT("/:id", adminOnly, periodHandler.Update)
				periods.DELETE("/:id", adminOnly, periodHandler.Delete)
			}

			majors := protected.Group("/majors")
			{
				majors.GET("", majorHandler.List)
				majors.GET("/:id", majorHandler.Get)
				majors.POST("", adminOnly, majorHandler.Create)
				majors.PUT("/:id", adminOnly, majorHandler.Update)
				majors.DELETE("/:id", adminOnly, majorHandler.Delete)
			}

			categories := protected.Group("/topic-categories")
			{
				categories.GET("", categoryHandler.List)
				categories.GET("/:id", categoryHandler.Get)
				categories.POST("", adminOnly, categoryHandler.Create)
				categories.PUT("/:id", adminOnly, categoryHandler.Update)
				categories.DELETE("/:id", adminOnly, categoryHandler.Delete)
			}

			// Defense councils
			councils := protected.Group("/councils")
			{
				councils.GET("", councilHandler.List)
				councils.GET("/:id", councilHandler.Get)
				councils.POST("", adminOnly, councilHandler.Create)
				councils.PUT("/:id", adminOnly, councilHandler.Update)
				councils.DELETE("/:id", adminOnly, councilHandler.Delete)
				councils.POST("/:id/members", adminOnly, councilHandler.AddMember)
				councils.DELETE("/:id/members/:userId", adminOnly, councilHandler.RemoveMember)
				councils.POST("/:id/topics", adminOnly, councilHandler.AssignTopic)
				councils.DELETE("/:id/topics/:topicId", adminOnly, councilHandler.UnassignTopic)
			}

			rubrics := protected.Group("/rubrics")
			{
				rubrics.GET("", rubricHandler.List)
				rubrics.GET("/:id", rubricHandler.Get)
				rubrics.POST("", staffOnly, rubricHandler.Create)
				rubrics.PUT("/:id", staffOnly, rubricHandler.Update)
				rubrics.DELETE("/:id", staffOnly, rubricHandler.Delete)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.List)
				notifications.GET("/unread-count", notificationHandler.UnreadCount)
				notifications.POST("/:id/read", notificationHandler.MarkRead)
				notifications.POST("/read-all", notificationHandler.MarkAllRead)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.POST("/users", adminHandler.CreateUser)
				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/users/:id", adminHandler.GetUser)
				admin.PUT("/users/:id", adminHandler.UpdateUser)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
				admin.POST("/users/:id/active", adminHandler.SetUserActive)
				admin.POST("/users/:id/reset-password", adminHandler.ResetPassword)

				admin.GET("/settings", adminHandler.ListSettings)
				admin.PUT("/settings", adminHandler.UpsertSetting)
				admin.DELETE("/settings/:key", adminHandler.DeleteSetting)

				admin.POST("/import/users", excelHandler.ImportUsers)
				admin.POST("/import/majors", excelHandler.ImportMajors)
				admin.POST("/export/users", excelHandler.ExportUsers)
				admin.POST("/export/topics", excelHandler.ExportTopics)
				admin.POST("/export/registrations", excelHandler.ExportRegistrations)
				admin.GET("/export/download/:filename", excelHandler.Download)
			}
		}
	}

	return r
}

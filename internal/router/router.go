package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edukita/studentbook-backend/internal/config"
	"github.com/edukita/studentbook-backend/internal/handler"
	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Course     *handler.CourseHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Mark       *handler.MarkHandler
	Analytics  *handler.AnalyticsHandler
	Export     *handler.ExportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout",
			middleware.RequireJWT(authService),
			handlers.Auth.Logout,
		)
	}

	// ─── 2. Authenticated API ──────────────────────────────────────────
	// Every route below carries a verified account id in its claims;
	// the session check rejects tokens invalidated by logout.
	api := router.Group("/api/v1")
	api.Use(middleware.RequireJWT(authService))
	api.Use(middleware.CheckSession(authService))
	{
		// Course catalog (global, shared across accounts).
		api.GET("/courses", handlers.Course.ListCourses)
		api.POST("/courses", handlers.Course.CreateCourse)
		api.PUT("/courses/:id", handlers.Course.UpdateCourse)
		api.DELETE("/courses/:id", handlers.Course.DeleteCourse)

		// Student directory (owner-scoped).
		api.GET("/students", handlers.Student.ListStudents)
		api.POST("/students", handlers.Student.CreateStudent)
		api.GET("/students/:id", handlers.Student.GetStudent)
		api.PUT("/students/:id", handlers.Student.UpdateStudent)
		api.DELETE("/students/:id", handlers.Student.DeleteStudent)

		// Attendance ledger.
		api.POST("/students/:id/attendance", handlers.Attendance.MarkAttendance)
		api.GET("/students/:id/attendance", handlers.Attendance.ListAttendance)
		api.GET("/students/:id/attendance/summary", handlers.Attendance.AttendanceSummary)

		// Marks ledger.
		api.POST("/students/:id/marks", handlers.Mark.AddMark)
		api.GET("/students/:id/marks", handlers.Mark.ListMarks)
		api.GET("/students/:id/marks/summary", handlers.Mark.MarksSummary)

		// Analytics.
		api.GET("/analytics/stats", handlers.Analytics.AccountStats)
		api.GET("/analytics/attendance-trend", handlers.Analytics.AttendanceTrend)
		api.GET("/analytics/top-performers", handlers.Analytics.TopPerformers)
		api.GET("/analytics/subjects", handlers.Analytics.SubjectPerformance)

		// CSV export.
		api.GET("/export/students.csv", handlers.Export.ExportStudents)
		api.GET("/export/attendance.csv", handlers.Export.ExportAttendance)
	}

	return router
}

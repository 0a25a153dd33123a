package router

import (
	"net/http"

	"github.com/applytrack/applytrack-be/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint, pings the database
	r.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "applytrack-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "applytrack-api",
		})
	})

	authHandler := handler.NewAuthHandler(deps)
	jobHandler := handler.NewJobHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			// POST /api/v1/auth/signup - Register a new user
			auth.POST("/signup", authHandler.Signup)

			// POST /api/v1/auth/login - Authenticate an existing user
			auth.POST("/login", authHandler.Login)
		}

		jobs := v1.Group("/jobs")
		{
			// POST /api/v1/jobs - Record a new job application
			jobs.POST("", jobHandler.CreateJob)

			// GET /api/v1/jobs?email=... - List applications for an owner
			jobs.GET("", jobHandler.ListJobs)

			// GET /api/v1/jobs/stats?email=... - Per-status counts for an owner
			jobs.GET("/stats", jobHandler.GetStats)

			// PUT /api/v1/jobs/:job_id - Partially update an application
			jobs.PUT("/:job_id", jobHandler.UpdateJob)

			// DELETE /api/v1/jobs/:job_id - Delete an application
			jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		}
	}

	return r
}

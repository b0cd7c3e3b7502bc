package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jobpilot/jobpilot/internal/auth"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/metrics"
)

// NewRouter builds the gin engine with CORS, request metrics, and every API
// route. Registration and login are public; everything else under /api goes
// through the auth middleware.
func NewRouter(authHandler *AuthHandler, jobHandler *JobHandler, aiHandler *AIHandler, issuer *auth.Issuer) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", HealthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", auth.RequireAuth(issuer), authHandler.Me)

		jobs := api.Group("/jobs", auth.RequireAuth(issuer))
		{
			jobs.GET("", jobHandler.List)
			jobs.POST("", jobHandler.Create)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}

		ai := api.Group("/ai", auth.RequireAuth(issuer))
		{
			ai.POST("/analyze-resume/:jobId", aiHandler.AnalyzeResume)
			ai.POST("/generate-questions", aiHandler.GenerateQuestions)
		}
	}

	return r
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registering twice returns an error we can ignore; the rule is identical.
		_ = v.RegisterValidation("jobstatus", dtos.JobStatus)
	}
}

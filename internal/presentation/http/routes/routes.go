package routes

import (
	"time"

	"github.com/codigofacil/crm-api/internal/config"
	"github.com/codigofacil/crm-api/internal/presentation/http/handler"
	"github.com/codigofacil/crm-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Company       *handler.CompanyHandler
	Contact       *handler.ContactHandler
	Lead          *handler.LeadHandler
	FollowUp      *handler.FollowUpHandler
	PipelineStage *handler.PipelineStageHandler
	Dashboard     *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Per-client rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	api := router.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		registerCompanyRoutes(api, h)
		registerContactRoutes(api, h)
		registerLeadRoutes(api, h)
		registerFollowUpRoutes(api, h)
		registerPipelineStageRoutes(api, h)

		api.GET("/dashboard/metrics", h.Dashboard.Metrics)
	}

	return router
}

func registerCompanyRoutes(api *gin.RouterGroup, h *Handlers) {
	companies := api.Group("/companies")
	{
		companies.GET("", h.Company.List)
		companies.POST("", h.Company.Create)
		companies.GET("/:id", h.Company.Get)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
	}
}

func registerContactRoutes(api *gin.RouterGroup, h *Handlers) {
	contacts := api.Group("/contacts")
	{
		contacts.GET("", h.Contact.List)
		contacts.POST("", h.Contact.Create)
		contacts.GET("/:id", h.Contact.Get)
		contacts.PUT("/:id", h.Contact.Update)
		contacts.DELETE("/:id", h.Contact.Delete)
	}
}

func registerLeadRoutes(api *gin.RouterGroup, h *Handlers) {
	leads := api.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.POST("", h.Lead.Create)
		leads.POST("/bundle", h.Lead.CreateBundle)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.DELETE("/:id", h.Lead.Delete)
	}
}

func registerFollowUpRoutes(api *gin.RouterGroup, h *Handlers) {
	followUps := api.Group("/follow-ups")
	{
		followUps.GET("", h.FollowUp.List)
		followUps.POST("", h.FollowUp.Create)
		followUps.GET("/:id", h.FollowUp.Get)
		followUps.PUT("/:id", h.FollowUp.Update)
		followUps.DELETE("/:id", h.FollowUp.Delete)
	}
}

func registerPipelineStageRoutes(api *gin.RouterGroup, h *Handlers) {
	stages := api.Group("/pipeline-stages")
	{
		stages.GET("", h.PipelineStage.List)
		stages.POST("", h.PipelineStage.Create)
		stages.GET("/:id", h.PipelineStage.Get)
		stages.PUT("/:id", h.PipelineStage.Update)
		stages.DELETE("/:id", h.PipelineStage.Delete)
	}
}

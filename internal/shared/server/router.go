package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/assist"
	"resume-builder-backend/internal/examples"
	"resume-builder-backend/internal/export"
	"resume-builder-backend/internal/publish"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/sites"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	ResumesHandler  *resumes.Handler
	PublishHandler  *publish.Handler
	SitesHandler    *sites.Handler
	AssistHandler   *assist.Handler
	ExportHandler   *export.Handler
	ExamplesHandler *examples.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	// Published sites and bundled examples are world-readable.
	if deps.SitesHandler != nil {
		deps.SitesHandler.RegisterRoutes(r)
	}
	if deps.ExamplesHandler != nil {
		deps.ExamplesHandler.RegisterRoutes(r.Group("/api/v1"))
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(middleware.Identity())
	authed.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: rateLimitGroup,
		Rules: map[string]middleware.RateLimitRule{
			"ASSIST":  {Rate: 0.5, Burst: 5},
			"PUBLISH": {Rate: 1, Burst: 10},
		},
	}))
	registerMeRoutes(authed)
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(authed)
	}
	if deps.PublishHandler != nil {
		deps.PublishHandler.RegisterRoutes(authed)
	}
	if deps.AssistHandler != nil {
		deps.AssistHandler.RegisterRoutes(authed)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(authed)
	}

	return r
}

// Model calls and registrar calls are the expensive paths, so only those
// route groups carry a rate limit rule.
func rateLimitGroup(c *gin.Context) string {
	switch {
	case strings.HasSuffix(c.FullPath(), "/ai-assist"):
		return "ASSIST"
	case strings.HasSuffix(c.FullPath(), "/publish"), strings.HasSuffix(c.FullPath(), "/check-domain"):
		return "PUBLISH"
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

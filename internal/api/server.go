// Package api exposes the diagnostic pipeline over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/ZanzyTHEbar/ies-diagnostics/docs"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/cache"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/middleware"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/privacy"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/ratelimit"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/report"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/security"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Version = "1.0.0"

// Deps are the collaborators of the HTTP layer. Cache, Limiter, Compressor,
// Privacy and DB are optional. A nil Logger falls back to slog.Default.
type Deps struct {
	Logger         *monitoring.Logger
	Metrics        *monitoring.Metrics
	Assessments    *database.AssessmentService
	DB             *database.DB
	Cache          *cache.Cache
	Limiter        *ratelimit.RateLimiter
	AllowedOrigins []string
	Security       security.Config
	Compressor     *middleware.Compressor
	Privacy        *privacy.Service
}

type handler struct {
	deps    Deps
	builder *report.Builder
	started time.Time
}

// NewRouter wires middleware and routes
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = &monitoring.Logger{Logger: slog.Default()}
	}
	h := &handler{
		deps:    deps,
		builder: report.NewBuilder(deps.Logger, deps.Metrics),
		started: time.Now(),
	}

	r := gin.New()

	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(deps.Metrics, deps.Logger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())
	r.Use(security.HeadersMiddleware(deps.Security))
	if deps.Compressor != nil {
		r.Use(deps.Compressor.Handler())
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", monitoring.RequestIDHeader},
		ExposeHeaders:    []string{monitoring.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(security.RequireJSON())
	if deps.Limiter != nil {
		v1.Use(deps.Limiter.IPRateLimitMiddleware())
	}

	v1.GET("/dimensions", h.listDimensions)
	v1.POST("/dimensions/normalize", h.normalizeNames)
	v1.POST("/scores", h.calculateScores)

	reportHandlers := []gin.HandlerFunc{h.createReport}
	if deps.Cache != nil {
		reportHandlers = append([]gin.HandlerFunc{deps.Cache.Middleware(deps.Metrics, deps.Logger)}, reportHandlers...)
	}
	v1.POST("/reports", reportHandlers...)
	v1.POST("/reports/from-scores", h.createReportFromScores)
	v1.POST("/recommendations", h.recommendations)
	v1.POST("/disc/scores", h.discScores)

	v1.POST("/assessments", h.createAssessment)
	v1.GET("/assessments", h.listAssessments)
	v1.GET("/assessments/:id", h.getAssessment)
	v1.DELETE("/assessments/:id", h.deleteAssessment)

	if deps.Privacy != nil {
		v1.GET("/privacy/retention", h.retentionInfo)
		v1.POST("/privacy/erase", h.eraseParticipant)
	}

	return r
}

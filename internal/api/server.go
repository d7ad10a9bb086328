package api

import (
	"fmt"
	"net/http"

	"github.com/aalug/hiring-analytics-go/internal/analytics"
	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/config"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/telemetry"
	"github.com/aalug/hiring-analytics-go/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const baseUrl = "/api/v1/employer"

// Server serves HTTP requests for the service
type Server struct {
	config     config.Config
	store      db.Store
	tokenMaker token.Maker
	reports    *analytics.Service
	metrics    *telemetry.Metrics
	router     *gin.Engine
}

// NewServer creates a new HTTP server and setups routing
func NewServer(config config.Config, store db.Store) (*Server, error) {
	// === tokens ===
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		reports:    analytics.NewService(store, config.ReportTimeout),
		metrics:    telemetry.NewMetrics(),
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery(), loggerMiddleware(), metricsMiddleware(server.metrics))

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "Content-Disposition")
	router.Use(cors.New(corsConfig))

	router.GET("/health", server.health)
	router.GET("/metrics", gin.WrapH(server.metrics.Handler()))

	// ===== routes that require authentication =====
	authRoutes := router.Group(baseUrl).Use(authMiddleware(server.tokenMaker))

	// === analytics ===
	authRoutes.GET("/analytics/summary", server.getSummary)
	authRoutes.GET("/analytics/funnel/:jobId", server.getFunnel)
	authRoutes.GET("/analytics/skill-gap/:jobId", server.getSkillGap)
	authRoutes.GET("/analytics/top-courses", server.getTopCourses)
	authRoutes.GET("/analytics/hiring-status", server.getHiringStatus)
	authRoutes.GET("/analytics/geography", server.getGeography)
	authRoutes.GET("/analytics/export-report", server.exportReport)

	// === records ===
	authRoutes.GET("/jobs", server.listJobs)
	authRoutes.GET("/jobs/:id", server.getJob)
	authRoutes.GET("/courses", server.listCourses)
	authRoutes.GET("/course-completions", server.listCourseCompletions)
	authRoutes.GET("/applications", server.listApplications)
	authRoutes.GET("/views", server.listViews)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	log.Info().Str("address", address).Msg("starting HTTP server")
	return server.router.Run(address)
}

func (server *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// renderError writes a report failure with the status of its kind.
// Server errors only carry their opaque message; the cause was logged.
func (server *Server) renderError(ctx *gin.Context, err error) {
	appErr := apperror.As(err)
	server.metrics.ObserveError(ctx.FullPath(), string(appErr.Kind))
	ctx.JSON(appErr.HTTPStatus(), errorResponse(appErr))
}

// Package server exposes the advisor and the recommendation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/logger"
	"github.com/alexanderramin/scotty/internal/middleware/metrics"
	"github.com/alexanderramin/scotty/internal/middleware/requestid"
	"github.com/alexanderramin/scotty/internal/service"
)

// MaxUploadBytes caps the size of an uploaded resume.
const MaxUploadBytes = 10 << 20

// Deps holds everything the HTTP layer calls into.
type Deps struct {
	Advisor   advisor.Advisor
	Recommend service.RecommendService
	Export    service.ExportService
	Interests service.InterestService
	History   service.HistoryService
	Catalog   service.CatalogService

	Logger         *zap.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
	Release        bool
}

// Server owns the gin engine and the CORS wrapper around it.
type Server struct {
	engine  *gin.Engine
	handler http.Handler
	logger  *zap.Logger
}

func New(d Deps) *Server {
	if d.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	r := gin.New()
	r.MaxMultipartMemory = MaxUploadBytes
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(metrics.NewHTTP(d.Registry).Middleware())

	adv := &advisorHandler{advisor: d.Advisor}
	r.POST("/query", adv.Query)
	r.GET("/health", adv.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	api := &apiHandler{
		recommend: d.Recommend,
		export:    d.Export,
		interests: d.Interests,
		history:   d.History,
		catalog:   d.Catalog,
	}
	v1 := r.Group("/api/v1")
	{
		v1.POST("/recommendations", api.Recommend)
		v1.POST("/calendar", api.Calendar)
		v1.POST("/interests", api.Interests)
		v1.GET("/history", api.ListHistory)
		v1.GET("/history/:id", api.GetHistory)
		v1.GET("/courses", api.ListCourses)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(d.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestid.HeaderKey},
		ExposedHeaders: []string{requestid.HeaderKey, "Content-Disposition"},
		MaxAge:         600,
	})

	return &Server{engine: r, handler: c.Handler(r), logger: d.Logger}
}

// Handler returns the root handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("server stopping")
	return srv.Shutdown(shutdownCtx)
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

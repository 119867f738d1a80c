package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/config"
	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/service/cache"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the catalog page and the JSON skill listing. The catalog is
// loaded once before the server starts and is read-only afterwards.
type Server struct {
	logger  *zap.Logger
	catalog *domain.Catalog
	cache   *cache.CacheService // nil when the page cache is disabled
	tmpl    *template.Template
	httpSrv *http.Server
}

func NewServer(cfg *config.Config, logger *zap.Logger, catalog *domain.Catalog, pageCache *cache.CacheService) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger:  logger,
		catalog: catalog,
		cache:   pageCache,
		tmpl:    tmpl,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/", s.handleCatalog)
	r.Get("/api/skills", s.handleAPISkills)

	s.httpSrv = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) Start() error {
	s.logger.Info("Catalog server listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/hub/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter mounts the directory routes behind the shared middleware stack.
func NewRouter(logger *slog.Logger, cfg RouterConfig, directory *DirectoryHandler) http.Handler {
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"https://*", "http://*"}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Get("/", directory.Home)

	r.Route("/people", func(r chi.Router) {
		r.Get("/", directory.ListPeople)
		r.Get("/{slug}/", directory.PersonDetail)
	})
	r.Route("/communities", func(r chi.Router) {
		r.Get("/", directory.ListCommunities)
		r.Get("/{slug}/", directory.CommunityDetail)
	})
	r.Route("/schools", func(r chi.Router) {
		r.Get("/", directory.ListSchools)
		r.Get("/{slug}/", directory.SchoolDetail)
	})

	r.Get("/api/search/", directory.SearchAPI)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found")
	})

	return r
}

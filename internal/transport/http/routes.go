package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggest/swgui/v5emb"

	"jersey-quiz-service/internal/app"
)

// RouterConfig carries the transport-level settings.
type RouterConfig struct {
	CORSOrigins []string
	Checks      map[string]Checker
}

// NewRouter wires the JSON API, docs, health and the websocket stream.
func NewRouter(svc *app.Service, logger *slog.Logger, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newStructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	ws := NewWSHandler(svc, logger, cfg.CORSOrigins)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Jersey Quiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, cfg.Checks))
	r.Get("/ws/top-scores", ws.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cricket-players", handlePlayers(svc, logger))
		r.Get("/cricket-players/{id}", handlePlayer(svc, logger))
		r.Post("/game-scores", handleSaveScore(svc, logger))
		r.Get("/top-scores", handleTopScores(svc, logger))
	})

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}
}

func newStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

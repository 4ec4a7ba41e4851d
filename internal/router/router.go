package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"onoe-chat/internal/handlers"
	"onoe-chat/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	chatLimiter middleware.Limiter,
	chatHandler *handlers.ChatHandler,
	blindHandler *handlers.BlindHandler,
	allowedOrigins []string,
	trustProxyHeaders bool,
	logger *slog.Logger,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestLogger(&chimiddleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(chimiddleware.Recoverer)
	// X-Forwarded-For and X-Real-IP are caller controlled unless a proxy
	// in front of us rewrites them; rate limiting keys on the result.
	if trustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(chatLimiter, logger))
		r.Use(jwtAuth.Identify)

		r.Post("/chat", chatHandler.Chat)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/chat", chatHandler.Chat)
			r.Post("/blind/process", blindHandler.Process)
		})
	})

	return r
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vncsmyrnk/votebox/internal/core/ports"

	_ "github.com/vncsmyrnk/votebox/docs"
)

type Handlers struct {
	Poll *PollHandler
	Vote *VoteHandler
	Auth *AuthHandler
	User *UserHandler
}

type RouterConfig struct {
	AllowedOrigins []string
}

// NewHandler builds the API router. Every request passes through the
// authenticator, which only attaches a session; operations enforce login.
func NewHandler(log *slog.Logger, auth ports.AuthService, h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, log, http.StatusOK, envelope{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/logout", h.Auth.Logout)
	})
	r.Post("/oauth/callback", h.Auth.GoogleCallback)

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticate(log, auth))

		r.Get("/me", h.User.GetMe)
		r.Get("/dashboard", h.Poll.Dashboard)

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", h.Poll.ListActivePolls)
			r.Post("/", h.Poll.CreatePoll)
			r.Get("/{id}", h.Poll.GetPoll)
			r.Delete("/{id}", h.Poll.DeletePoll)
			r.Post("/{id}/votes", h.Vote.VoteOnPoll)
		})
	})

	return r
}

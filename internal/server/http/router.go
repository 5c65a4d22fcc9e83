// Package http is the JSON-over-HTTP surface of the auth server.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/potholeauth/internal/logging"
	"github.com/dmitrijs2005/potholeauth/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// UserService is what the handlers need from services.UserService.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// NewRouter creates a chi router with the auth routes registered.
func NewRouter(svc UserService, logger logging.Logger, requestTimeout time.Duration) http.Handler {
	logger = logger.With("module", "http_server")

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery(logger))
	r.Use(RequestLogging(logger))
	r.Use(Timeout(requestTimeout))

	r.Get("/health", Health)

	h := NewAuthHandler(svc, logger)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)

		r.With(Auth(svc, logger)).Get("/me", h.Me)
	})

	return r
}

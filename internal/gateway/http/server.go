package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pixology/backend/config"
	"github.com/pixology/backend/internal/buildinfo"
	"github.com/pixology/backend/internal/user/usecase"
)

func NewAccountServer(cfg config.HTTPServer, uc usecase.AccountUseCase, bi buildinfo.BuildInfo) http.Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	h := newHandler(uc, bi)
	router.Route("/api", func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
		r.Get("/buildinfo", h.buildInfo)
	})

	return http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		Handler:      router,
	}
}

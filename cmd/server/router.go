package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/handler"
)

func setupRouter(h api.ServerInterface) http.Handler {
	return api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       chi.NewRouter(),
		ErrorHandlerFunc: handler.ParamErrorHandler,
	})
}

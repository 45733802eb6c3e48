// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/big12-wheel/cliparse"
	"github.com/danielhkuo/big12-wheel/handlers"
	"github.com/danielhkuo/big12-wheel/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	return NewRouterWithHandler(handlers.NewSpinHandler(db, cfg))
}

// NewRouterWithHandler registers routes for an already constructed handler
func NewRouterWithHandler(spinHandler *handlers.SpinHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Spin API. Registered without a method pattern so wrong verbs get the
	// JSON 405 from AllowMethod and bare OPTIONS gets a 200.
	mux.HandleFunc("/api/results", middleware.WithLogging(
		middleware.AllowMethod(http.MethodGet, spinHandler.GetResults)))
	mux.HandleFunc("/api/spin", middleware.WithLogging(
		middleware.AllowMethod(http.MethodPost, spinHandler.RecordSpin)))
	mux.HandleFunc("/api/spins/recent", middleware.WithLogging(
		middleware.AllowMethod(http.MethodGet, spinHandler.GetRecentSpins)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("big12-wheel API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/parade-jury/handlers"
	"github.com/danielhkuo/parade-jury/jury"
	"github.com/danielhkuo/parade-jury/middleware"
)

func NewRouter(svc *jury.Services, checker middleware.CodeChecker) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	juryHandler := handlers.NewJuryHandler(svc)
	registryHandler := handlers.NewRegistryHandler(svc.Juries)

	// authed requires a known X-Jury-Code before the handler runs
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireJury(checker, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public
	mux.HandleFunc("POST /login", middleware.WithLogging(juryHandler.Login))
	mux.HandleFunc("GET /categories", middleware.WithLogging(juryHandler.GetCategories))

	// Jury operations
	mux.HandleFunc("GET /dashboard", authed(juryHandler.GetDashboard))
	mux.HandleFunc("GET /categories/{category}/participants", authed(juryHandler.GetParticipants))
	mux.HandleFunc("GET /participants/{id}/vote", authed(juryHandler.GetVote))
	mux.HandleFunc("POST /votes", authed(juryHandler.SubmitVote))

	// Export and reset
	mux.HandleFunc("GET /export", authed(juryHandler.Export))
	mux.HandleFunc("POST /export/reset", authed(juryHandler.Reset))

	// Jury registry (ADMIN only)
	mux.HandleFunc("POST /juries", authed(registryHandler.CreateJury))
	mux.HandleFunc("GET /juries", authed(registryHandler.ListJuries))
	mux.HandleFunc("GET /juries/{id}", authed(registryHandler.GetJury))
	mux.HandleFunc("DELETE /juries/{id}", authed(registryHandler.DeleteJury))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("parade-jury API v1"))
	})

	return mux
}

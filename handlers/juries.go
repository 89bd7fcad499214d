// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/jury"
	"github.com/danielhkuo/parade-jury/middleware"
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// RegistryHandler serves the jury panel registry. Every route is ADMIN only.
type RegistryHandler struct {
	registry *jury.Registry
}

func NewRegistryHandler(registry *jury.Registry) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// CreateJury handles POST /juries
func (h *RegistryHandler) CreateJury(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req models.CreateJuryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := h.registry.Create(r.Context(), req.Name, req.Category)
	if err != nil {
		serviceError(w, "failed to create jury", err)
		return
	}

	slog.Info("jury created", "jury_id", created.ID, "category", created.Category)

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// ListJuries handles GET /juries
func (h *RegistryHandler) ListJuries(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	juries, err := h.registry.List(r.Context())
	if err != nil {
		serviceError(w, "failed to list juries", err)
		return
	}
	if juries == nil {
		juries = []models.Jury{}
	}

	middleware.JSONResponse(w, http.StatusOK, juries)
}

// GetJury handles GET /juries/{id}
func (h *RegistryHandler) GetJury(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	found, err := h.registry.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Jury not found")
		return
	}
	if err != nil {
		serviceError(w, "failed to load jury", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, found)
}

// DeleteJury handles DELETE /juries/{id}
func (h *RegistryHandler) DeleteJury(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	err := h.registry.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Jury not found")
		return
	}
	if err != nil {
		serviceError(w, "failed to delete jury", err)
		return
	}

	slog.Info("jury deleted", "jury_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !auth.IsAdmin(middleware.JuryCode(r.Context())) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/jury"
	"github.com/danielhkuo/parade-jury/middleware"
	"github.com/danielhkuo/parade-jury/models"
)

type JuryHandler struct {
	svc *jury.Services
	now func() time.Time
}

func NewJuryHandler(svc *jury.Services) *JuryHandler {
	return &JuryHandler{svc: svc, now: time.Now}
}

// Login handles POST /login
// An unknown code is 401, not a validation error
func (h *JuryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	code, ok := h.svc.Login.Execute(req.Code)
	if !ok {
		slog.Info("login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown jury code")
		return
	}

	slog.Info("jury logged in", "jury_code", code)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Code:    code,
		IsAdmin: auth.IsAdmin(code),
	})
}

// GetCategories handles GET /categories
func (h *JuryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.svc.Categories
	if categories == nil {
		categories = []models.Category{}
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// GetDashboard handles GET /dashboard
func (h *JuryHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	code := middleware.JuryCode(r.Context())

	dashboard, err := h.svc.Dashboard.Execute(r.Context(), code)
	if err != nil {
		serviceError(w, "failed to build dashboard", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, dashboard)
}

// GetParticipants handles GET /categories/{category}/participants
func (h *JuryHandler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category is required")
		return
	}

	code := middleware.JuryCode(r.Context())
	participants, err := h.svc.Participants.Execute(r.Context(), code, category)
	if err != nil {
		serviceError(w, "failed to list participants", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}

// GetVote handles GET /participants/{id}/vote
// Returns 404 when the participant is unassigned, unscored, or was last
// scored by another jury
func (h *JuryHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("id")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}

	code := middleware.JuryCode(r.Context())
	vote, ok, err := h.svc.Votes.Execute(r.Context(), code, participantID)
	if err != nil {
		serviceError(w, "failed to load vote", err)
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// SubmitVote handles POST /votes
// Creates a new vote or replaces the participant's current one
func (h *JuryHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote := models.Vote{
		ParticipantID: req.ParticipantID,
		JuryCode:      middleware.JuryCode(r.Context()),
		Originality:   req.Originality,
		Interaction:   req.Interaction,
		Total:         req.Originality + req.Interaction,
		Timestamp:     h.now().UTC(),
	}

	if err := h.svc.Submit.Execute(r.Context(), vote); err != nil {
		serviceError(w, "failed to submit vote", err)
		return
	}

	slog.Info("vote submitted",
		"participant_id", vote.ParticipantID,
		"jury_code", vote.JuryCode,
		"total", vote.Total,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Vote:    vote,
		Message: "Vote saved",
	})
}

// Export handles GET /export
// ADMIN receives every vote; other juries receive their own
func (h *JuryHandler) Export(w http.ResponseWriter, r *http.Request) {
	code := middleware.JuryCode(r.Context())

	votes, err := h.svc.Export.Execute(r.Context(), code)
	if err != nil {
		serviceError(w, "failed to export votes", err)
		return
	}

	body, err := jury.MarshalExport(votes)
	if err != nil {
		slog.Error("failed to encode export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode export")
		return
	}

	attrs := []any{
		"jury_code", code,
		"votes", len(votes),
		"size", humanize.Bytes(uint64(len(body))),
	}
	if newest, ok := newestVote(votes); ok {
		attrs = append(attrs, "newest", humanize.Time(newest))
	}
	slog.Info("votes exported", attrs...)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Reset handles POST /export/reset
// Clears every jury's votes; the body must carry {"confirm": "RESET"}
func (h *JuryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Confirm != jury.ResetConfirmation {
		middleware.ErrorResponse(w, http.StatusBadRequest, `confirm must be "`+jury.ResetConfirmation+`"`)
		return
	}

	if err := h.svc.Export.Clear(r.Context()); err != nil {
		serviceError(w, "failed to clear votes", err)
		return
	}

	slog.Warn("all votes cleared", "jury_code", middleware.JuryCode(r.Context()))

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Message: "All votes cleared",
	})
}

func newestVote(votes []models.Vote) (time.Time, bool) {
	var newest time.Time
	for _, v := range votes {
		if v.Timestamp.After(newest) {
			newest = v.Timestamp
		}
	}
	return newest, !newest.IsZero()
}

// serviceError maps use-case errors onto HTTP status codes
func serviceError(w http.ResponseWriter, msg string, err error) {
	var verr *jury.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	slog.Error(msg, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
}

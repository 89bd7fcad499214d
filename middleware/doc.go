// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /dashboard", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client IP) and completion
(duration_ms). A missing X-Request-ID is generated and echoed back.

# Jury Authentication

RequireJury reads X-Jury-Code, normalizes it, and rejects unknown codes
with 401:

	middleware.RequireJury(table, h.GetDashboard)

Handlers read the normalized code from the context:

	code := middleware.JuryCode(r.Context())

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

An empty origin echoes the request's Origin header.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware

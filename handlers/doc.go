// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the parade jury API.

# Handler Types

  - JuryHandler: login, dashboard, category browsing, voting, export and reset
  - RegistryHandler: the ADMIN-only jury panel registry

Handlers wrap the use cases built by jury.NewServices:

	juryHandler := handlers.NewJuryHandler(svc)
	registryHandler := handlers.NewRegistryHandler(svc.Juries)

# Authentication

Jury routes run behind middleware.RequireJury, which validates the
X-Jury-Code header. Handlers read the normalized code with
middleware.JuryCode and never see an unknown code. Registry routes
additionally return 403 for any code other than ADMIN.

# Voting Flow

	POST /login                              → Login (code normalization, is_admin)
	GET  /dashboard                          → GetDashboard (per-category progress)
	GET  /categories/{category}/participants → GetParticipants (vote attached when scored)
	POST /votes                              → SubmitVote (create or overwrite)

SubmitVote computes total and timestamp on the server; the client only
sends participant_id, originality and interaction.

A participant holds one vote. A vote from another jury replaces it, after
which GET /participants/{id}/vote returns 404 for the earlier jury.

# Export and Reset

	GET  /export       → Export (indented JSON array)
	POST /export/reset → Reset (body {"confirm": "RESET"})

Reset clears every jury's votes, not only the caller's.

# Error Mapping

	validation failure   → 400
	missing/unknown code → 401
	non-admin registry   → 403
	absent vote or jury  → 404
	storage failure      → 500
*/
package handlers

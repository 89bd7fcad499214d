// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the parade jury API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, table)

The second argument validates X-Jury-Code on authenticated routes.

# Endpoints

Public:

	GET  /health     - Liveness
	GET  /           - Banner
	POST /login      - Check a jury code
	GET  /categories - Configured categories

Jury (requires X-Jury-Code):

	GET  /dashboard                          - Progress per category
	GET  /categories/{category}/participants - Assigned participants with votes
	GET  /participants/{id}/vote             - This jury's vote
	POST /votes                              - Submit or overwrite a vote
	GET  /export                             - Votes as indented JSON
	POST /export/reset                       - Clear all votes

Registry (X-Jury-Code must be ADMIN):

	POST   /juries      - Register a jury panel
	GET    /juries      - List panels
	GET    /juries/{id} - Get a panel
	DELETE /juries/{id} - Remove a panel

Every route except /health and / is wrapped with middleware.WithLogging.
*/
package router

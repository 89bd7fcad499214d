// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the parade jury API server.

Jurors log in with a shared jury code, score their assigned parade
participants on originality and interaction, follow their progress per
category, and export their votes as JSON for hand-off.

# Starting the Server

With no configuration the server uses the built-in dataset and a SQLite
file named jury.db:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -c parade.yaml

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: jury.db for sqlite)
  - CATALOG_PATH (-c): YAML dataset of categories, participants and assignments
  - CORS_ORIGIN (-cors-origin): Allowed browser origin

# Architecture

	main.go       → Entry point and composition root
	auth/         → Jury code table and ADMIN check
	catalog/      → Dataset loading and participant lookup
	cliparse/     → Configuration parsing
	db/           → SQL connection and schema
	store/        → Vote and jury stores (memory and SQL)
	jury/         → Use cases: login, dashboard, browsing, voting, export
	handlers/     → HTTP request handlers
	middleware/   → Logging, jury authentication, CORS, JSON helpers
	models/       → Shared types
	router/       → Route definitions
	testutil/     → Test helpers

# Votes

A participant holds at most one vote. The latest submission wins, whichever
jury sent it. ADMIN is assigned every participant and sees every vote on
export.

# Graceful Shutdown

The server handles SIGINT and SIGTERM for graceful shutdown.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/catalog"
	"github.com/danielhkuo/parade-jury/cliparse"
	"github.com/danielhkuo/parade-jury/db"
	"github.com/danielhkuo/parade-jury/jury"
	"github.com/danielhkuo/parade-jury/middleware"
	"github.com/danielhkuo/parade-jury/router"
	"github.com/danielhkuo/parade-jury/store"
)

// voteStore is what the services need from a backend
type voteStore interface {
	store.VoteStore
	store.JuryStore
}

func main() {
	var err error

	// Optional .env; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load participants, categories and jury assignments
	dataset := catalog.Default()
	if cfg.CatalogPath != "" {
		dataset, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	} else if err := dataset.Validate(); err != nil {
		slog.Error("built-in catalog invalid", "error", err)
		os.Exit(1)
	}

	table := auth.NewTable(dataset.Assignments, dataset.ParticipantIDs())
	participants := catalog.New(dataset, table)
	slog.Info("Catalog ready",
		"categories", len(dataset.Categories),
		"participants", len(dataset.Participants),
		"jury_codes", len(table.Codes()),
	)

	// Select the vote store
	var backend voteStore
	if cfg.DatabaseType == db.TypeMemory {
		backend = store.NewMemoryStore()
		slog.Warn("Using in-memory store; votes are lost on restart")
	} else {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		backend = store.NewSQLStore(dbConn)
	}

	// Composition root
	svc := jury.NewServices(table, participants, backend, backend, dataset.Categories)
	mux := router.NewRouter(svc, table)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

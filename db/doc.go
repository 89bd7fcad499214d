// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open selects the driver from the database type:

	conn, err := db.Open(db.TypeSQLite, "jury.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go). PostgreSQL uses lib/pq.
SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both SQLite and PostgreSQL.

# Tables

  - vote: at most one vote per participant (participant_id primary key)
  - jury: registered jury panels

Timestamps are stored as RFC 3339 text. vote.first_saved_ns records when
a participant was first scored and keeps export order stable across
overwrites.
*/
package db

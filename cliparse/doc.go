// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p            Server port (default 3318)
	-t            Database type: sqlite, postgres or memory (default sqlite)
	-d            Database URL (default jury.db for sqlite)
	-c            Participant catalog YAML (built-in dataset if empty)
	-cors-origin  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	CATALOG_PATH  → -c
	CORS_ORIGIN   → -cors-origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - PORT is not a number
  - DATABASE_TYPE is not sqlite, postgres or memory
  - DATABASE_TYPE is postgres and no URL is given

The memory type keeps votes in process and discards any URL.
*/
package cliparse

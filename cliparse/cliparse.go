// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danielhkuo/parade-jury/db"
)

// DefaultSQLiteURL is used when DATABASE_TYPE is sqlite and no URL is given
const DefaultSQLiteURL = "jury.db"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CatalogPath  string
	CORSOrigin   string
}

// ParseFlags validates flags and fills gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("parade-jury", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or memory)")
	fs.StringVar(&cfg.CatalogPath, "c", "", "Participant catalog YAML (built-in dataset if empty)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin (echo request origin if empty)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	switch cfg.DatabaseType {
	case db.TypeSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLiteURL
		}
	case db.TypePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case db.TypeMemory:
		cfg.DatabaseURL = ""
	default:
		return Config{}, fmt.Errorf("invalid database type %q (want sqlite, postgres or memory)", cfg.DatabaseType)
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	return cfg, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (default: file:invoice-entry.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DraftDebounce: Quiet period before a draft is written (default: 1s)
  - MaxUploadBytes: Largest accepted PDF upload (default: 20 MiB)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-debounce     Draft debounce duration
	-max-upload   Upload size limit in bytes
	-env-file     Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	DRAFT_DEBOUNCE   → -debounce
	MAX_UPLOAD_BYTES → -max-upload

CLI flags take precedence over environment variables. Variables from the
dotenv file (github.com/joho/godotenv) are loaded first and never replace a
variable that is already set.
*/
package cliparse

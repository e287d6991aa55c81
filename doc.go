// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the invoice-entry API server.

invoice-entry backs a single-user accounts-payable form: sign in with a demo
account, fill in vendor and invoice details across three tabs, attach the
invoice PDF and submit. The form is saved as a draft a moment after every
change so a restart picks up where the user left off.

# Starting the Server

With no configuration the server listens on 3318 and keeps its state in a
SQLite file next to the binary:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Flags take precedence over environment variables, which may come from a
.env file (-env-file):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Storage DSN (default: file:invoice-entry.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DRAFT_DEBOUNCE (-debounce): Quiet period before a draft save (default: 1s)
  - MAX_UPLOAD_BYTES (-max-upload): Largest accepted PDF (default: 20 MiB)

Logging is configured from LOG_FORMAT (console for human-readable output)
and LOG_LEVEL.

# Architecture

  - handlers: HTTP handlers and the Workspace that owns the mounted form
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Demo credential check and login form rules
  - session: Signed-in user record
  - form: Fields, validation, tabs, options and sample data
  - draft: Debounced draft persistence
  - preview: PDF acceptance and pagination
  - editor: One mounted form
  - storage: Key/value store and submission log
  - db: Connection and schema
  - cliparse: Configuration parsing

The invoicectl command under cmd/ exports submissions and checks drafts
offline.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite (modernc.org/sqlite, pure Go) is the default. PostgreSQL is served
by github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - local_storage: string-keyed values, one row per key
  - submitted_invoice: one row per finalized invoice

The form only ever reads and writes two local_storage keys:

	userSession      {"username": "..."}
	invoiceFormData  the sixteen invoice fields as JSON
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as RFC 3339 text so the same schema works on
// SQLite and PostgreSQL.
const schema = `
-- Local key/value storage (userSession, invoiceFormData)
CREATE TABLE IF NOT EXISTS local_storage (
    item_key TEXT PRIMARY KEY,
    item_value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- Finalized invoice submissions
CREATE TABLE IF NOT EXISTS submitted_invoice (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    submitted_at TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submitted_invoice_submitted_at ON submitted_invoice(submitted_at);
`

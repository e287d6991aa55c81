// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the invoice-entry API.

# Workspace

A Workspace holds the signed-in session and the editor it gates. It is built
once at startup from the session read out of storage:

	current, _ := sessions.Load(ctx)
	ws := handlers.NewWorkspace(ctx, sessions, store, cfg, current)

Signing in mounts a fresh editor (vendor tab, nothing touched, draft
restored); signing out tears it down and discards any draft save that has
not fired yet.

# Handler Types

  - AuthHandler: login, logout, session
  - InvoiceHandler: form state, field updates, tabs, populate, submit
  - DocumentHandler: PDF upload, download and pagination

Every invoice and document handler answers 401 "Not signed in" when no
editor is mounted.

# Submit

A submit with validation errors is blocked with 422: every field becomes
touched and the response names the first failing field and its tab. A valid
submit writes the draft at once and appends the values to the submission
log.
*/
package handlers

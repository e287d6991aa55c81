// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the invoice-entry API.

	mux := router.NewRouter(db, cfg, ws)

# Endpoints

Health:

	GET /health
	GET /

Session:

	POST /login   - Check credentials, start session, mount a fresh form
	POST /logout  - End session, tear down the form
	GET  /session - Current session

Invoice form (401 without a session):

	GET  /invoice                      - Form state
	GET  /invoice/options              - Select option lists
	PUT  /invoice/fields/{field}       - Set one field
	POST /invoice/fields/{field}/blur  - Mark a field touched
	PUT  /invoice/tab/{tab}            - Switch tab
	POST /invoice/populate             - Fill with sample data
	POST /invoice/submit               - Validate and save

Document preview (401 without a session):

	POST   /invoice/document       - Upload a PDF (multipart field "file")
	GET    /invoice/document       - Raw PDF
	DELETE /invoice/document       - Remove
	GET    /invoice/preview        - Pagination state
	PUT    /invoice/preview/page   - Go to a page, or next / prev
	POST   /invoice/preview/retry  - Render the held document again

Every handler shares the Workspace, which owns the session and the mounted
form.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - LoginRequest: username, password
  - UpdateFieldRequest: value
  - SetPageRequest: page, or direction ("next" / "prev")

# Response Types

  - SessionResponse: authenticated, username
  - InvoiceState: values, visible errors, all_errors, touched, active_tab,
    tabs, visible_fields, save_error, preview
  - PreviewState: document metadata, num_pages, page, error
  - SubmitResponse: submission_id, submitted_at, message
  - SubmitErrorResponse: errors plus the first failing field and its tab
  - FieldErrorsResponse: per-field errors for the login form
  - ErrorResponse: error, message

Map keys and field names are the camelCase form field names, for example
"purchaseOrderNumber".
*/
package models

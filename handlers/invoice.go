// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/editor"
	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/middleware"
	"github.com/danielhkuo/invoice-entry/models"
	"github.com/danielhkuo/invoice-entry/storage"
)

type InvoiceHandler struct {
	ws          *Workspace
	submissions *storage.Submissions
}

func NewInvoiceHandler(db *sql.DB, ws *Workspace) *InvoiceHandler {
	return &InvoiceHandler{ws: ws, submissions: storage.NewSubmissions(db)}
}

func (h *InvoiceHandler) writeState(w http.ResponseWriter, ed *editor.Editor, username string) {
	middleware.JSONResponse(w, http.StatusOK, invoiceState(username, ed.Snapshot()))
}

// GetInvoice handles GET /invoice
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}
	h.writeState(w, ed, sess.Username)
}

// GetOptions handles GET /invoice/options
func (h *InvoiceHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requireEditor(w, h.ws); !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, form.SelectOptions())
}

// UpdateField handles PUT /invoice/fields/{field}
func (h *InvoiceHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	field, err := form.ParseField(r.PathValue("field"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateFieldRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := ed.Update(field, req.Value); err != nil {
		if errors.Is(err, editor.ErrClosed) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, NotSignedInMessage)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeState(w, ed, sess.Username)
}

// BlurField handles POST /invoice/fields/{field}/blur
func (h *InvoiceHandler) BlurField(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	field, err := form.ParseField(r.PathValue("field"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := ed.Blur(field); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeState(w, ed, sess.Username)
}

// SelectTab handles PUT /invoice/tab/{tab}
func (h *InvoiceHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	tab, err := form.ParseTab(r.PathValue("tab"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := ed.SelectTab(tab); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeState(w, ed, sess.Username)
}

// Populate handles POST /invoice/populate
func (h *InvoiceHandler) Populate(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	if err := ed.Populate(); err != nil {
		if errors.Is(err, editor.ErrClosed) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, NotSignedInMessage)
			return
		}
		log.Error().Err(err).Msg("failed to load sample document")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load sample data")
		return
	}
	h.writeState(w, ed, sess.Username)
}

// Submit handles POST /invoice/submit
func (h *InvoiceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ed, sess, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	values, blocked, err := ed.Submit()
	if errors.Is(err, editor.ErrClosed) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, NotSignedInMessage)
		return
	}
	if errors.Is(err, editor.ErrInvalid) {
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.SubmitErrorResponse{
			Error:      http.StatusText(http.StatusUnprocessableEntity),
			Message:    blocked.Errors[blocked.FirstField],
			Errors:     errorMap(blocked.Errors),
			FirstField: string(blocked.FirstField),
			FirstTab:   string(blocked.FirstTab),
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to save invoice draft")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save invoice")
		return
	}

	payload, err := json.Marshal(values)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode invoice")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save invoice")
		return
	}

	sub, err := h.submissions.Record(r.Context(), sess.Username, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to record submission")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save invoice")
		return
	}

	log.Info().
		Str("submission_id", sub.ID).
		Str("username", sess.Username).
		Str("invoice_number", values.InvoiceNumber).
		Msg("invoice submitted")

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		SubmissionID: sub.ID,
		SubmittedAt:  sub.SubmittedAt,
		Message:      models.SubmitSuccessMessage,
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/middleware"
	"github.com/danielhkuo/invoice-entry/models"
	"github.com/danielhkuo/invoice-entry/preview"
)

const noDocumentMessage = "No document loaded"

type DocumentHandler struct {
	ws  *Workspace
	cfg cliparse.Config
}

func NewDocumentHandler(ws *Workspace, cfg cliparse.Config) *DocumentHandler {
	return &DocumentHandler{ws: ws, cfg: cfg}
}

// Upload handles POST /invoice/document
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !preview.IsPDF(contentType) {
		log.Info().Str("name", header.Filename).Str("content_type", contentType).Msg("upload rejected")
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, preview.UnsupportedFileMessage)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	p := ed.Preview()
	switch err := p.Load(header.Filename, contentType, data); {
	case errors.Is(err, preview.ErrUnsupportedFileType):
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, preview.UnsupportedFileMessage)
		return
	case errors.Is(err, preview.ErrEmptyFile):
		middleware.ErrorResponse(w, http.StatusBadRequest, "File is empty")
		return
	case err != nil:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load file")
		return
	}

	state := p.State()
	log.Info().
		Str("document_id", state.ID).
		Str("name", state.Name).
		Int("pages", state.NumPages).
		Msg("document uploaded")

	middleware.JSONResponse(w, http.StatusCreated, previewState(state))
}

// GetDocument handles GET /invoice/document
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	doc, ok := ed.Preview().Document()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, noDocumentMessage)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": doc.Name}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		log.Debug().Err(err).Str("document_id", doc.ID).Msg("failed to write document")
	}
}

// DeleteDocument handles DELETE /invoice/document
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	ed.Preview().Remove()
	middleware.JSONResponse(w, http.StatusOK, previewState(ed.Preview().State()))
}

// GetPreview handles GET /invoice/preview
func (h *DocumentHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, previewState(ed.Preview().State()))
}

// SetPage handles PUT /invoice/preview/page
func (h *DocumentHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	var req models.SetPageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p := ed.Preview()
	var err error
	switch {
	case req.Page != 0:
		_, err = p.GoTo(req.Page)
	case req.Direction == models.DirectionNext:
		_, err = p.Next()
	case req.Direction == models.DirectionPrev:
		_, err = p.Prev()
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "page or direction is required")
		return
	}
	if errors.Is(err, preview.ErrNoDocument) {
		middleware.ErrorResponse(w, http.StatusNotFound, noDocumentMessage)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, previewState(p.State()))
}

// Retry handles POST /invoice/preview/retry
func (h *DocumentHandler) Retry(w http.ResponseWriter, r *http.Request) {
	ed, _, ok := requireEditor(w, h.ws)
	if !ok {
		return
	}

	p := ed.Preview()
	if err := p.Retry(); errors.Is(err, preview.ErrNoDocument) {
		middleware.ErrorResponse(w, http.StatusNotFound, noDocumentMessage)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, previewState(p.State()))
}

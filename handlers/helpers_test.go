// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/models"
	"github.com/danielhkuo/invoice-entry/session"
	"github.com/danielhkuo/invoice-entry/storage"
	"github.com/danielhkuo/invoice-entry/testutil"
)

type testEnv struct {
	db       *sql.DB
	cfg      cliparse.Config
	store    storage.Store
	sessions *session.Store
	ws       *Workspace
	auth     *AuthHandler
	invoice  *InvoiceHandler
	docs     *DocumentHandler
}

// newTestEnv builds the handlers over a fresh database. With a non-empty
// username the workspace starts signed in.
func newTestEnv(t *testing.T, username string) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := storage.NewSQLStore(conn)
	sessions := session.NewStore(store)

	var current *session.Session
	if username != "" {
		var err error
		current, err = sessions.Start(context.Background(), username)
		if err != nil {
			t.Fatalf("Failed to start session: %v", err)
		}
	}

	ws := NewWorkspace(context.Background(), sessions, store, cfg, current)
	t.Cleanup(ws.Close)

	return &testEnv{
		db:       conn,
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		ws:       ws,
		auth:     NewAuthHandler(ws),
		invoice:  NewInvoiceHandler(conn, ws),
		docs:     NewDocumentHandler(ws, cfg),
	}
}

// getState fetches GET /invoice and decodes it.
func (e *testEnv) getState(t *testing.T) models.InvoiceState {
	t.Helper()
	w := httptest.NewRecorder()
	e.invoice.GetInvoice(w, httptest.NewRequest("GET", "/invoice", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.InvoiceState
	testutil.AssertJSON(t, w, &state)
	return state
}

// uploadRequest builds a multipart upload with the given declared type.
func uploadRequest(t *testing.T, name, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("Failed to create part: %v", err)
	}
	part.Write(data)
	mw.Close()

	req := httptest.NewRequest("POST", "/invoice/document", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func bytesReader(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

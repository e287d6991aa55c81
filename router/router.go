// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/handlers"
	"github.com/danielhkuo/invoice-entry/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, ws *handlers.Workspace) *http.ServeMux {
	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(ws)
	invoiceHandler := handlers.NewInvoiceHandler(db, ws)
	documentHandler := handlers.NewDocumentHandler(ws, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /session", middleware.WithLogging(authHandler.GetSession))

	// Invoice form (requires a session)
	mux.HandleFunc("GET /invoice", middleware.WithLogging(invoiceHandler.GetInvoice))
	mux.HandleFunc("GET /invoice/options", middleware.WithLogging(invoiceHandler.GetOptions))
	mux.HandleFunc("PUT /invoice/fields/{field}", middleware.WithLogging(invoiceHandler.UpdateField))
	mux.HandleFunc("POST /invoice/fields/{field}/blur", middleware.WithLogging(invoiceHandler.BlurField))
	mux.HandleFunc("PUT /invoice/tab/{tab}", middleware.WithLogging(invoiceHandler.SelectTab))
	mux.HandleFunc("POST /invoice/populate", middleware.WithLogging(invoiceHandler.Populate))
	mux.HandleFunc("POST /invoice/submit", middleware.WithLogging(invoiceHandler.Submit))

	// Document preview (requires a session)
	mux.HandleFunc("POST /invoice/document", middleware.WithLogging(documentHandler.Upload))
	mux.HandleFunc("GET /invoice/document", middleware.WithLogging(documentHandler.GetDocument))
	mux.HandleFunc("DELETE /invoice/document", middleware.WithLogging(documentHandler.DeleteDocument))
	mux.HandleFunc("GET /invoice/preview", middleware.WithLogging(documentHandler.GetPreview))
	mux.HandleFunc("PUT /invoice/preview/page", middleware.WithLogging(documentHandler.SetPage))
	mux.HandleFunc("POST /invoice/preview/retry", middleware.WithLogging(documentHandler.Retry))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("invoice-entry API v1"))
	})

	return mux
}

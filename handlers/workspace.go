// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/draft"
	"github.com/danielhkuo/invoice-entry/editor"
	"github.com/danielhkuo/invoice-entry/middleware"
	"github.com/danielhkuo/invoice-entry/preview"
	"github.com/danielhkuo/invoice-entry/session"
	"github.com/danielhkuo/invoice-entry/storage"
)

// NotSignedInMessage is returned by every invoice route without a session.
const NotSignedInMessage = "Not signed in"

// Workspace ties the session to the editor it gates. An editor exists
// exactly while a session does: signing in mounts a fresh one and signing
// out tears it down.
type Workspace struct {
	sessions *session.Store
	store    storage.Store
	cfg      cliparse.Config
	viewer   preview.Viewer

	mu      sync.Mutex
	current *session.Session
	editor  *editor.Editor
}

// NewWorkspace starts from the session loaded at startup. A non-nil
// current session gets an editor restored from the saved draft.
func NewWorkspace(ctx context.Context, sessions *session.Store, store storage.Store, cfg cliparse.Config, current *session.Session) *Workspace {
	ws := &Workspace{
		sessions: sessions,
		store:    store,
		cfg:      cfg,
		viewer:   preview.PageCounter{},
	}
	if current != nil {
		ws.current = current
		ws.editor = ws.mount(ctx)
	}
	return ws
}

func (ws *Workspace) mount(ctx context.Context) *editor.Editor {
	drafts := draft.NewManager(ws.store, ws.cfg.DraftDebounce, log.Logger)
	return editor.Open(ctx, drafts, ws.viewer)
}

// SignIn writes the session record and mounts a fresh editor, replacing
// any editor already mounted.
func (ws *Workspace) SignIn(ctx context.Context, username string) (*session.Session, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	sess, err := ws.sessions.Start(ctx, username)
	if err != nil {
		return nil, err
	}
	if ws.editor != nil {
		ws.editor.Close()
	}
	ws.current = sess
	ws.editor = ws.mount(ctx)
	return sess, nil
}

// SignOut removes the session record and tears the editor down. A draft
// save that has not fired yet is discarded. Safe to call when signed out.
func (ws *Workspace) SignOut(ctx context.Context) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if err := ws.sessions.End(ctx); err != nil {
		return err
	}
	if ws.editor != nil {
		ws.editor.Close()
	}
	ws.current = nil
	ws.editor = nil
	return nil
}

// Current returns the signed-in session, or nil.
func (ws *Workspace) Current() *session.Session {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.current
}

// Editor returns the mounted editor and its session.
func (ws *Workspace) Editor() (*editor.Editor, *session.Session, bool) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.editor == nil {
		return nil, nil, false
	}
	return ws.editor, ws.current, true
}

// Close tears down the mounted editor without ending the session, so the
// user is still signed in on the next start.
func (ws *Workspace) Close() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.editor != nil {
		ws.editor.Close()
		ws.editor = nil
	}
}

// requireEditor writes a 401 when nobody is signed in.
func requireEditor(w http.ResponseWriter, ws *Workspace) (*editor.Editor, *session.Session, bool) {
	ed, sess, ok := ws.Editor()
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, NotSignedInMessage)
	}
	return ed, sess, ok
}

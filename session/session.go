// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/storage"
)

// StorageKey is the only storage key this package reads or writes.
const StorageKey = "userSession"

// Session is the signed-in user. Its presence in storage is what
// "authenticated" means.
type Session struct {
	Username string `json:"username"`
}

// Store owns the session record. No other package touches StorageKey.
type Store struct {
	store storage.Store
}

func NewStore(store storage.Store) *Store {
	return &Store{store: store}
}

// HasSession reports whether a readable session record exists right now.
// A corrupt record counts as no session, the same as in Load.
func (s *Store) HasSession(ctx context.Context) (bool, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return sess != nil, nil
}

// Load reads the session record once, typically at startup. It returns nil
// when there is no record. A record that cannot be decoded is logged and
// treated as no session.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	raw, ok, err := s.store.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Warn().Err(err).Msg("session record is corrupt, ignoring")
		return nil, nil
	}
	return &sess, nil
}

// Start writes a session record for username. Calling it again overwrites
// the record with the same content.
func (s *Store) Start(ctx context.Context, username string) (*Session, error) {
	sess := &Session{Username: username}
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetItem(ctx, StorageKey, string(raw)); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return sess, nil
}

// End removes the session record. Safe to call without a session.
func (s *Store) End(ctx context.Context) error {
	if err := s.store.RemoveItem(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

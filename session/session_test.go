// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/invoice-entry/auth"
	"github.com/danielhkuo/invoice-entry/session"
	"github.com/danielhkuo/invoice-entry/storage"
	"github.com/danielhkuo/invoice-entry/testutil"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(storage.NewSQLStore(testutil.SetupTestDB(t)))

	has, err := store.HasSession(ctx)
	if err != nil || has {
		t.Fatalf("HasSession() on fresh store = %v, %v; want false", has, err)
	}

	if !auth.ValidateCredentials("admin", "admin123") {
		t.Fatal("admin/admin123 should be accepted")
	}

	sess, err := store.Start(ctx, "admin")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if sess.Username != "admin" {
		t.Errorf("Start() username = %q", sess.Username)
	}
	// Idempotent
	if _, err := store.Start(ctx, "admin"); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}

	if has, _ := store.HasSession(ctx); !has {
		t.Error("HasSession() = false after Start")
	}

	loaded, err := store.Load(ctx)
	if err != nil || loaded == nil || loaded.Username != "admin" {
		t.Errorf("Load() = %+v, %v; want admin session", loaded, err)
	}

	if err := store.End(ctx); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := store.End(ctx); err != nil {
		t.Fatalf("End() without session error = %v", err)
	}
	if has, _ := store.HasSession(ctx); has {
		t.Error("HasSession() = true after End")
	}
}

func TestLoad_CorruptRecord(t *testing.T) {
	mem := testutil.NewMemoryStore()
	mem.Put(session.StorageKey, "{not json")
	store := session.NewStore(mem)

	sess, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sess != nil {
		t.Errorf("Load() = %+v, want nil for corrupt record", sess)
	}

	ok, err := store.HasSession(context.Background())
	if err != nil {
		t.Fatalf("HasSession() error = %v", err)
	}
	if ok {
		t.Error("HasSession() = true for corrupt record, want false")
	}
}

func TestStart_WriteFailure(t *testing.T) {
	mem := testutil.NewMemoryStore()
	mem.FailWrites(true)
	store := session.NewStore(mem)

	if _, err := store.Start(context.Background(), "demo"); !errors.Is(err, testutil.ErrStorageUnavailable) {
		t.Errorf("Start() error = %v, want wrapped ErrStorageUnavailable", err)
	}
}

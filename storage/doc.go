// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the local key/value store and the submission log.

# Key/Value Store

Store mirrors the browser local storage API (GetItem, SetItem, RemoveItem).
SQLStore persists it in the local_storage table:

	store := storage.NewSQLStore(conn)
	err := store.SetItem(ctx, "userSession", `{"username":"admin"}`)

A missing key is reported through the boolean result, never as an error.

# Submissions

Submissions records every finalized invoice:

	subs := storage.NewSubmissions(conn)
	sub, err := subs.Record(ctx, "admin", payload)
*/
package storage

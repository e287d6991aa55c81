// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draft persists the invoice form as a draft under the
"invoiceFormData" storage key.

# Debounced Saves

ScheduleSave is called on every change. Saves are trailing-edge debounced:

	m := draft.NewManager(store, time.Second, log.Logger)
	m.ScheduleSave(v1)
	m.ScheduleSave(v2) // replaces v1, restarts the timer
	// one second of quiet later, v2 is written once

The pending write is a single slot owned by the Manager. Rescheduling
replaces it; Close releases it without writing. SaveNow writes synchronously
and drops the slot.

# Loading

Load distinguishes the reasons a draft was not restored:

	v, res := m.Load(ctx)
	switch res {
	case draft.Loaded:
	case draft.NoDraft, draft.Corrupt, draft.ReadFailed:
		// start from empty values
	}

Each case is logged differently; none is shown to the user.

# Write Failures

A failed write is logged and kept; Err returns it until a later write
succeeds, so the form can report it.
*/
package draft

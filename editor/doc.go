// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package editor ties the invoice form together for one signed-in user.

An Editor is mounted on login and closed on logout. It owns the form values,
the touched set, the tab navigator, the draft manager and the PDF preview.
Callers read through Snapshot and write through Update, Blur, SelectTab,
Populate and Submit only.

	ed := editor.Open(ctx, drafts, nil)
	defer ed.Close()

	ed.Update(form.FieldVendor, "Tech Solutions Inc.") // schedules a draft save
	ed.Blur(form.FieldVendor)

	values, blocked, err := ed.Submit()
	if errors.Is(err, editor.ErrInvalid) {
		// blocked.FirstField, blocked.FirstTab
	}

Submit blocks while any required field is empty: all fields become touched
so every error shows, and nothing is written.
*/
package editor

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/invoice-entry/editor"
	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/models"
	"github.com/danielhkuo/invoice-entry/preview"
)

func errorMap(errs form.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for f, msg := range errs {
		out[string(f)] = msg
	}
	return out
}

func previewState(s preview.State) models.PreviewState {
	return models.PreviewState{
		HasDocument: s.HasDocument,
		DocumentID:  s.ID,
		Name:        s.Name,
		Size:        s.Size,
		SizeLabel:   s.SizeLabel,
		NumPages:    s.NumPages,
		Page:        s.Page,
		Error:       s.Error,
	}
}

// invoiceState renders a snapshot. Values, touched fields and visible
// fields are listed in form order.
func invoiceState(username string, snap editor.Snapshot) models.InvoiceState {
	values := make(map[string]string, len(form.Fields()))
	touched := []string{}
	for _, f := range form.Fields() {
		values[string(f)], _ = snap.Values.Get(f)
		if snap.Touched[f] {
			touched = append(touched, string(f))
		}
	}

	tabs := make([]models.TabInfo, 0, len(form.Tabs))
	for _, t := range form.Tabs {
		tabs = append(tabs, models.TabInfo{
			Name:   string(t),
			Label:  form.TabLabel(t),
			Active: t == snap.ActiveTab,
		})
	}

	fields := make([]models.FieldState, 0, len(snap.VisibleFields))
	for _, f := range snap.VisibleFields {
		v, _ := snap.Values.Get(f)
		fields = append(fields, models.FieldState{
			Name:     string(f),
			Label:    form.Label(f),
			Required: form.Required(f),
			Value:    v,
			Error:    snap.VisibleErrors[f],
		})
	}

	state := models.InvoiceState{
		Username:      username,
		Values:        values,
		Errors:        errorMap(snap.VisibleErrors),
		AllErrors:     errorMap(snap.Errors),
		Touched:       touched,
		ActiveTab:     string(snap.ActiveTab),
		Tabs:          tabs,
		VisibleFields: fields,
		Preview:       previewState(snap.Preview),
	}
	if snap.SaveError != nil {
		state.SaveError = snap.SaveError.Error()
	}
	return state
}

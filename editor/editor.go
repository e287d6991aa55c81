// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/draft"
	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/preview"
)

var (
	// ErrInvalid is returned by Submit when required fields are empty.
	ErrInvalid = errors.New("invoice has validation errors")
	// ErrClosed is returned by Update, Populate and Submit after Close.
	ErrClosed = errors.New("editor is closed")
)

// Snapshot is a consistent view of the editor for display.
type Snapshot struct {
	Values        form.Values
	Errors        form.Errors
	VisibleErrors form.Errors
	Touched       form.Touched
	ActiveTab     form.Tab
	VisibleFields []form.Field
	SaveError     error
	Preview       preview.State
}

// SubmitResult describes a blocked submit.
type SubmitResult struct {
	Errors     form.Errors
	FirstField form.Field
	FirstTab   form.Tab
}

// Editor is one mounted invoice form. It owns the values, the touched set,
// the tab navigator, the draft manager and the preview; every change to the
// values goes through its methods. Safe for concurrent use.
type Editor struct {
	drafts  *draft.Manager
	preview *preview.Preview

	mu      sync.Mutex
	values  form.Values
	touched form.Touched
	tabs    *form.Navigator
	closed  bool
}

// Open mounts a fresh editor: vendor tab, nothing touched, values restored
// from the saved draft when there is a readable one.
func Open(ctx context.Context, drafts *draft.Manager, viewer preview.Viewer) *Editor {
	values, res := drafts.Load(ctx)
	log.Info().Str("draft", res.String()).Msg("invoice form mounted")

	return &Editor{
		drafts:  drafts,
		preview: preview.New(viewer),
		values:  values,
		touched: make(form.Touched),
		tabs:    form.NewNavigator(),
	}
}

// Update sets one field and schedules a draft save. After Close it returns
// ErrClosed.
func (e *Editor) Update(f form.Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if err := e.values.Set(f, value); err != nil {
		return err
	}
	e.drafts.ScheduleSave(e.values)
	return nil
}

// Blur marks f touched. A field stays touched for the life of the editor.
func (e *Editor) Blur(f form.Field) error {
	if _, err := form.ParseField(string(f)); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched[f] = true
	return nil
}

// SelectTab switches the visible field group. Values are neither reset nor
// revalidated.
func (e *Editor) SelectTab(t form.Tab) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tabs.Select(t)
}

// Populate replaces every value with the sample invoice and loads the
// sample PDF. No field is marked touched.
func (e *Editor) Populate() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.values = form.Sample()
	e.drafts.ScheduleSave(e.values)
	e.mu.Unlock()

	return e.preview.Load(form.SamplePDFName, form.SamplePDFType, form.SamplePDF())
}

// Submit validates the form. With errors, every field is marked touched and
// ErrInvalid is returned with the first failing field; nothing is written.
// Otherwise the values are written at once and returned. After Close it
// returns ErrClosed and writes nothing.
func (e *Editor) Submit() (form.Values, *SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return form.Values{}, nil, ErrClosed
	}

	errs := form.Validate(e.values)
	if len(errs) > 0 {
		e.touched.TouchAll()
		first, _ := errs.First()
		return form.Values{}, &SubmitResult{
			Errors:     errs,
			FirstField: first,
			FirstTab:   form.TabOf(first),
		}, ErrInvalid
	}

	if err := e.drafts.SaveNow(e.values); err != nil {
		return form.Values{}, nil, err
	}
	return e.values, nil, nil
}

// Preview returns the editor's document preview.
func (e *Editor) Preview() *preview.Preview {
	return e.preview
}

// Snapshot returns the current state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	errs := form.Validate(e.values)
	touched := make(form.Touched, len(e.touched))
	for f, v := range e.touched {
		touched[f] = v
	}

	return Snapshot{
		Values:        e.values,
		Errors:        errs,
		VisibleErrors: form.Visible(errs, touched),
		Touched:       touched,
		ActiveTab:     e.tabs.Active(),
		VisibleFields: e.tabs.VisibleFields(),
		SaveError:     e.drafts.Err(),
		Preview:       e.preview.State(),
	}
}

// Close tears the editor down. A draft save that has not fired yet is
// discarded.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.drafts.Close()
}

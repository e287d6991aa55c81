// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/invoice-entry/draft"
	"github.com/danielhkuo/invoice-entry/editor"
	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/models"
	"github.com/danielhkuo/invoice-entry/session"
	"github.com/danielhkuo/invoice-entry/storage"
	"github.com/danielhkuo/invoice-entry/testutil"
)

func TestInvoiceRoutes_RequireSession(t *testing.T) {
	env := newTestEnv(t, "")

	routes := map[string]http.HandlerFunc{
		"GET /invoice":                  env.invoice.GetInvoice,
		"GET /invoice/options":          env.invoice.GetOptions,
		"PUT /invoice/fields/vendor":    env.invoice.UpdateField,
		"POST /invoice/fields/x/blur":   env.invoice.BlurField,
		"PUT /invoice/tab/invoice":      env.invoice.SelectTab,
		"POST /invoice/populate":        env.invoice.Populate,
		"POST /invoice/submit":          env.invoice.Submit,
		"GET /invoice/document":         env.docs.GetDocument,
		"DELETE /invoice/document":      env.docs.DeleteDocument,
		"GET /invoice/preview":          env.docs.GetPreview,
		"PUT /invoice/preview/page":     env.docs.SetPage,
		"POST /invoice/preview/retry":   env.docs.Retry,
		"POST /invoice/document upload": env.docs.Upload,
	}

	for name, handler := range routes {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest("GET", "/invoice", nil))

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != NotSignedInMessage {
				t.Errorf("Expected message %q, got %q", NotSignedInMessage, resp.Message)
			}
		})
	}
}

func TestGetInvoice_FreshForm(t *testing.T) {
	env := newTestEnv(t, "demo")
	state := env.getState(t)

	if state.ActiveTab != "vendor" {
		t.Errorf("Expected active tab vendor, got %s", state.ActiveTab)
	}
	if len(state.Values) != 16 {
		t.Errorf("Expected 16 values, got %d", len(state.Values))
	}
	if len(state.AllErrors) != 14 {
		t.Errorf("Expected 14 errors, got %d", len(state.AllErrors))
	}
	if len(state.Errors) != 0 {
		t.Errorf("Expected no visible errors on a fresh form, got %v", state.Errors)
	}
	if len(state.VisibleFields) != 2 || state.VisibleFields[0].Name != "vendor" {
		t.Errorf("Unexpected visible fields: %+v", state.VisibleFields)
	}
	if len(state.Tabs) != 3 || !state.Tabs[0].Active {
		t.Errorf("Unexpected tabs: %+v", state.Tabs)
	}
}

func TestGetOptions(t *testing.T) {
	env := newTestEnv(t, "demo")
	w := httptest.NewRecorder()
	env.invoice.GetOptions(w, httptest.NewRequest("GET", "/invoice/options", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var opts form.Options
	testutil.AssertJSON(t, w, &opts)
	if diff := cmp.Diff(form.SelectOptions(), opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		body           interface{}
		expectedStatus int
	}{
		{"valid field", "vendor", models.UpdateFieldRequest{Value: "Acme"}, http.StatusOK},
		{"empty value allowed", "comments", models.UpdateFieldRequest{Value: ""}, http.StatusOK},
		{"unknown field", "taxRate", models.UpdateFieldRequest{Value: "1"}, http.StatusBadRequest},
		{"invalid JSON", "vendor", "not json", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "demo")

			var req *http.Request
			if s, ok := tt.body.(string); ok {
				req = httptest.NewRequest("PUT", "/invoice/fields/"+tt.field, bytesReader(s))
			} else {
				req = testutil.MakeRequest("PUT", "/invoice/fields/"+tt.field, tt.body, nil)
			}
			req.SetPathValue("field", tt.field)
			w := httptest.NewRecorder()

			env.invoice.UpdateField(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var state models.InvoiceState
				testutil.AssertJSON(t, w, &state)
				want := tt.body.(models.UpdateFieldRequest).Value
				if state.Values[tt.field] != want {
					t.Errorf("Expected %s=%q, got %q", tt.field, want, state.Values[tt.field])
				}
			}
		})
	}
}

func TestUpdateField_SavesDraftAfterQuietPeriod(t *testing.T) {
	env := newTestEnv(t, "demo")

	for _, v := range []string{"A", "Ac", "Acme"} {
		req := testutil.MakeRequest("PUT", "/invoice/fields/vendor", models.UpdateFieldRequest{Value: v}, nil)
		req.SetPathValue("field", "vendor")
		env.invoice.UpdateField(httptest.NewRecorder(), req)
	}

	var saved form.Values
	testutil.Eventually(t, time.Second, func() bool {
		raw, ok, err := env.store.GetItem(context.Background(), draft.StorageKey)
		if err != nil || !ok {
			return false
		}
		return json.Unmarshal([]byte(raw), &saved) == nil && saved.Vendor == "Acme"
	})
}

func TestBlurField_ShowsError(t *testing.T) {
	env := newTestEnv(t, "demo")

	req := testutil.MakeRequest("POST", "/invoice/fields/vendor/blur", nil, nil)
	req.SetPathValue("field", "vendor")
	w := httptest.NewRecorder()
	env.invoice.BlurField(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.InvoiceState
	testutil.AssertJSON(t, w, &state)
	if state.Errors["vendor"] != "Vendor is required" {
		t.Errorf("Expected visible vendor error, got %v", state.Errors)
	}
	if len(state.Errors) != 1 {
		t.Errorf("Expected only the blurred field's error, got %v", state.Errors)
	}
	if state.VisibleFields[0].Error != "Vendor is required" {
		t.Errorf("Expected error on visible field, got %+v", state.VisibleFields[0])
	}

	// Blurring a non-required field touches it without an error.
	req = testutil.MakeRequest("POST", "/invoice/fields/vendorAddress/blur", nil, nil)
	req.SetPathValue("field", "vendorAddress")
	w = httptest.NewRecorder()
	env.invoice.BlurField(w, req)

	state = models.InvoiceState{}
	testutil.AssertJSON(t, w, &state)
	if diff := cmp.Diff([]string{"vendor", "vendorAddress"}, state.Touched); diff != "" {
		t.Errorf("touched mismatch (-want +got):\n%s", diff)
	}
	if _, ok := state.Errors["vendorAddress"]; ok {
		t.Error("Expected no error for vendorAddress")
	}

	req = testutil.MakeRequest("POST", "/invoice/fields/nope/blur", nil, nil)
	req.SetPathValue("field", "nope")
	w = httptest.NewRecorder()
	env.invoice.BlurField(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSelectTab(t *testing.T) {
	env := newTestEnv(t, "demo")

	req := testutil.MakeRequest("PUT", "/invoice/tab/invoice", nil, nil)
	req.SetPathValue("tab", "invoice")
	w := httptest.NewRecorder()
	env.invoice.SelectTab(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.InvoiceState
	testutil.AssertJSON(t, w, &state)
	if state.ActiveTab != "invoice" {
		t.Errorf("Expected active tab invoice, got %s", state.ActiveTab)
	}
	if len(state.VisibleFields) != 12 {
		t.Errorf("Expected 12 invoice fields, got %d", len(state.VisibleFields))
	}

	req = testutil.MakeRequest("PUT", "/invoice/tab/billing", nil, nil)
	req.SetPathValue("tab", "billing")
	w = httptest.NewRecorder()
	env.invoice.SelectTab(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	if got := env.getState(t).ActiveTab; got != "invoice" {
		t.Errorf("Expected unknown tab to leave invoice active, got %s", got)
	}
}

func TestPopulate(t *testing.T) {
	env := newTestEnv(t, "demo")

	w := httptest.NewRecorder()
	env.invoice.Populate(w, httptest.NewRequest("POST", "/invoice/populate", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.InvoiceState
	testutil.AssertJSON(t, w, &state)
	for name, v := range state.Values {
		if v == "" {
			t.Errorf("Expected %s populated", name)
		}
	}
	if len(state.AllErrors) != 0 {
		t.Errorf("Expected populated form to validate, got %v", state.AllErrors)
	}
	if len(state.Touched) != 0 {
		t.Errorf("Expected populate to touch nothing, got %v", state.Touched)
	}
	if !state.Preview.HasDocument || state.Preview.Name != form.SamplePDFName {
		t.Errorf("Expected sample document loaded, got %+v", state.Preview)
	}
	if state.Preview.NumPages != 2 || state.Preview.Page != 1 {
		t.Errorf("Expected 2 pages on page 1, got %+v", state.Preview)
	}
}

func TestSubmit_Blocked(t *testing.T) {
	env := newTestEnv(t, "demo")

	req := testutil.MakeRequest("PUT", "/invoice/fields/vendor", models.UpdateFieldRequest{Value: "Acme"}, nil)
	req.SetPathValue("field", "vendor")
	env.invoice.UpdateField(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	env.invoice.Submit(w, httptest.NewRequest("POST", "/invoice/submit", nil))
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	var resp models.SubmitErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.FirstField != "purchaseOrderNumber" || resp.FirstTab != "invoice" {
		t.Errorf("Expected first failure purchaseOrderNumber on invoice, got %s on %s", resp.FirstField, resp.FirstTab)
	}
	if resp.Message != "Purchase Order Number is required" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if len(resp.Errors) != 13 {
		t.Errorf("Expected 13 errors, got %d", len(resp.Errors))
	}

	state := env.getState(t)
	if len(state.Touched) != 16 {
		t.Errorf("Expected every field touched after blocked submit, got %d", len(state.Touched))
	}
	if len(state.Errors) != 13 {
		t.Errorf("Expected all errors visible, got %d", len(state.Errors))
	}

	subs, err := storage.NewSubmissions(env.db).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Errorf("Expected no submission recorded, got %d", len(subs))
	}
}

func TestSubmit_Success(t *testing.T) {
	env := newTestEnv(t, "demo")
	env.invoice.Populate(httptest.NewRecorder(), httptest.NewRequest("POST", "/invoice/populate", nil))

	w := httptest.NewRecorder()
	env.invoice.Submit(w, httptest.NewRequest("POST", "/invoice/submit", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SubmissionID == "" {
		t.Error("Expected submission id")
	}
	if resp.Message != models.SubmitSuccessMessage {
		t.Errorf("Unexpected message %q", resp.Message)
	}

	subs, err := storage.NewSubmissions(env.db).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].ID != resp.SubmissionID || subs[0].Username != "demo" {
		t.Fatalf("Unexpected submissions: %+v", subs)
	}
	var recorded form.Values
	if err := json.Unmarshal(subs[0].Payload, &recorded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(form.Sample(), recorded); diff != "" {
		t.Errorf("recorded payload mismatch (-want +got):\n%s", diff)
	}

	raw, ok, err := env.store.GetItem(context.Background(), draft.StorageKey)
	if err != nil || !ok {
		t.Fatalf("Expected draft written on submit: ok=%v err=%v", ok, err)
	}
	var saved form.Values
	_ = json.Unmarshal([]byte(raw), &saved)
	if saved != form.Sample() {
		t.Errorf("Expected saved draft to match submitted values")
	}
}

func TestSubmit_AfterSignOut(t *testing.T) {
	store := testutil.NewMemoryStore()
	sessions := session.NewStore(store)
	cfg := testutil.GetTestConfig()
	cfg.DraftDebounce = time.Minute

	current, err := sessions.Start(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	ws := NewWorkspace(context.Background(), sessions, store, cfg, current)
	t.Cleanup(ws.Close)

	// Editor fetched by a request that is still in flight when the user signs out.
	ed, _, _ := ws.Editor()
	if err := ed.Populate(); err != nil {
		t.Fatal(err)
	}
	if err := ws.SignOut(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, _, err := ed.Submit(); !errors.Is(err, editor.ErrClosed) {
		t.Fatalf("Submit() after sign out error = %v, want ErrClosed", err)
	}
	if err := ed.Update(form.FieldVendor, "late"); !errors.Is(err, editor.ErrClosed) {
		t.Errorf("Update() after sign out error = %v, want ErrClosed", err)
	}
	if n := store.Writes(draft.StorageKey); n != 0 {
		t.Errorf("Expected no draft write after sign out, got %d", n)
	}
}

func TestClosedEditorResponses(t *testing.T) {
	env := newTestEnv(t, "demo")
	ed, sess, _ := env.ws.Editor()

	// A later login replaces the editor; the old one must not accept writes.
	if _, err := env.ws.SignIn(context.Background(), "user"); err != nil {
		t.Fatal(err)
	}
	stale := &Workspace{current: sess, editor: ed}
	h := &InvoiceHandler{ws: stale, submissions: storage.NewSubmissions(env.db)}

	w := httptest.NewRecorder()
	h.Submit(w, httptest.NewRequest("POST", "/invoice/submit", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	h.Populate(w, httptest.NewRequest("POST", "/invoice/populate", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req := testutil.MakeRequest("PUT", "/invoice/fields/vendor", models.UpdateFieldRequest{Value: "Acme"}, nil)
	req.SetPathValue("field", "vendor")
	w = httptest.NewRecorder()
	h.UpdateField(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != NotSignedInMessage {
		t.Errorf("Expected message %q, got %q", NotSignedInMessage, resp.Message)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestFields(t *testing.T) {
	fields := Fields()
	if len(fields) != 16 {
		t.Fatalf("Fields() returned %d fields, want 16", len(fields))
	}
	if fields[0] != FieldVendor || fields[15] != FieldComments {
		t.Errorf("Fields() order = %v", fields)
	}
}

func TestGetSet(t *testing.T) {
	var v Values
	for i, f := range Fields() {
		want := string(rune('a' + i))
		if err := v.Set(f, want); err != nil {
			t.Fatalf("Set(%s) error = %v", f, err)
		}
		got, err := v.Get(f)
		if err != nil || got != want {
			t.Errorf("Get(%s) = %q, %v; want %q", f, got, err, want)
		}
	}

	if err := v.Set("nickname", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(unknown) error = %v, want ErrUnknownField", err)
	}
	if _, err := v.Get("nickname"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownField", err)
	}
}

func TestValuesJSON_AlwaysSixteenKeys(t *testing.T) {
	raw, err := json.Marshal(Values{})
	if err != nil {
		t.Fatal(err)
	}

	var keys map[string]string
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatal(err)
	}
	if len(keys) != 16 {
		t.Errorf("empty Values marshals %d keys, want 16", len(keys))
	}
	for _, f := range Fields() {
		if _, ok := keys[string(f)]; !ok {
			t.Errorf("key %s missing from JSON", f)
		}
	}
}

func TestParseField(t *testing.T) {
	if f, err := ParseField("glPostDate"); err != nil || f != FieldGLPostDate {
		t.Errorf("ParseField(glPostDate) = %s, %v", f, err)
	}
	if _, err := ParseField("GLPostDate"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseField is case-sensitive, got %v", err)
	}
}

func TestSample(t *testing.T) {
	v := Sample()
	for _, f := range Fields() {
		if got, _ := v.Get(f); got == "" {
			t.Errorf("Sample() leaves %s empty", f)
		}
	}

	pdf := SamplePDF()
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("SamplePDF() is not a PDF")
	}
	// Callers get their own copy
	pdf[0] = 'X'
	if SamplePDF()[0] != '%' {
		t.Error("SamplePDF() returned shared backing array")
	}
}

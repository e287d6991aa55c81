// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

// Errors maps each failing field to its message.
type Errors map[Field]string

// Touched records the fields that have lost focus at least once.
type Touched map[Field]bool

// Validate returns one entry per required field that is empty. Only zero
// length counts as empty; whitespace and malformed dates or amounts pass.
func Validate(v Values) Errors {
	errs := make(Errors)
	for _, s := range specs {
		if s.required && *s.value(&v) == "" {
			errs[s.field] = s.label + " is required"
		}
	}
	return errs
}

// First returns the earliest failing field in form order.
func (e Errors) First() (Field, bool) {
	for _, s := range specs {
		if _, ok := e[s.field]; ok {
			return s.field, true
		}
	}
	return "", false
}

// Visible filters errs down to the fields that are also touched.
func Visible(errs Errors, touched Touched) Errors {
	out := make(Errors)
	for f, msg := range errs {
		if touched[f] {
			out[f] = msg
		}
	}
	return out
}

// TouchAll marks every field touched.
func (t Touched) TouchAll() {
	for _, s := range specs {
		t[s.field] = true
	}
}

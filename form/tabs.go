// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"errors"
	"fmt"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tab is one of the three sections of the form.
type Tab string

const (
	TabVendor   Tab = "vendor"
	TabInvoice  Tab = "invoice"
	TabComments Tab = "comments"
)

// Tabs lists the sections in display order.
var Tabs = []Tab{TabVendor, TabInvoice, TabComments}

var tabLabels = map[Tab]string{
	TabVendor:   "Vendor Details",
	TabInvoice:  "Invoice Details",
	TabComments: "Comments",
}

// ParseTab validates a tab name.
func ParseTab(name string) (Tab, error) {
	t := Tab(name)
	if _, ok := tabLabels[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
	}
	return t, nil
}

// TabLabel returns the heading shown for t.
func TabLabel(t Tab) string {
	return tabLabels[t]
}

// FieldsFor returns the field group shown while t is active.
func FieldsFor(t Tab) []Field {
	var out []Field
	for _, s := range specs {
		if s.tab == t {
			out = append(out, s.field)
		}
	}
	return out
}

// Navigator tracks the active tab. Every tab is reachable from every other
// and nothing but Select changes it. Not safe for concurrent use.
type Navigator struct {
	active Tab
}

// NewNavigator starts on the vendor tab.
func NewNavigator() *Navigator {
	return &Navigator{active: TabVendor}
}

func (n *Navigator) Active() Tab {
	return n.active
}

// Select makes t active. Selecting the active tab is a no-op. An unknown
// tab leaves the state unchanged.
func (n *Navigator) Select(t Tab) error {
	if _, ok := tabLabels[t]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	n.active = t
	return nil
}

// VisibleFields returns the field group of the active tab.
func (n *Navigator) VisibleFields() []Field {
	return FieldsFor(n.active)
}

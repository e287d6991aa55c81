// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form defines the invoice form: its sixteen fields, the validation
rules, the tab layout and the canned sample data.

# Fields

Values is a flat struct of sixteen strings. Because it is a struct, a field
can be empty but never absent. Fields are addressed by name through Get and
Set so callers can route every write through one entry point.

# Validation

Validate is pure and holds no state:

	errs := form.Validate(values) // map[Field]string, e.g. "Vendor is required"

Fourteen fields are required; vendorAddress and comments never are. Only a
zero-length string fails. Whitespace-only values and malformed dates or
amounts pass.

An error is shown to the user only once the field has been touched:

	visible := form.Visible(errs, touched)

# Tabs

	vendor   → vendor, vendorAddress
	invoice  → purchaseOrderNumber … expenseDescription
	comments → comments

Navigator starts on vendor. Select is the only transition and is never
gated by validation.
*/
package form

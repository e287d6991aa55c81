// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

// Options are the choices offered by the select fields. They are
// suggestions only; validation does not restrict values to them.
type Options struct {
	Vendors      []string `json:"vendors"`
	PaymentTerms []string `json:"payment_terms"`
	Departments  []string `json:"departments"`
	Accounts     []string `json:"accounts"`
	Locations    []string `json:"locations"`
}

// SelectOptions returns a fresh copy of the option lists.
func SelectOptions() Options {
	return Options{
		Vendors: []string{
			"A - 1 Exterminators",
			"ABC Cleaning Services",
			"Tech Solutions Inc.",
			"Office Supplies Co.",
			"Maintenance Pro LLC",
		},
		PaymentTerms: []string{"Net 15", "Net 30", "Net 45", "Net 60", "Due on Receipt"},
		Departments: []string{
			"Accounting",
			"Administration",
			"Facilities",
			"Human Resources",
			"IT",
			"Marketing",
			"Operations",
			"Sales",
		},
		Accounts: []string{
			"Office Supplies",
			"Maintenance & Repairs",
			"Professional Services",
			"Utilities",
			"Insurance",
			"Software Licenses",
			"Travel & Entertainment",
			"Training & Development",
		},
		Locations: []string{"Main Office", "Branch Office", "Warehouse", "Remote Location", "Corporate HQ"},
	}
}

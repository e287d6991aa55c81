// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	_ "embed"
)

// SamplePDFName and SamplePDFType describe the canned document that goes
// with Sample.
const (
	SamplePDFName = "dummy-invoice.pdf"
	SamplePDFType = "application/pdf"
)

//go:embed assets/dummy-invoice.pdf
var samplePDF []byte

// Sample returns the canned invoice used by "Populate Dummy Data".
// Every field is filled in, so it always validates.
func Sample() Values {
	return Values{
		Vendor:        "A - 1 Exterminators",
		VendorAddress: "550 Main St., Lynn",

		PurchaseOrder:      "PO-2024-001",
		InvoiceNumber:      "INV-2024-12345",
		InvoiceDate:        "2024-01-15",
		TotalAmount:        "2500.00",
		PaymentTerms:       "Net 30",
		InvoiceDueDate:     "2024-02-14",
		GLPostDate:         "2024-01-16",
		InvoiceDescription: "Monthly pest control services for office building including inspection, treatment, and follow-up maintenance.",

		LineAmount:         "2500.00",
		Department:         "Facilities",
		Account:            "Maintenance & Repairs",
		Location:           "Main Office",
		ExpenseDescription: "Pest control services - monthly maintenance contract",

		Comments: "Regular monthly service completed. Next scheduled visit: February 15, 2024. All areas treated according to contract specifications.",
	}
}

// SamplePDF returns a copy of the canned PDF payload.
func SamplePDF() []byte {
	out := make([]byte, len(samplePDF))
	copy(out, samplePDF)
	return out
}

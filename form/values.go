// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown field")

// Field names one of the sixteen invoice fields.
type Field string

const (
	FieldVendor             Field = "vendor"
	FieldVendorAddress      Field = "vendorAddress"
	FieldPurchaseOrder      Field = "purchaseOrderNumber"
	FieldInvoiceNumber      Field = "invoiceNumber"
	FieldInvoiceDate        Field = "invoiceDate"
	FieldTotalAmount        Field = "totalAmount"
	FieldPaymentTerms       Field = "paymentTerms"
	FieldInvoiceDueDate     Field = "invoiceDueDate"
	FieldGLPostDate         Field = "glPostDate"
	FieldInvoiceDescription Field = "invoiceDescription"
	FieldLineAmount         Field = "lineAmount"
	FieldDepartment         Field = "department"
	FieldAccount            Field = "account"
	FieldLocation           Field = "location"
	FieldExpenseDescription Field = "expenseDescription"
	FieldComments           Field = "comments"
)

// Values holds every invoice field as free text. Dates and amounts are
// not parsed. A zero Values is the empty form.
type Values struct {
	Vendor             string `json:"vendor" yaml:"vendor"`
	VendorAddress      string `json:"vendorAddress" yaml:"vendorAddress"`
	PurchaseOrder      string `json:"purchaseOrderNumber" yaml:"purchaseOrderNumber"`
	InvoiceNumber      string `json:"invoiceNumber" yaml:"invoiceNumber"`
	InvoiceDate        string `json:"invoiceDate" yaml:"invoiceDate"`
	TotalAmount        string `json:"totalAmount" yaml:"totalAmount"`
	PaymentTerms       string `json:"paymentTerms" yaml:"paymentTerms"`
	InvoiceDueDate     string `json:"invoiceDueDate" yaml:"invoiceDueDate"`
	GLPostDate         string `json:"glPostDate" yaml:"glPostDate"`
	InvoiceDescription string `json:"invoiceDescription" yaml:"invoiceDescription"`
	LineAmount         string `json:"lineAmount" yaml:"lineAmount"`
	Department         string `json:"department" yaml:"department"`
	Account            string `json:"account" yaml:"account"`
	Location           string `json:"location" yaml:"location"`
	ExpenseDescription string `json:"expenseDescription" yaml:"expenseDescription"`
	Comments           string `json:"comments" yaml:"comments"`
}

// fieldSpec describes one field: where it lives, what it is called and
// whether it must be filled in.
type fieldSpec struct {
	field    Field
	label    string
	tab      Tab
	required bool
	value    func(*Values) *string
}

// specs is in form order; the first failing field on submit is the first
// match in this slice.
var specs = []fieldSpec{
	{FieldVendor, "Vendor", TabVendor, true, func(v *Values) *string { return &v.Vendor }},
	{FieldVendorAddress, "Vendor Address", TabVendor, false, func(v *Values) *string { return &v.VendorAddress }},
	{FieldPurchaseOrder, "Purchase Order Number", TabInvoice, true, func(v *Values) *string { return &v.PurchaseOrder }},
	{FieldInvoiceNumber, "Invoice Number", TabInvoice, true, func(v *Values) *string { return &v.InvoiceNumber }},
	{FieldInvoiceDate, "Invoice Date", TabInvoice, true, func(v *Values) *string { return &v.InvoiceDate }},
	{FieldTotalAmount, "Total Amount", TabInvoice, true, func(v *Values) *string { return &v.TotalAmount }},
	{FieldPaymentTerms, "Payment Terms", TabInvoice, true, func(v *Values) *string { return &v.PaymentTerms }},
	{FieldInvoiceDueDate, "Invoice Due Date", TabInvoice, true, func(v *Values) *string { return &v.InvoiceDueDate }},
	{FieldGLPostDate, "GL Post Date", TabInvoice, true, func(v *Values) *string { return &v.GLPostDate }},
	{FieldInvoiceDescription, "Invoice Description", TabInvoice, true, func(v *Values) *string { return &v.InvoiceDescription }},
	{FieldLineAmount, "Line Amount", TabInvoice, true, func(v *Values) *string { return &v.LineAmount }},
	{FieldDepartment, "Department", TabInvoice, true, func(v *Values) *string { return &v.Department }},
	{FieldAccount, "Account", TabInvoice, true, func(v *Values) *string { return &v.Account }},
	{FieldLocation, "Location", TabInvoice, true, func(v *Values) *string { return &v.Location }},
	{FieldExpenseDescription, "Expense Description", TabInvoice, true, func(v *Values) *string { return &v.ExpenseDescription }},
	{FieldComments, "Comments", TabComments, false, func(v *Values) *string { return &v.Comments }},
}

var specIndex = func() map[Field]int {
	idx := make(map[Field]int, len(specs))
	for i, s := range specs {
		idx[s.field] = i
	}
	return idx
}()

// Fields returns all field names in form order.
func Fields() []Field {
	out := make([]Field, len(specs))
	for i, s := range specs {
		out[i] = s.field
	}
	return out
}

// ParseField validates a field name.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := specIndex[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Label returns the display label of f, or "" for an unknown field.
func Label(f Field) string {
	if i, ok := specIndex[f]; ok {
		return specs[i].label
	}
	return ""
}

// Required reports whether f must be non-empty.
func Required(f Field) bool {
	i, ok := specIndex[f]
	return ok && specs[i].required
}

// TabOf returns the tab whose field group contains f.
func TabOf(f Field) Tab {
	if i, ok := specIndex[f]; ok {
		return specs[i].tab
	}
	return ""
}

// Get returns the value of f.
func (v Values) Get(f Field) (string, error) {
	i, ok := specIndex[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return *specs[i].value(&v), nil
}

// Set overwrites the value of f.
func (v *Values) Set(f Field, value string) error {
	i, ok := specIndex[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*specs[i].value(v) = value
	return nil
}

package models

import "time"

// SubmitSuccessMessage is returned with an accepted invoice.
const SubmitSuccessMessage = "Invoice data saved successfully!"

// Page directions accepted by SetPageRequest
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateFieldRequest struct {
	Value string `json:"value"`
}

// Either Page or Direction is set. Page wins when both are.
type SetPageRequest struct {
	Page      int    `json:"page,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Response types

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type TabInfo struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type FieldState struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Value    string `json:"value"`
	Error    string `json:"error,omitempty"`
}

type PreviewState struct {
	HasDocument bool   `json:"has_document"`
	DocumentID  string `json:"document_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Size        int    `json:"size,omitempty"`
	SizeLabel   string `json:"size_label,omitempty"`
	NumPages    int    `json:"num_pages"`
	Page        int    `json:"page"`
	Error       string `json:"error,omitempty"`
}

type InvoiceState struct {
	Username      string            `json:"username"`
	Values        map[string]string `json:"values"`
	Errors        map[string]string `json:"errors"`
	AllErrors     map[string]string `json:"all_errors"`
	Touched       []string          `json:"touched"`
	ActiveTab     string            `json:"active_tab"`
	Tabs          []TabInfo         `json:"tabs"`
	VisibleFields []FieldState      `json:"visible_fields"`
	SaveError     string            `json:"save_error,omitempty"`
	Preview       PreviewState      `json:"preview"`
}

type SubmitResponse struct {
	SubmissionID string    `json:"submission_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Message      string    `json:"message"`
}

type SubmitErrorResponse struct {
	Error      string            `json:"error"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	FirstField string            `json:"first_field"`
	FirstTab   string            `json:"first_tab"`
}

type FieldErrorsResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Package apierror defines the JSON error envelopes returned to clients.
// The taxonomy is deliberately flat: every failure renders as a single
// human-readable detail message; internals (stack traces, SQL errors) never
// reach the response body.
package apierror

// APIError is the envelope for all 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from pre-submission checks.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}

package api

import "fmt"

// Error is the structured error returned for any non-2xx response.
// Message and Errors come from the server's JSON error body; Errors
// carries per-field validation failures keyed by form field name.
type Error struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Status  int                 `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// FieldErrors returns the validation map, never nil.
func (e *Error) FieldErrors() map[string][]string {
	if e.Errors == nil {
		return map[string][]string{}
	}
	return e.Errors
}

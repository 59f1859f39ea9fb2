package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a failed API call. StatusCode is zero when the failure was
// transport-level (retries exhausted without a response).
type Error struct {
	Resource   string
	StatusCode int
	Detail     string
	// Fields holds field-level validation messages when the backend
	// provides them.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: request failed: %v", e.Resource, e.Err)
	}
	msg := fmt.Sprintf("%s: HTTP %d", e.Resource, e.StatusCode)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Fields) > 0 {
		var parts []string
		for field, msgs := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
		}
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsClientError reports whether the failure was a 4xx rejection of
// the specific payload. Those are skippable per record; everything
// else is systemic.
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// parseError extracts the structured error body the backend returns:
// {"detail": "...", "errors": {"field": ["msg", ...]}}. Bodies that
// are not JSON are kept verbatim as the detail.
func parseError(resource string, status int, body []byte) *Error {
	apiErr := &Error{Resource: resource, StatusCode: status}

	var parsed struct {
		Detail  string              `json:"detail"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Detail = parsed.Detail
		if apiErr.Detail == "" {
			apiErr.Detail = parsed.Message
		}
		apiErr.Fields = parsed.Errors
	}
	if apiErr.Detail == "" {
		apiErr.Detail = strings.TrimSpace(string(body))
	}
	return apiErr
}

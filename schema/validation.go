package schema

import "fmt"

// ValidationError reports the first field of a payload that violates its constraints.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func required(field string) *ValidationError {
	return invalid(field, "is required")
}

func oneOf(field string, allowed []string) *ValidationError {
	return invalid(field, fmt.Sprintf("must be one of %v", allowed))
}

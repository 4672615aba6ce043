package validation

import "strings"

// FieldError is one failed rule, keyed by the UI message slot.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Error carries every failed field of one form, in form order.
type Error struct {
	Form   string
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasTag reports whether any field failed the given rule.
func (e *Error) HasTag(tag string) bool {
	for _, f := range e.Fields {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for optional fields: a nil patch keeps current, an
// empty (whitespace-only) string clears it.
func CoalescePtr(ptr *string, current *string) *string {
	if ptr == nil {
		return current
	}
	if strings.TrimSpace(*ptr) == "" {
		return nil
	}
	v := *ptr
	return &v
}

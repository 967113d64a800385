package patch

import "strings"

// Coalesce returns *ptr, or fallback when the field was absent from the payload.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

// OptionalText reads an optional JSON string. Absent, null and blank all become "".
func OptionalText(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}

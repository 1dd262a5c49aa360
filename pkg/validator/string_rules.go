package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
// The label is used in the generated message, the field in the error path.
func Required(field, label, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", label),
		},
	}
}

// MinLen validates the minimum length of a string, counted in runes so
// multi-byte names are not penalized.
func MinLen(field, label, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters long", label, min),
		},
	}
}

// MaxLen validates the maximum length of a string, counted in runes.
func MaxLen(field, label, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters long", label, max),
		},
	}
}

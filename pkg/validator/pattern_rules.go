package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Matches validates against a precompiled pattern. Callers compile the
// regex once at package level rather than per call.
func Matches(field, label string, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %s", label, message),
		},
	}
}

// NameChars validates that a string contains only characters acceptable in
// personal and place names: Unicode letters, spaces, apostrophes, periods,
// and hyphens.
func NameChars(field, label, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if unicode.IsLetter(r) || r == ' ' || r == '\'' || r == '.' || r == '-' {
					continue
				}
				return false
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s contains invalid characters", label),
		},
	}
}

// DigitString validates that a string consists entirely of ASCII digits.
func DigitString(field, label, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for _, r := range value {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a number", label),
		},
	}
}

// IntBetween validates that a digit string parses to an integer within the
// inclusive range. Non-numeric input fails the check.
func IntBetween(field, label, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d", label, min, max),
		},
	}
}

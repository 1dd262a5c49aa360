package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// checkPassword enforces complexity and name exclusion. Checks run in a
// fixed order and the first failing message wins; a password is never
// reported for more than one complaint at a time. Names of three
// characters or fewer are exempt from the exclusion check so short names
// like "Li" or "Ann" do not trigger false positives.
func checkPassword(password, firstName, lastName string) string {
	if n := utf8.RuneCountInString(password); n < 10 || n > 20 {
		return "Password must be between 10 and 20 characters long."
	}

	var hasUpper, hasLower, hasSpecial, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return "Password must contain at least one uppercase letter."
	case !hasLower:
		return "Password must contain at least one lowercase letter."
	case !hasSpecial:
		return "Password must contain at least one special character."
	case !hasDigit:
		return "Password must contain at least one number."
	}

	lower := strings.ToLower(password)
	for _, name := range []string{firstName, lastName} {
		if utf8.RuneCountInString(name) > 3 && strings.Contains(lower, strings.ToLower(name)) {
			return "Password must not contain your first or last name."
		}
	}

	return ""
}

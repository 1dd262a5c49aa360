package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a syntactically valid email address.
// Parsing goes through net/mail first, then a few extra checks reject
// addresses that are technically legal but useless on the web, such as
// domains without a dot.
func ValidEmail(field, label, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			local, domain := parts[0], parts[1]
			if local == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid email address", label),
		},
	}
}

// ValidURL validates that a string is an absolute URL with a scheme and host.
func ValidURL(field, label, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid URL", label),
		},
	}
}

// Package schema applies type-derived structural validation to form field
// values. Each semantic field type carries a default constraint set; the
// builder is a pure function from (type, field, value) to rules, so no
// schema objects are cached between requests.
package schema

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Emmraan/form-validator/pkg/fieldtype"
	"github.com/Emmraan/form-validator/pkg/validator"
)

var (
	phoneRegex    = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	zipCodeRegex  = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DisplayName derives the human-readable form of a field name used in
// generated messages: underscores and hyphens become spaces and each word
// is title-cased, so "first_name" reads as "First Name".
func DisplayName(field string) string {
	name := strings.NewReplacer("_", " ", "-", " ").Replace(field)
	return cases.Title(language.English).String(name)
}

// Rules returns the structural validation rules for a field of the given
// semantic type. All string checks operate on the value as passed; callers
// trim whitespace beforehand.
func Rules(t fieldtype.FieldType, field, value string) []validator.Rule {
	label := DisplayName(field)

	switch t {
	case fieldtype.Email:
		return []validator.Rule{validator.ValidEmail(field, label, value)}
	case fieldtype.Password:
		// Complexity is enforced by the cross-field password check, not here.
		return []validator.Rule{validator.Required(field, label, value)}
	case fieldtype.FirstName, fieldtype.LastName:
		return []validator.Rule{
			validator.MinLen(field, label, value, 2),
			validator.MaxLen(field, label, value, 50),
			validator.NameChars(field, label, value),
		}
	case fieldtype.FullName:
		return []validator.Rule{
			validator.MinLen(field, label, value, 2),
			validator.MaxLen(field, label, value, 100),
			validator.NameChars(field, label, value),
		}
	case fieldtype.Phone:
		return []validator.Rule{
			validator.MinLen(field, label, value, 10),
			validator.MaxLen(field, label, value, 15),
			validator.Matches(field, label, value, phoneRegex, "must be a valid phone number"),
		}
	case fieldtype.Age:
		return []validator.Rule{
			validator.DigitString(field, label, value),
			validator.IntBetween(field, label, value, 13, 120),
		}
	case fieldtype.URL:
		return []validator.Rule{validator.ValidURL(field, label, value)}
	case fieldtype.Username:
		return []validator.Rule{
			validator.MinLen(field, label, value, 3),
			validator.MaxLen(field, label, value, 30),
			validator.Matches(field, label, value, usernameRegex, "may only contain letters, numbers, and underscores"),
		}
	case fieldtype.ZipCode:
		return []validator.Rule{
			validator.MinLen(field, label, value, 3),
			validator.MaxLen(field, label, value, 10),
			validator.Matches(field, label, value, zipCodeRegex, "must be a valid postal code"),
		}
	case fieldtype.Country, fieldtype.State, fieldtype.City:
		return []validator.Rule{
			validator.MinLen(field, label, value, 2),
			validator.MaxLen(field, label, value, 50),
			validator.NameChars(field, label, value),
		}
	case fieldtype.Address:
		return []validator.Rule{
			validator.MinLen(field, label, value, 5),
			validator.MaxLen(field, label, value, 200),
		}
	case fieldtype.Company, fieldtype.Title:
		return []validator.Rule{
			validator.MinLen(field, label, value, 2),
			validator.MaxLen(field, label, value, 100),
		}
	case fieldtype.Date:
		return []validator.Rule{
			validator.Matches(field, label, value, dateRegex, "must be a valid date in YYYY-MM-DD format"),
		}
	default:
		return []validator.Rule{validator.MaxLen(field, label, value, 500)}
	}
}

// Validate applies the structural constraints for the field's semantic type
// and returns the accumulated validation errors, or nil when the value
// satisfies them all.
func Validate(t fieldtype.FieldType, field, value string) error {
	return validator.Apply(Rules(t, field, value)...)
}

package validator_test

import (
	"regexp"
	"testing"

	"github.com/Emmraan/form-validator/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		pass bool
	}{
		{"required with value", validator.Required("f", "Field", "x"), true},
		{"required empty", validator.Required("f", "Field", ""), false},
		{"required whitespace only", validator.Required("f", "Field", "   "), false},
		{"min len ok", validator.MinLen("f", "Field", "abc", 3), true},
		{"min len short", validator.MinLen("f", "Field", "ab", 3), false},
		{"min len counts runes", validator.MinLen("f", "Field", "ñé", 2), true},
		{"max len ok", validator.MaxLen("f", "Field", "abc", 3), true},
		{"max len long", validator.MaxLen("f", "Field", "abcd", 3), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.pass, tt.rule.Check())
		})
	}
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		pass bool
	}{
		{"valid email", validator.ValidEmail("e", "Email", "user@example.com"), true},
		{"email missing at", validator.ValidEmail("e", "Email", "userexample.com"), false},
		{"email missing domain dot", validator.ValidEmail("e", "Email", "user@localhost"), false},
		{"email empty domain part", validator.ValidEmail("e", "Email", "user@example..com"), false},
		{"email empty", validator.ValidEmail("e", "Email", ""), false},
		{"valid url", validator.ValidURL("u", "Url", "https://example.com/page"), true},
		{"url without scheme", validator.ValidURL("u", "Url", "example.com"), false},
		{"url empty", validator.ValidURL("u", "Url", ""), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.pass, tt.rule.Check())
		})
	}
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	phoneRe := regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)

	tests := []struct {
		name string
		rule validator.Rule
		pass bool
	}{
		{"matches phone", validator.Matches("p", "Phone", "+1234567890", phoneRe, "must be a valid phone number"), true},
		{"phone leading zero", validator.Matches("p", "Phone", "0123456789", phoneRe, "must be a valid phone number"), false},
		{"name chars ok", validator.NameChars("n", "Name", "O'Brien-Smith Jr."), true},
		{"name chars unicode", validator.NameChars("n", "Name", "José"), true},
		{"name chars digits", validator.NameChars("n", "Name", "John3"), false},
		{"digit string ok", validator.DigitString("a", "Age", "42"), true},
		{"digit string mixed", validator.DigitString("a", "Age", "4x"), false},
		{"digit string empty", validator.DigitString("a", "Age", ""), false},
		{"int between ok", validator.IntBetween("a", "Age", "13", 13, 120), true},
		{"int between low", validator.IntBetween("a", "Age", "12", 13, 120), false},
		{"int between high", validator.IntBetween("a", "Age", "121", 13, 120), false},
		{"int between non numeric", validator.IntBetween("a", "Age", "abc", 13, 120), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.pass, tt.rule.Check())
		})
	}
}

// Package rules models caller-supplied validation rules, merges the two
// input shapes the API accepts into one unified rule per field, and
// evaluates unified rules against submitted values.
package rules

import "github.com/Emmraan/form-validator/pkg/fieldtype"

// CustomRule is a declarative constraint set for a single field. All
// constraints are optional; nil means "not specified", which lets the
// merger distinguish an absent key from a zero value.
type CustomRule struct {
	MinLength      *int     `json:"minLength,omitempty"`
	MaxLength      *int     `json:"maxLength,omitempty"`
	Pattern        *string  `json:"pattern,omitempty"`
	Contains       *string  `json:"contains,omitempty"`
	StartsWith     *string  `json:"startsWith,omitempty"`
	EndsWith       *string  `json:"endsWith,omitempty"`
	Min            *float64 `json:"min,omitempty"`
	Max            *float64 `json:"max,omitempty"`
	MinItems       *int     `json:"minItems,omitempty"`
	MaxItems       *int     `json:"maxItems,omitempty"`
	Required       *bool    `json:"required,omitempty"`
	DependsOn      *string  `json:"dependsOn,omitempty"`
	DependsOnValue *string  `json:"dependsOnValue,omitempty"`
	Message        *string  `json:"message,omitempty"`
}

// FieldRequirement is a per-field override record supplied by the caller.
// Fields absent from the requirements map are implicitly optional.
type FieldRequirement struct {
	Required   bool                 `json:"required"`
	Type       *fieldtype.FieldType `json:"type,omitempty"`
	CustomRule *CustomRule          `json:"customRule,omitempty"`
}

// UnifiedRule is the merged view of a field's requirement-embedded rule and
// its entry in the top-level custom-rules map.
type UnifiedRule = CustomRule

// IsRequired reports whether the rule marks its field as required.
func (r CustomRule) IsRequired() bool {
	return r.Required != nil && *r.Required
}

// Package validation orchestrates a full validation pass over one form
// submission: required-field checks, type-derived structural validation,
// custom-rule evaluation, and the cross-field password, email, and
// domain-reputation checks. Errors accumulate; a request never stops at
// its first violation.
package validation

import (
	"github.com/Emmraan/form-validator/pkg/fieldtype"
	"github.com/Emmraan/form-validator/pkg/rules"
)

// Request is the decoded body of a validation call. The two mode fields
// discriminate how the submission is checked: a bare SchemaType selects
// the legacy fixed-schema path, ValidationType selects schema or dynamic
// mode explicitly.
type Request struct {
	SchemaType        string                            `json:"schemaType,omitempty"`
	ValidationType    string                            `json:"validationType,omitempty"`
	FormData          map[string]any                    `json:"formData"`
	FieldRequirements map[string]rules.FieldRequirement `json:"fieldRequirements,omitempty"`
	CustomRules       map[string]rules.CustomRule       `json:"customRules,omitempty"`
}

// FieldError is one field-level violation in the response.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Status is the terminal outcome of a validation pass.
type Status string

const (
	StatusSuccess           Status = "success"
	StatusValidationFailure Status = "validation_failure"
	StatusBadRequest        Status = "bad_request"
)

// Result carries the outcome of one validation pass. Data and
// FieldAnalysis are set only on success; Errors only on validation
// failure; BadRequestReason only on bad requests.
type Result struct {
	Status           Status
	Data             map[string]any
	FieldAnalysis    map[string]fieldtype.FieldType
	Errors           []FieldError
	BadRequestReason string
}

package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/Emmraan/form-validator/pkg/domaincheck"
	"github.com/Emmraan/form-validator/pkg/fieldtype"
	"github.com/Emmraan/form-validator/pkg/rules"
	"github.com/Emmraan/form-validator/pkg/schema"
	"github.com/Emmraan/form-validator/pkg/validator"
)

const (
	msgInvalidValidationType = `Invalid validationType. Use "schema" or "dynamic".`
	msgFormDataRequired      = "formData is required"
	msgSchemaTypeRequired    = "schemaType is required for schema validation"
	msgSuspiciousEmail       = "Email address appears to be invalid or suspicious."
)

// Service runs validation passes. The domain checker is the only external
// collaborator; everything else is pure computation.
type Service struct {
	domains domaincheck.Checker
	eval    *rules.Evaluator
	log     *slog.Logger
}

func New(domains domaincheck.Checker, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		domains: domains,
		eval:    rules.NewEvaluator(log),
		log:     log,
	}
}

// Validate runs one full validation pass and returns the terminal result.
// String values in the submission are trimmed in place before any check.
func (s *Service) Validate(ctx context.Context, req Request) Result {
	trimStrings(req.FormData)

	switch {
	case req.ValidationType == "schema":
		if req.SchemaType == "" {
			return badRequest(msgSchemaTypeRequired)
		}
	case req.ValidationType == "dynamic":
	case req.ValidationType == "" && req.SchemaType != "":
		// Legacy callers send only schemaType.
	default:
		return badRequest(msgInvalidValidationType)
	}

	if req.FormData == nil {
		return badRequest(msgFormDataRequired)
	}

	if req.ValidationType == "dynamic" {
		return s.validateDynamic(ctx, req)
	}
	return s.validateSchema(ctx, req)
}

// validateDynamic checks an open-ended submission: required fields first,
// then type-derived structural rules, then caller-supplied custom rules,
// then the cross-field password and email checks. Structural validation is
// skipped wholesale when a required field is missing so an empty field is
// not reported twice, but the later passes still run.
func (s *Service) validateDynamic(ctx context.Context, req Request) Result {
	var errs []FieldError

	types := make(map[string]fieldtype.FieldType, len(req.FormData))
	for field := range req.FormData {
		types[field] = s.effectiveType(field, req)
	}

	missingRequired := false
	for _, field := range sortedKeys(req.FieldRequirements) {
		if !req.FieldRequirements[field].Required {
			continue
		}
		if isBlank(req.FormData[field]) {
			errs = append(errs, FieldError{
				Path:    []string{field},
				Message: fmt.Sprintf("%s is required", schema.DisplayName(field)),
			})
			missingRequired = true
		}
	}

	if !missingRequired {
		for _, field := range sortedKeys(req.FormData) {
			value := req.FormData[field]
			if isBlank(value) {
				continue
			}
			if err := schema.Validate(types[field], field, asString(value)); err != nil {
				for _, ve := range validator.ExtractValidationErrors(err) {
					errs = append(errs, FieldError{
						Path:    []string{ve.Field},
						Message: ve.Message,
					})
				}
			}
		}
	}

	if len(req.CustomRules) > 0 {
		merged, err := rules.Merge(req.FieldRequirements, req.CustomRules)
		if err != nil {
			s.log.Error("rule merge failed", slog.Any("error", err))
		}
		for _, field := range sortedKeys(merged) {
			if hasError(errs, field) && isBlank(req.FormData[field]) {
				// The required pass already reported this field.
				continue
			}
			t, ok := types[field]
			if !ok {
				t = s.effectiveType(field, req)
			}
			msg, passed := s.eval.Evaluate(rules.Context{
				Field:   field,
				Value:   req.FormData[field],
				AllData: req.FormData,
				Type:    t,
			}, merged[field])
			if !passed {
				errs = append(errs, FieldError{Path: []string{field}, Message: msg})
			}
		}
	}

	errs = append(errs, s.checkPasswords(req.FormData, types)...)
	errs = append(errs, s.checkEmails(ctx, req.FormData, types)...)

	if len(errs) > 0 {
		return Result{Status: StatusValidationFailure, Errors: errs}
	}
	return Result{
		Status:        StatusSuccess,
		Data:          req.FormData,
		FieldAnalysis: types,
	}
}

// checkPasswords runs the complexity and name-exclusion check for every
// password-typed field that has both a first-name and a last-name sibling.
func (s *Service) checkPasswords(data map[string]any, types map[string]fieldtype.FieldType) []FieldError {
	var errs []FieldError

	for _, field := range sortedKeys(data) {
		if types[field] != fieldtype.Password || isBlank(data[field]) {
			continue
		}

		first, firstOK := findSibling(data, types, fieldtype.FirstName, "first")
		last, lastOK := findSibling(data, types, fieldtype.LastName, "last")
		if !firstOK || !lastOK {
			continue
		}

		if msg := checkPassword(asString(data[field]), first, last); msg != "" {
			errs = append(errs, FieldError{Path: []string{field}, Message: msg})
		}
	}
	return errs
}

// checkEmails flags suspicious local parts and consults the domain oracle
// for every email-typed field with a value.
func (s *Service) checkEmails(ctx context.Context, data map[string]any, types map[string]fieldtype.FieldType) []FieldError {
	var errs []FieldError

	for _, field := range sortedKeys(data) {
		if types[field] != fieldtype.Email || isBlank(data[field]) {
			continue
		}

		local, domain, hasDomain := strings.Cut(asString(data[field]), "@")
		if suspiciousLocalPart(local) {
			errs = append(errs, FieldError{Path: []string{field}, Message: msgSuspiciousEmail})
		}

		if hasDomain && domain != "" {
			reason, err := s.domains.Check(ctx, domain)
			if err != nil {
				s.log.Warn("domain check failed",
					slog.String("domain", domain),
					slog.Any("error", err))
				continue
			}
			if reason != "" {
				errs = append(errs, FieldError{Path: []string{field}, Message: reason})
			}
		}
	}
	return errs
}

// effectiveType resolves a field's semantic type: a valid caller-declared
// type wins, otherwise the type is inferred from the field name.
func (s *Service) effectiveType(field string, req Request) fieldtype.FieldType {
	if r, ok := req.FieldRequirements[field]; ok && r.Type != nil && r.Type.Valid() {
		return *r.Type
	}
	return fieldtype.Detect(field)
}

// findSibling locates a field by type tag, falling back to a substring
// match on the field name, and returns its string value.
func findSibling(data map[string]any, types map[string]fieldtype.FieldType, want fieldtype.FieldType, namePart string) (string, bool) {
	fields := sortedKeys(data)
	for _, field := range fields {
		if types[field] == want {
			return asString(data[field]), true
		}
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), namePart) {
			return asString(data[field]), true
		}
	}
	return "", false
}

// sortedKeys returns the map's keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func badRequest(reason string) Result {
	return Result{Status: StatusBadRequest, BadRequestReason: reason}
}

func hasError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if len(e.Path) == 1 && e.Path[0] == field {
			return true
		}
	}
	return false
}

// trimStrings trims every string value in the submission in place.
func trimStrings(data map[string]any) {
	for field, value := range data {
		if s, ok := value.(string); ok {
			data[field] = strings.TrimSpace(s)
		}
	}
}

// isBlank reports whether a submitted value counts as missing.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}

// asString renders a submitted value for structural and cross-field
// checks.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = asString(item)
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

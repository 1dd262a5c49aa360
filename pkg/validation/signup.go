package validation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Emmraan/form-validator/pkg/fieldtype"
	"github.com/Emmraan/form-validator/pkg/schema"
	"github.com/Emmraan/form-validator/pkg/validator"
)

// signupFields is the fixed legacy schema, validated in this order.
var signupFields = []struct {
	name string
	typ  fieldtype.FieldType
}{
	{"firstname", fieldtype.FirstName},
	{"lastname", fieldtype.LastName},
	{"email", fieldtype.Email},
	{"password", fieldtype.Password},
}

// validateSchema checks a submission against a named fixed schema. Only
// the signup schema exists. Structural failures stop the pass; once the
// structure holds, the password, suspicious-email, and domain checks all
// run independently so the caller sees every cross-field problem at once.
func (s *Service) validateSchema(ctx context.Context, req Request) Result {
	if req.SchemaType != "signup" {
		return badRequest(fmt.Sprintf("Unknown schemaType %q. Supported schemas: signup", req.SchemaType))
	}

	var errs []FieldError
	for _, f := range signupFields {
		value := asString(req.FormData[f.name])
		if isBlank(req.FormData[f.name]) {
			errs = append(errs, FieldError{
				Path:    []string{f.name},
				Message: fmt.Sprintf("%s is required", schema.DisplayName(f.name)),
			})
			continue
		}
		if err := schema.Validate(f.typ, f.name, value); err != nil {
			for _, ve := range validator.ExtractValidationErrors(err) {
				errs = append(errs, FieldError{Path: []string{ve.Field}, Message: ve.Message})
			}
		}
	}
	if len(errs) > 0 {
		return Result{Status: StatusValidationFailure, Errors: errs}
	}

	first := asString(req.FormData["firstname"])
	last := asString(req.FormData["lastname"])
	email := asString(req.FormData["email"])
	password := asString(req.FormData["password"])

	if msg := checkPassword(password, first, last); msg != "" {
		errs = append(errs, FieldError{Path: []string{"password"}, Message: msg})
	}

	local, domain, hasDomain := strings.Cut(email, "@")
	if suspiciousLocalPart(local) {
		errs = append(errs, FieldError{Path: []string{"email"}, Message: msgSuspiciousEmail})
	}
	if hasDomain && domain != "" {
		reason, err := s.domains.Check(ctx, domain)
		if err != nil {
			s.log.Warn("domain check failed",
				slog.String("domain", domain),
				slog.Any("error", err))
		} else if reason != "" {
			errs = append(errs, FieldError{Path: []string{"email"}, Message: reason})
		}
	}

	if len(errs) > 0 {
		return Result{Status: StatusValidationFailure, Errors: errs}
	}

	data := make(map[string]any, len(signupFields))
	for _, f := range signupFields {
		data[f.name] = req.FormData[f.name]
	}
	return Result{Status: StatusSuccess, Data: data}
}

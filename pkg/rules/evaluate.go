package rules

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Emmraan/form-validator/pkg/fieldtype"
	"github.com/Emmraan/form-validator/pkg/schema"
)

// Context carries everything the evaluator may inspect for one field: the
// field's own value plus the full submission for cross-field conditions.
type Context struct {
	Field   string
	Value   any
	AllData map[string]any
	Type    fieldtype.FieldType
}

// Evaluator runs unified rules against field values. It holds a logger so
// invalid caller-supplied patterns can be reported without failing the
// request.
type Evaluator struct {
	log *slog.Logger
}

func NewEvaluator(log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{log: log}
}

// Evaluate runs the rule's checks in a fixed order and short-circuits on
// the first failure. It returns the failure message and false, or "" and
// true when the rule passes. rule.Message, when set, overrides every
// generated message.
func (e *Evaluator) Evaluate(ctx Context, rule UnifiedRule) (string, bool) {
	label := schema.DisplayName(ctx.Field)
	fail := func(def string) (string, bool) {
		if rule.Message != nil {
			return *rule.Message, false
		}
		return def, false
	}

	empty := isEmpty(ctx.Value)

	// Optional fields with no value pass without further checks.
	if empty && !rule.IsRequired() {
		return "", true
	}

	// Conditional gate: the rule only applies while the depended-on field
	// holds the expected value.
	if rule.DependsOn != nil {
		expected := ""
		if rule.DependsOnValue != nil {
			expected = *rule.DependsOnValue
		}
		if stringify(ctx.AllData[*rule.DependsOn]) != expected {
			return "", true
		}
	}

	if empty {
		return fail(fmt.Sprintf("%s is required", label))
	}

	str := stringify(ctx.Value)

	if rule.MinLength != nil && utf8.RuneCountInString(str) < *rule.MinLength {
		return fail(fmt.Sprintf("%s must be at least %d characters long", label, *rule.MinLength))
	}
	if rule.MaxLength != nil && utf8.RuneCountInString(str) > *rule.MaxLength {
		return fail(fmt.Sprintf("%s must be at most %d characters long", label, *rule.MaxLength))
	}

	if rule.Pattern != nil {
		re, err := regexp.Compile(*rule.Pattern)
		if err != nil {
			// Invalid caller patterns never fail the field.
			e.log.Warn("invalid custom rule pattern",
				slog.String("field", ctx.Field),
				slog.String("pattern", *rule.Pattern),
				slog.Any("error", err))
		} else if !re.MatchString(str) {
			return fail(fmt.Sprintf("%s format is invalid", label))
		}
	}

	lower := strings.ToLower(str)
	if rule.Contains != nil && !strings.Contains(lower, strings.ToLower(*rule.Contains)) {
		return fail(fmt.Sprintf("%s must contain %q", label, *rule.Contains))
	}
	if rule.StartsWith != nil && !strings.HasPrefix(lower, strings.ToLower(*rule.StartsWith)) {
		return fail(fmt.Sprintf("%s must start with %q", label, *rule.StartsWith))
	}
	if rule.EndsWith != nil && !strings.HasSuffix(lower, strings.ToLower(*rule.EndsWith)) {
		return fail(fmt.Sprintf("%s must end with %q", label, *rule.EndsWith))
	}

	if rule.Min != nil || rule.Max != nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fail(fmt.Sprintf("%s must be a valid number", label))
		}
		if rule.Min != nil && n < *rule.Min {
			return fail(fmt.Sprintf("%s must be at least %v", label, *rule.Min))
		}
		if rule.Max != nil && n > *rule.Max {
			return fail(fmt.Sprintf("%s must be at most %v", label, *rule.Max))
		}
	}

	if rule.MinItems != nil || rule.MaxItems != nil {
		items := toItems(ctx.Value)
		if rule.MinItems != nil && len(items) < *rule.MinItems {
			return fail(fmt.Sprintf("%s must have at least %d items", label, *rule.MinItems))
		}
		if rule.MaxItems != nil && len(items) > *rule.MaxItems {
			return fail(fmt.Sprintf("%s must have at most %d items", label, *rule.MaxItems))
		}
	}

	return "", true
}

// isEmpty reports whether a submitted value counts as missing: nil, a
// blank string, or an empty array.
func isEmpty(v any) bool {
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

// stringify renders a submitted value the way it appears in messages and
// string checks: arrays join on commas, everything else formats naturally.
func stringify(v any) string {
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
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toItems coerces a value to an array for the item-count checks: arrays
// pass through, strings split on commas with trimming, anything else is
// wrapped as a single element.
func toItems(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return items
	case string:
		parts := strings.Split(val, ",")
		items := make([]any, 0, len(parts))
		for _, p := range parts {
			items = append(items, strings.TrimSpace(p))
		}
		return items
	default:
		return []any{val}
	}
}

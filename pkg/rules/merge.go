package rules

import "dario.cat/mergo"

// Merge normalizes the two rule sources into one UnifiedRule per field.
//
// The base for each field comes from the requirements map: its required
// flag plus any embedded custom rule. Entries from the top-level custom
// rules map are then overlaid per constraint, with the overlay winning on
// key collision; constraints absent from the overlay are preserved from
// the base. Fields present only in the custom rules map are added fresh.
//
// Merging is idempotent and order-independent apart from that documented
// precedence. Both inputs may be nil; the result is then an empty map.
func Merge(requirements map[string]FieldRequirement, customRules map[string]CustomRule) (map[string]UnifiedRule, error) {
	merged := make(map[string]UnifiedRule, len(requirements)+len(customRules))

	for field, req := range requirements {
		rule := UnifiedRule{}
		if req.CustomRule != nil {
			rule = *req.CustomRule
		}
		if rule.Required == nil && req.Required {
			required := true
			rule.Required = &required
		}
		merged[field] = rule
	}

	for field, overlay := range customRules {
		base, ok := merged[field]
		if !ok {
			merged[field] = overlay
			continue
		}
		// Non-nil overlay constraints replace the base ones; nil overlay
		// constraints leave the base untouched. Pointers must compare
		// without dereferencing so a pointer-to-zero overlay (minLength 0,
		// required false) still replaces the base constraint.
		if err := mergo.Merge(&base, overlay, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, err
		}
		merged[field] = base
	}

	return merged, nil
}

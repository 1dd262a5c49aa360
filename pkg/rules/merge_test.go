package rules_test

import (
	"testing"

	"github.com/Emmraan/form-validator/pkg/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMerge_EmptyInputs(t *testing.T) {
	t.Parallel()

	merged, err := rules.Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestMerge_RequirementsOnly(t *testing.T) {
	t.Parallel()

	merged, err := rules.Merge(map[string]rules.FieldRequirement{
		"email": {Required: true},
		"name":  {Required: false, CustomRule: &rules.CustomRule{MinLength: ptr(2)}},
	}, nil)
	require.NoError(t, err)

	require.Len(t, merged, 2)
	assert.True(t, merged["email"].IsRequired())
	assert.False(t, merged["name"].IsRequired())
	require.NotNil(t, merged["name"].MinLength)
	assert.Equal(t, 2, *merged["name"].MinLength)
}

func TestMerge_CustomRulesOnly(t *testing.T) {
	t.Parallel()

	merged, err := rules.Merge(nil, map[string]rules.CustomRule{
		"username": {MinLength: ptr(3), Message: ptr("Username too short")},
	})
	require.NoError(t, err)

	require.Contains(t, merged, "username")
	assert.Equal(t, 3, *merged["username"].MinLength)
	assert.Equal(t, "Username too short", *merged["username"].Message)
}

func TestMerge_OverlayWinsOnCollision(t *testing.T) {
	t.Parallel()

	merged, err := rules.Merge(
		map[string]rules.FieldRequirement{
			"a": {CustomRule: &rules.CustomRule{MinLength: ptr(1), MaxLength: ptr(10)}},
		},
		map[string]rules.CustomRule{
			"a": {MinLength: ptr(2)},
		},
	)
	require.NoError(t, err)

	// Colliding key replaced, non-colliding key preserved.
	assert.Equal(t, 2, *merged["a"].MinLength)
	assert.Equal(t, 10, *merged["a"].MaxLength)
}

func TestMerge_ZeroValuedOverlayWins(t *testing.T) {
	t.Parallel()

	// An overlay can relax the base: a set constraint replaces the base
	// even when it points at a zero value.
	merged, err := rules.Merge(
		map[string]rules.FieldRequirement{
			"a": {Required: true, CustomRule: &rules.CustomRule{MinLength: ptr(5)}},
		},
		map[string]rules.CustomRule{
			"a": {MinLength: ptr(0), Required: ptr(false)},
		},
	)
	require.NoError(t, err)

	require.NotNil(t, merged["a"].MinLength)
	assert.Equal(t, 0, *merged["a"].MinLength)
	assert.False(t, merged["a"].IsRequired())
}

func TestMerge_RequiredFlagSurvivesOverlay(t *testing.T) {
	t.Parallel()

	merged, err := rules.Merge(
		map[string]rules.FieldRequirement{"email": {Required: true}},
		map[string]rules.CustomRule{"email": {Pattern: ptr(`@example\.com$`)}},
	)
	require.NoError(t, err)

	assert.True(t, merged["email"].IsRequired())
	assert.NotNil(t, merged["email"].Pattern)
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	reqs := map[string]rules.FieldRequirement{
		"a": {Required: true, CustomRule: &rules.CustomRule{MinLength: ptr(1)}},
	}
	custom := map[string]rules.CustomRule{"a": {MaxLength: ptr(5)}}

	first, err := rules.Merge(reqs, custom)
	require.NoError(t, err)
	second, err := rules.Merge(reqs, custom)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

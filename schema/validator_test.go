package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pigerrors "github.com/GfSE/CASCaDE-Reference-Implementation-sub002/errors"
)

func TestNewValidatorCompilesAllSchemas(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.Len(t, v.schemas, len(schemaFiles))
}

func TestValidateAccepts(t *testing.T) {
	v := MustValidator()

	tests := []struct {
		name      string
		itemType  string
		candidate map[string]any
	}{
		{
			name:     "minimal property",
			itemType: "pig:Property",
			candidate: map[string]any{
				"itemType": "pig:Property",
				"id":       "pig:P-1",
			},
		},
		{
			name:     "property with constraints",
			itemType: "pig:Property",
			candidate: map[string]any{
				"itemType": "pig:Property",
				"id":       "pig:P-1",
				"datatype": "xs:string",
				"minCount": 1,
				"maxCount": 3,
				"title":    []any{map[string]any{"value": "Priority", "lang": "en"}},
			},
		},
		{
			name:     "entity instance with owned records",
			itemType: "pig:anEntity",
			candidate: map[string]any{
				"itemType": "pig:anEntity",
				"id":       "pig:E-1",
				"hasClass": "pig:Equipment",
				"revision": "r1",
				"modified": "2026-08-31T12:00:00Z",
				"hasProperty": []any{
					map[string]any{"itemType": "pig:aProperty", "hasClass": "pig:P-1", "value": "5"},
				},
			},
		},
		{
			name:     "bare configured property",
			itemType: "pig:aProperty",
			candidate: map[string]any{
				"itemType": "pig:aProperty",
				"hasClass": "pig:P-1",
				"value":    "5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate(tt.itemType, tt.candidate)
			require.NoError(t, err)
			assert.True(t, res.Valid, res.Details)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	v := MustValidator()

	tests := []struct {
		name      string
		itemType  string
		candidate map[string]any
	}{
		{
			name:      "missing id",
			itemType:  "pig:Property",
			candidate: map[string]any{"itemType": "pig:Property"},
		},
		{
			name:     "wrong item type tag",
			itemType: "pig:Property",
			candidate: map[string]any{
				"itemType": "pig:Entity",
				"id":       "pig:P-1",
			},
		},
		{
			name:     "minCount not an integer",
			itemType: "pig:Property",
			candidate: map[string]any{
				"itemType": "pig:Property",
				"id":       "pig:P-1",
				"minCount": "one",
			},
		},
		{
			name:     "title entry without value",
			itemType: "pig:Entity",
			candidate: map[string]any{
				"itemType": "pig:Entity",
				"id":       "pig:C-1",
				"title":    []any{map[string]any{"lang": "en"}},
			},
		},
		{
			name:     "eligibleTarget not an array",
			itemType: "pig:Reference",
			candidate: map[string]any{
				"itemType":       "pig:Reference",
				"id":             "pig:R-1",
				"eligibleTarget": "pig:Part",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate(tt.itemType, tt.candidate)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.NotEmpty(t, res.Details)
		})
	}
}

func TestValidateUnknownItemType(t *testing.T) {
	v := MustValidator()
	_, err := v.Validate("pig:Nonsense", map[string]any{})
	require.Error(t, err)
	assert.True(t, pigerrors.IsProgramming(err))
}

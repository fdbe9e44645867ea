package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "data", ErrorData.String())
	assert.Equal(t, "programming", ErrorProgramming.String())
	assert.Equal(t, "external", ErrorExternal.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"wrong item type", ErrWrongItemType, ErrorProgramming},
		{"immutable field", ErrImmutableField, ErrorProgramming},
		{"schema engine", ErrSchemaEngine, ErrorExternal},
		{"not implemented", ErrNotImplemented, ErrorExternal},
		{"invalid id", ErrInvalidID, ErrorData},
		{"plain error defaults to data", errors.New("boom"), ErrorData},
		{
			"wrapped programming",
			WrapProgramming(errors.New("boom"), "pig", "NewEntity", "tag mismatch"),
			ErrorProgramming,
		},
		{
			"wrapped external",
			WrapExternal(errors.New("boom"), "schema", "Validate", "engine panic"),
			ErrorExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestClassifiedErrorMessage(t *testing.T) {
	err := WrapExternal(ErrSchemaEngine, "schema", "Validate", "bad meta-schema")
	assert.Contains(t, err.Error(), "schema.Validate")
	assert.Contains(t, err.Error(), "bad meta-schema")
	assert.True(t, errors.Is(err, ErrSchemaEngine))
}

func TestWrapNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "c", "m", "a"))
	assert.NoError(t, WrapData(nil, "c", "m", "a"))
	assert.NoError(t, WrapProgramming(nil, "c", "m", "a"))
	assert.NoError(t, WrapExternal(nil, "c", "m", "a"))
}

func TestWrapPattern(t *testing.T) {
	err := Wrap(errors.New("boom"), "reqif", "Import", "parse")
	assert.Equal(t, "reqif.Import: parse failed: boom", err.Error())
}

package pig

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pkg/timestamp"
)

func TestAnEntitySynthesizesRevisionAndModified(t *testing.T) {
	m := testModel(t)
	e := m.NewAnEntity()

	require.True(t, e.Set(map[string]any{
		"id":       "ex:pump-17",
		"hasClass": "ex:Equipment",
	}).Ok)

	_, err := uuid.Parse(e.Revision())
	require.NoError(t, err, "a missing revision gets a fresh UUID")

	_, ok := timestamp.Parse(e.Modified())
	assert.True(t, ok, "a missing modified gets the current time")
}

func TestAnEntityCanonicalizesModified(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"epoch seconds", float64(1700000000), "2023-11-14T22:13:20Z"},
		{"offset form", "2024-01-02T04:04:05+01:00", "2024-01-02T03:04:05Z"},
		{"date only", "2024-01-02", "2024-01-02T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := m.NewAnEntity()
			require.True(t, e.Set(map[string]any{
				"id":       "ex:pump-17",
				"modified": tt.in,
			}).Ok)
			assert.Equal(t, tt.want, e.Modified())
		})
	}
}

func TestAnEntityKeepsSuppliedRevision(t *testing.T) {
	m := testModel(t)
	e := m.NewAnEntity()
	require.True(t, e.Set(map[string]any{
		"id":            "ex:pump-17",
		"revision":      "r-2",
		"priorRevision": "r-1",
	}).Ok)
	assert.Equal(t, "r-2", e.Revision())
	assert.Equal(t, "r-1", e.PriorRevision())
}

func TestAnEntityOwnedProperties(t *testing.T) {
	m := testModel(t)
	e := m.NewAnEntity()

	require.True(t, e.Set(map[string]any{
		"id":       "ex:pump-17",
		"hasClass": "ex:Equipment",
		"hasProperty": []any{
			map[string]any{"hasClass": "ex:priority", "value": float64(5)},
		},
		"hasTarget": []any{
			map[string]any{"hasClass": "ex:partOf", "idRef": "ex:plant-1"},
		},
	}).Ok)

	props := e.HasProperty()
	require.Len(t, props, 1)
	assert.Equal(t, TypeAProperty, props[0].Type())
	assert.Equal(t, "ex:priority", props[0].HasClass())
	assert.Equal(t, "5", props[0].Value(), "primitive values are stringified")

	targets := e.HasTarget()
	require.Len(t, targets, 1)
	assert.Equal(t, "ex:plant-1", targets[0].IDRef())
}

func TestOwnedRecordsNeedAClass(t *testing.T) {
	m := testModel(t)
	e := m.NewAnEntity()
	st := e.Set(map[string]any{
		"id": "ex:pump-17",
		"hasProperty": []any{
			map[string]any{"value": "5"},
		},
	})
	require.False(t, st.Ok)
	assert.Equal(t, message.StatusInvalidArrayEntry, st.Status)
}

func TestOwnedRecordErrorsPropagate(t *testing.T) {
	m := testModel(t)
	e := m.NewAnEntity()
	st := e.Set(map[string]any{
		"id": "ex:pump-17",
		"hasTarget": []any{
			map[string]any{"hasClass": "ex:partOf"},
		},
	})
	require.False(t, st.Ok)
	assert.Equal(t, message.StatusInvalidID, st.Status,
		"a reference without idRef fails inside the owned item")
}

func TestARelationshipEndpointMinimums(t *testing.T) {
	m := testModel(t)

	source := []any{map[string]any{"hasClass": "ex:from", "idRef": "ex:pump-17"}}
	target := []any{map[string]any{"hasClass": "ex:to", "idRef": "ex:tank-3"}}

	tests := []struct {
		name string
		data map[string]any
		want int
	}{
		{
			name: "missing source",
			data: map[string]any{"id": "ex:feeds-1", "hasTarget": target},
			want: message.StatusArrayBelowMinCount,
		},
		{
			name: "empty target",
			data: map[string]any{"id": "ex:feeds-1", "hasSource": source, "hasTarget": []any{}},
			want: message.StatusArrayBelowMinCount,
		},
		{
			name: "both present",
			data: map[string]any{"id": "ex:feeds-1", "hasSource": source, "hasTarget": target},
			want: message.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := m.NewARelationship()
			st := r.Set(tt.data)
			assert.Equal(t, tt.want, st.Status, st.StatusText)
		})
	}
}

func TestAPropertyComposedValues(t *testing.T) {
	m := testModel(t)
	p := m.NewAProperty()

	require.True(t, p.Set(map[string]any{
		"hasClass": "ex:coordinates",
		"aComposedProperty": []any{
			map[string]any{"hasClass": "ex:lat", "value": "52.52"},
			map[string]any{"hasClass": "ex:lon", "value": "13.40"},
		},
	}).Ok)

	composed := p.Composed()
	require.Len(t, composed, 2)
	assert.Equal(t, "ex:lat", composed[0].HasClass())
	assert.Equal(t, "13.40", composed[1].Value())

	snap := p.Get()
	other := m.NewAProperty()
	require.True(t, other.Set(snap).Ok)
	assert.Equal(t, snap, other.Get())
}

func TestAPropertyEnumeratedValue(t *testing.T) {
	m := testModel(t)
	p := m.NewAProperty()
	require.True(t, p.Set(map[string]any{
		"hasClass": "ex:status",
		"idRef":    "ex:status-open",
	}).Ok)
	assert.Equal(t, "ex:status-open", p.IDRef())
	assert.Empty(t, p.Value())
}

func TestAReferenceRequiresTarget(t *testing.T) {
	m := testModel(t)
	r := m.NewAReference()
	st := r.Set(map[string]any{"hasClass": "ex:partOf"})
	require.False(t, st.Ok)
	assert.Equal(t, message.StatusInvalidID, st.Status)
}

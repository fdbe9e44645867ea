package jsonld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeIDObjects(t *testing.T) {
	in := map[string]any{
		"id":          "pig:E-1",
		"specializes": "pig:Equipment",
		"eligibleTarget": []any{
			"pig:Part",
			"https://example.org/Assembly",
		},
		"title": "Pump", // not an id, stays a string
		"count": float64(3),
	}

	out := MakeIDObjects(in, Options{}).(map[string]any)

	// The value under the id key is never wrapped.
	assert.Equal(t, "pig:E-1", out["id"])
	assert.Equal(t, map[string]any{"@id": "pig:Equipment"}, out["specializes"])
	targets := out["eligibleTarget"].([]any)
	assert.Equal(t, map[string]any{"@id": "pig:Part"}, targets[0])
	assert.Equal(t, map[string]any{"@id": "https://example.org/Assembly"}, targets[1])
	assert.Equal(t, "Pump", out["title"])
	assert.Equal(t, float64(3), out["count"])

	// Input untouched.
	assert.Equal(t, "pig:Equipment", in["specializes"])
}

func TestMakeIDObjectsIdempotent(t *testing.T) {
	in := map[string]any{"specializes": "pig:Equipment"}

	once := MakeIDObjects(in, Options{})
	twice := MakeIDObjects(once, Options{})
	assert.Equal(t, once, twice)
}

func TestReplaceIDObjects(t *testing.T) {
	in := map[string]any{
		"specializes": map[string]any{"@id": "pig:Equipment"},
		"eligibleTarget": []any{
			map[string]any{"@id": "pig:Part"},
		},
		// Two keys: not a singleton id object, must survive.
		"creator": map[string]any{"@id": "pig:U-1", "extra": "x"},
	}

	out := ReplaceIDObjects(in, Options{}).(map[string]any)

	assert.Equal(t, "pig:Equipment", out["specializes"])
	assert.Equal(t, []any{"pig:Part"}, out["eligibleTarget"])
	assert.Equal(t, map[string]any{"@id": "pig:U-1", "extra": "x"}, out["creator"])
}

func TestIDObjectsRoundTrip(t *testing.T) {
	in := map[string]any{
		"id":             "pig:E-1",
		"specializes":    "pig:Equipment",
		"eligibleTarget": []any{"pig:Part", "pig:Assembly"},
	}

	back := ReplaceIDObjects(MakeIDObjects(in, Options{}), Options{}).(map[string]any)
	assert.Equal(t, in, back)
}

func TestReplaceIDObjectsInternalKey(t *testing.T) {
	// The default id-key set covers both wire and internal form.
	in := map[string]any{"ref": map[string]any{"id": "pig:E-1"}}
	out := ReplaceIDObjects(in, Options{}).(map[string]any)
	assert.Equal(t, "pig:E-1", out["ref"])
}

func TestCustomIDKeys(t *testing.T) {
	in := map[string]any{"ref": map[string]any{"uri": "pig:E-1"}}

	// Default keys leave the object alone.
	out := ReplaceIDObjects(in, Options{}).(map[string]any)
	assert.Equal(t, in["ref"], out["ref"])

	out = ReplaceIDObjects(in, Options{IDKeys: []string{"uri"}}).(map[string]any)
	assert.Equal(t, "pig:E-1", out["ref"])
}

func TestMakeIDObjectsMutate(t *testing.T) {
	in := map[string]any{"specializes": "pig:Equipment"}
	out := MakeIDObjects(in, Options{Mutate: true})

	require.IsType(t, map[string]any{}, out)
	assert.Equal(t, map[string]any{"@id": "pig:Equipment"}, in["specializes"])
}

func TestMakeIDObjectsBareString(t *testing.T) {
	assert.Equal(t, map[string]any{"@id": "pig:E-1"}, MakeIDObjects("pig:E-1", Options{}))
	assert.Equal(t, "plain text", MakeIDObjects("plain text", Options{}))
	assert.Nil(t, MakeIDObjects(nil, Options{}))
}

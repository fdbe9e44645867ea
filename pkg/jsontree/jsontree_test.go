package jsontree

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterate(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected map[string]any // joined path -> value
	}{
		{
			name: "nested objects and arrays",
			node: map[string]any{
				"a": "x",
				"b": map[string]any{"c": float64(1)},
				"d": []any{"y", map[string]any{"e": true}},
			},
			expected: map[string]any{
				"a":     "x",
				"b/c":   float64(1),
				"d/0":   "y",
				"d/1/e": true,
			},
		},
		{
			name:     "bare primitive",
			node:     "value",
			expected: map[string]any{"": "value"},
		},
		{
			name:     "nil node visits nothing",
			node:     nil,
			expected: map[string]any{},
		},
		{
			name:     "empty object visits nothing",
			node:     map[string]any{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visited := map[string]any{}
			Iterate(tt.node, func(v any, path []string) {
				visited[strings.Join(path, "/")] = v
			})
			assert.Equal(t, tt.expected, visited)
		})
	}
}

func TestIterateVisitsNullLeaves(t *testing.T) {
	// JSON null inside a document is a nil any value; the branch
	// terminates without a visit, matching absent semantics.
	count := 0
	Iterate(map[string]any{"a": nil, "b": "x"}, func(_ any, _ []string) {
		count++
	})
	assert.Equal(t, 1, count)
}

func TestMapCopies(t *testing.T) {
	in := map[string]any{
		"a": "x",
		"b": []any{float64(1), float64(2)},
	}

	out := Map(in, func(v any, _ []string) any {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return v
	}, Options{})

	outMap, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "X", outMap["a"])
	// Input untouched.
	assert.Equal(t, "x", in["a"])
}

func TestMapMutates(t *testing.T) {
	in := map[string]any{"a": "x", "b": []any{"y"}}

	out := Map(in, func(v any, _ []string) any {
		return strings.ToUpper(v.(string))
	}, Options{Mutate: true})

	// Mutating mode writes through the input and returns it.
	assert.Equal(t, "X", in["a"])
	assert.Equal(t, "Y", in["b"].([]any)[0])
	outMap, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "X", outMap["a"])
}

func TestMapPath(t *testing.T) {
	in := map[string]any{"a": []any{map[string]any{"b": "v"}}}

	var paths []string
	Map(in, func(v any, path []string) any {
		paths = append(paths, strings.Join(path, "/"))
		return v
	}, Options{})

	sort.Strings(paths)
	assert.Equal(t, []string{"a/0/b"}, paths)
}

func TestClone(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{"b": []any{"x", float64(3)}},
	}

	out := Clone(in)
	require.Equal(t, in, out)

	// Mutating the clone must not leak into the source.
	out.(map[string]any)["a"].(map[string]any)["b"].([]any)[0] = "changed"
	assert.Equal(t, "x", in["a"].(map[string]any)["b"].([]any)[0])
}

func TestDeepNesting(t *testing.T) {
	// Ordinary recursion handles documents far deeper than anything a real
	// interchange file contains.
	node := any("leaf")
	for i := 0; i < 5000; i++ {
		node = map[string]any{"n": node}
	}

	count := 0
	Iterate(node, func(_ any, _ []string) { count++ })
	assert.Equal(t, 1, count)
}

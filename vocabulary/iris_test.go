package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"registered term", "pig:Entity", true},
		{"registered term with dots", "dcterms:title", true},
		{"instance term", "pig:aProperty", true},
		{"unregistered prefix", "unknown:thing", false},
		{"https IRI", "https://example.org/req#42", true},
		{"http IRI", "http://example.org/x", true},
		{"urn", "urn:uuid:6f9619ff-8b86-d011-b42d-00c04fc964ff", true},
		{"bare word", "title", false},
		{"empty", "", false},
		{"colon only", ":", false},
		{"local name starting with digit", "pig:1abc", false},
		{"whitespace in IRI", "https://example.org/a b", false},
		{"double colon", "pig::x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidID(tt.id))
		})
	}
}

func TestTermAndIRIAreExclusive(t *testing.T) {
	assert.True(t, IsTerm("pig:Entity"))
	assert.False(t, IsIRI("pig:Entity"))

	assert.True(t, IsIRI("https://example.org/x"))
	assert.False(t, IsTerm("https://example.org/x"))
}

func TestRegisterNamespace(t *testing.T) {
	t.Cleanup(ResetNamespaces)

	assert.False(t, IsTerm("req:priority"))
	RegisterNamespace("req", "https://example.org/requirements#")
	assert.True(t, IsTerm("req:priority"))
	assert.True(t, IsRegisteredPrefix("req"))

	iri, ok := NamespaceIRI("req")
	assert.True(t, ok)
	assert.Equal(t, "https://example.org/requirements#", iri)
}

func TestSplitTerm(t *testing.T) {
	prefix, local, ok := SplitTerm("sh:minCount")
	assert.True(t, ok)
	assert.Equal(t, "sh", prefix)
	assert.Equal(t, "minCount", local)

	_, _, ok = SplitTerm("https://example.org/x")
	assert.False(t, ok)
}

func TestExpandTerm(t *testing.T) {
	full, ok := ExpandTerm("dcterms:title")
	assert.True(t, ok)
	assert.Equal(t, "http://purl.org/dc/terms/title", full)

	full, ok = ExpandTerm("pig:Entity")
	assert.True(t, ok)
	assert.Equal(t, PigNamespace+"Entity", full)

	// IRIs pass through.
	full, ok = ExpandTerm("https://example.org/x")
	assert.True(t, ok)
	assert.Equal(t, "https://example.org/x", full)

	_, ok = ExpandTerm("nope:thing")
	assert.False(t, ok)
}

package pig

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// testModel builds a model with a quiet logger and the example namespace
// the fixtures use.
func testModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	vocabulary.RegisterNamespace("ex", "https://example.org/ns#")
	t.Cleanup(vocabulary.ResetNamespaces)

	base := []Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	return NewModel(append(base, opts...)...)
}

func TestNewItemCoversAllTypes(t *testing.T) {
	m := testModel(t)
	for _, itemType := range []ItemType{
		TypeProperty, TypeReference, TypeEntity, TypeRelationship,
		TypeAProperty, TypeAReference, TypeAnEntity, TypeARelationship,
	} {
		item := m.NewItem(itemType)
		assert.Equal(t, itemType, item.Type())
		assert.Nil(t, item.Get(), "a fresh item has no snapshot")
	}
}

func TestNewItemUnknownTypePanics(t *testing.T) {
	m := testModel(t)
	assert.Panics(t, func() { m.NewItem(ItemType("pig:Nonsense")) })
}

func TestItemTypeClassification(t *testing.T) {
	tests := []struct {
		tag      ItemType
		class    bool
		instance bool
	}{
		{TypeProperty, true, false},
		{TypeRelationship, true, false},
		{TypeAProperty, false, true},
		{TypeARelationship, false, true},
		{ItemType("pig:Nonsense"), false, false},
		{ItemType(""), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.class, tt.tag.IsClass())
			assert.Equal(t, tt.instance, tt.tag.IsInstance())
			assert.Equal(t, tt.class || tt.instance, tt.tag.IsValid())
		})
	}
}

func TestModelLanguageSelectsCatalog(t *testing.T) {
	m := testModel(t, WithLanguage(language.German))
	require.Equal(t, language.German, m.Language())

	e := m.NewEntity()
	st := e.Set(map[string]any{"id": "not an id"})
	require.False(t, st.Ok)
	assert.Equal(t, message.StatusInvalidID, st.Status)
	assert.Contains(t, st.StatusText, "ungültiger Bezeichner")
}

func TestMultiLanguageTextLookup(t *testing.T) {
	text := MultiLanguageText{
		{Value: "Equipment", Lang: "en"},
		{Value: "Betriebsmittel", Lang: "de"},
	}
	assert.Equal(t, "Betriebsmittel", text.Text("de"))
	assert.Equal(t, "Equipment", text.Text("fr"), "unknown language falls back to the first variant")
	assert.Equal(t, "", MultiLanguageText(nil).Text("en"))
}

package pig

// LanguageText is one language variant of a human-readable text.
type LanguageText struct {
	Value string `json:"value"`
	Lang  string `json:"lang,omitempty"`
}

// MultiLanguageText holds the language variants of a text such as a title.
// A single variant may omit its language tag; as soon as there is more than
// one, every variant must carry one.
type MultiLanguageText []LanguageText

// Text returns the variant for a language tag, falling back to the first
// variant when the language is not present. Empty for an empty text.
func (t MultiLanguageText) Text(lang string) string {
	if len(t) == 0 {
		return ""
	}
	for _, entry := range t {
		if entry.Lang == lang {
			return entry.Value
		}
	}
	return t[0].Value
}

// snapshot renders the text in interchange form, one object per variant.
func (t MultiLanguageText) snapshot() []any {
	out := make([]any, len(t))
	for i, entry := range t {
		elem := map[string]any{"value": entry.Value}
		if entry.Lang != "" {
			elem["lang"] = entry.Lang
		}
		out[i] = elem
	}
	return out
}

// normalizeText widens the tolerated input shapes of a text field to the
// canonical array-of-objects form: a bare string becomes a single untagged
// variant, a single object becomes a one-element array, and string entries
// inside an array are wrapped. Anything else is passed through for the
// schema validator to reject.
func normalizeText(v any) any {
	switch t := v.(type) {
	case string:
		return []any{map[string]any{"value": t}}
	case map[string]any:
		return []any{t}
	case []any:
		out := make([]any, len(t))
		for i, entry := range t {
			if s, ok := entry.(string); ok {
				out[i] = map[string]any{"value": s}
				continue
			}
			out[i] = entry
		}
		return out
	default:
		return v
	}
}

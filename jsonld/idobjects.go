package jsonld

import (
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// Options controls the id-object transforms.
type Options struct {
	// Mutate rewrites the input tree in place instead of building a copy.
	Mutate bool

	// IDKeys overrides the keys treated as id keys (default "id", "@id").
	IDKeys []string
}

func (o Options) idKeys() map[string]struct{} {
	keys := o.IDKeys
	if keys == nil {
		keys = DefaultIDKeys
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// MakeIDObjects replaces every string value that satisfies the id grammar
// with a singleton object {"@id": s}, except when the string is itself the
// value under an id key (no double-wrapping). The transform is local, so it
// is idempotent: already-wrapped ids are not re-wrapped.
func MakeIDObjects(node any, opts Options) any {
	return makeIDObjects(node, opts, opts.idKeys())
}

func makeIDObjects(node any, opts Options, idKeys map[string]struct{}) any {
	switch v := node.(type) {
	case map[string]any:
		out := v
		if !opts.Mutate {
			out = make(map[string]any, len(v))
		}
		for key, child := range v {
			if s, ok := child.(string); ok {
				if _, isIDKey := idKeys[key]; !isIDKey && vocabulary.ValidID(s) {
					out[key] = map[string]any{KeywordID: s}
					continue
				}
				out[key] = s
				continue
			}
			out[key] = makeIDObjects(child, opts, idKeys)
		}
		return out
	case []any:
		out := v
		if !opts.Mutate {
			out = make([]any, len(v))
		}
		for i, child := range v {
			if s, ok := child.(string); ok {
				if vocabulary.ValidID(s) {
					out[i] = map[string]any{KeywordID: s}
					continue
				}
				out[i] = s
				continue
			}
			out[i] = makeIDObjects(child, opts, idKeys)
		}
		return out
	case string:
		if vocabulary.ValidID(v) {
			return map[string]any{KeywordID: v}
		}
		return v
	default:
		return v
	}
}

// ReplaceIDObjects collapses every object whose only key is an id key and
// whose value is a string back to that bare string — the inverse of
// MakeIDObjects. Idempotent when no id-string ambiguity exists.
func ReplaceIDObjects(node any, opts Options) any {
	return replaceIDObjects(node, opts, opts.idKeys())
}

func replaceIDObjects(node any, opts Options, idKeys map[string]struct{}) any {
	switch v := node.(type) {
	case map[string]any:
		if s, ok := idObjectString(v, idKeys); ok {
			return s
		}
		out := v
		if !opts.Mutate {
			out = make(map[string]any, len(v))
		}
		for key, child := range v {
			out[key] = replaceIDObjects(child, opts, idKeys)
		}
		return out
	case []any:
		out := v
		if !opts.Mutate {
			out = make([]any, len(v))
		}
		for i, child := range v {
			out[i] = replaceIDObjects(child, opts, idKeys)
		}
		return out
	default:
		return v
	}
}

// idObjectString returns the wrapped string if obj is a singleton id object.
func idObjectString(obj map[string]any, idKeys map[string]struct{}) (string, bool) {
	if len(obj) != 1 {
		return "", false
	}
	for key, value := range obj {
		if _, ok := idKeys[key]; !ok {
			return "", false
		}
		s, ok := value.(string)
		return s, ok
	}
	return "", false
}

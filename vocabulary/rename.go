package vocabulary

import "log/slog"

// RenameOptions controls RenameTags behavior.
type RenameOptions struct {
	// Mutate rewrites object keys in the input tree instead of building a
	// copy. Arrays and nested objects are still re-allocated as needed to
	// apply key changes.
	Mutate bool

	// Logger receives collision warnings. Defaults to slog.Default().
	Logger *slog.Logger

	// OnCollision is called additionally to logging whenever a renamed key
	// overwrites an existing key at the same object level. Used to feed
	// metrics.
	OnCollision func(from, to string)
}

// RenameTags produces a tree in which every object key at every nesting
// depth is replaced by its entry in the renaming table, or left unchanged if
// the table has none. Array elements and primitive values are recursed into
// but never treated as keys.
//
// If a renamed key collides with an existing key at the same object level,
// the renamed value wins and a warning is logged (last-write-wins).
func RenameTags(node any, m TermMap, opts RenameOptions) any {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return renameTags(node, m, opts, log)
}

func renameTags(node any, m TermMap, opts RenameOptions, log *slog.Logger) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		// Unchanged keys first so that renamed keys win collisions
		// regardless of map iteration order.
		for key, child := range v {
			if MapTerm(key, m) == key {
				out[key] = renameTags(child, m, opts, log)
			}
		}
		for key, child := range v {
			mapped := MapTerm(key, m)
			if mapped == key {
				continue
			}
			if _, exists := out[mapped]; exists {
				log.Warn("tag rename overwrites existing key",
					"from", key,
					"to", mapped)
				if opts.OnCollision != nil {
					opts.OnCollision(key, mapped)
				}
			}
			out[mapped] = renameTags(child, m, opts, log)
		}
		if opts.Mutate {
			for key := range v {
				delete(v, key)
			}
			for key, child := range out {
				v[key] = child
			}
			return v
		}
		return out
	case []any:
		out := v
		if !opts.Mutate {
			out = make([]any, len(v))
		}
		for i, child := range v {
			out[i] = renameTags(child, m, opts, log)
		}
		return out
	default:
		return v
	}
}

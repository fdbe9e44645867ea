// Package jsontree provides depth-first traversal and mapping over untyped
// JSON trees (the map[string]any / []any / primitive shape produced by
// encoding/json).
//
// All functions treat nil input as an empty tree and return without visiting.
// Inputs are assumed acyclic, as they originate from JSON documents; no cycle
// detection is performed.
//
// Mutation Semantics:
//   - By default every transform produces a fresh tree and leaves its input
//     untouched, so non-mutating calls are safe to run concurrently on the
//     same input.
//   - Options.Mutate writes through the input in place. A mutating call must
//     not be interleaved with any other reader or writer of the same tree.
package jsontree

import "strconv"

// VisitFunc is called for every primitive leaf encountered during iteration.
// The path contains the object keys and array indices from the root to the
// leaf, in order.
type VisitFunc func(value any, path []string)

// MapFunc transforms a primitive leaf. The returned value replaces the leaf
// in the output tree.
type MapFunc func(value any, path []string) any

// Options controls tree transformation behavior.
type Options struct {
	// Mutate writes transformed values through the input tree instead of
	// building a copy.
	Mutate bool
}

// Iterate walks node depth-first and calls visit for every primitive leaf.
// Objects and arrays are descended into; nil nodes terminate the walk without
// a visit. The tree is never modified.
func Iterate(node any, visit VisitFunc) {
	iterate(node, visit, nil)
}

func iterate(node any, visit VisitFunc, path []string) {
	switch v := node.(type) {
	case nil:
		// Absent branch, nothing to visit.
	case map[string]any:
		for key, child := range v {
			iterate(child, visit, append(path, key))
		}
	case []any:
		for i, child := range v {
			iterate(child, visit, append(path, strconv.Itoa(i)))
		}
	default:
		visit(v, path)
	}
}

// Map produces a structurally identical tree in which every primitive leaf
// is replaced by fn(leaf, path). With opts.Mutate the input tree is written
// through in place and returned; otherwise a fresh tree is built.
func Map(node any, fn MapFunc, opts Options) any {
	return mapTree(node, fn, opts.Mutate, nil)
}

func mapTree(node any, fn MapFunc, mutate bool, path []string) any {
	switch v := node.(type) {
	case nil:
		return nil
	case map[string]any:
		out := v
		if !mutate {
			out = make(map[string]any, len(v))
		}
		for key, child := range v {
			out[key] = mapTree(child, fn, mutate, append(path, key))
		}
		return out
	case []any:
		out := v
		if !mutate {
			out = make([]any, len(v))
		}
		for i, child := range v {
			out[i] = mapTree(child, fn, mutate, append(path, strconv.Itoa(i)))
		}
		return out
	default:
		return fn(v, path)
	}
}

// Clone returns a deep copy of node. Primitives are returned as-is.
func Clone(node any) any {
	return Map(node, func(v any, _ []string) any { return v }, Options{})
}

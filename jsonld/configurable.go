package jsonld

import (
	"fmt"
	"sort"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// Collector extracts configurable properties and references from JSON-LD
// objects. The reserved key set is resolved once at construction, so
// collection itself involves no table lookups beyond the id grammar.
//
// Value objects are accepted in both raw JSON-LD key form ("pig:itemType",
// "@value", "@id") and internal key form ("itemType", "value", "id"), so the
// Collector works on documents before or after tag renaming.
type Collector struct {
	reserved map[string]struct{}
}

// NewCollector builds a Collector whose reserved set contains every fixed
// metamodel attribute in internal and JSON-LD form plus the owned collection
// fields. Extra reserved keys may be supplied for project-specific
// extensions.
func NewCollector(extra ...string) *Collector {
	reserved := make(map[string]struct{})
	for internal, predicate := range vocabulary.ToJSONLD() {
		reserved[internal] = struct{}{}
		reserved[predicate] = struct{}{}
	}
	for _, key := range []string{
		"hasProperty", "hasTarget", "hasSource", "idRef",
		SourcePredicate, TargetPredicate,
	} {
		reserved[key] = struct{}{}
	}
	for _, key := range extra {
		reserved[key] = struct{}{}
	}
	return &Collector{reserved: reserved}
}

// Collect pulls every configurable entry matching expectedItemType out of
// obj and returns the flat records {itemType, hasClass, value?, idRef?,
// aComposedProperty?}. A key is configurable when it is not reserved and is
// a valid id string (the configuring class id). Matched array entries are
// removed from obj; unmatched or non-conforming entries stay in place. A
// primitive value under a configurable key becomes a simple string-valued
// record.
//
// Collect modifies obj. Keys are visited in sorted order so record order is
// deterministic; within a key, array order is preserved.
func (c *Collector) Collect(obj map[string]any, expectedItemType string) []map[string]any {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		if _, isReserved := c.reserved[key]; isReserved {
			continue
		}
		if !vocabulary.ValidID(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var records []map[string]any
	for _, key := range keys {
		switch value := obj[key].(type) {
		case []any:
			var remaining []any
			for _, entry := range value {
				elem, ok := entry.(map[string]any)
				if ok && itemTypeOf(elem) == expectedItemType {
					records = append(records, recordFromElement(key, elem))
					continue
				}
				remaining = append(remaining, entry)
			}
			if len(remaining) == 0 {
				delete(obj, key)
			} else {
				obj[key] = remaining
			}
		case map[string]any:
			// A single unwrapped value object is tolerated like a
			// one-element array.
			if itemTypeOf(value) == expectedItemType {
				records = append(records, recordFromElement(key, value))
				delete(obj, key)
			}
		default:
			records = append(records, map[string]any{
				"itemType": expectedItemType,
				"hasClass": key,
				"value":    fmt.Sprint(value),
			})
			delete(obj, key)
		}
	}
	return records
}

// itemTypeOf reads the item type tag of a value object in either key form,
// unwrapping an id object if present.
func itemTypeOf(elem map[string]any) string {
	v, ok := elem[ItemTypePredicate]
	if !ok {
		v = elem["itemType"]
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		s, _ := t[KeywordID].(string)
		return s
	default:
		return ""
	}
}

// fieldOf reads a value-object field in internal or JSON-LD key form.
func fieldOf(elem map[string]any, internal, keyword string) (any, bool) {
	if v, ok := elem[internal]; ok {
		return v, true
	}
	v, ok := elem[keyword]
	return v, ok
}

// recordFromElement flattens a collected value object into an internal
// record, carrying the configuring class as hasClass and renaming the
// unpacked reference to idRef.
func recordFromElement(class string, elem map[string]any) map[string]any {
	rec := map[string]any{
		"itemType": itemTypeOf(elem),
		"hasClass": class,
	}
	if v, ok := fieldOf(elem, "value", KeywordValue); ok {
		rec["value"] = v
	}
	if v, ok := fieldOf(elem, "id", KeywordID); ok {
		rec["idRef"] = v
	}
	if v, ok := fieldOf(elem, "aComposedProperty", ComposedPredicate); ok {
		rec["aComposedProperty"] = composedRecords(v)
	}
	return rec
}

// composedRecords flattens the nested composed-property array. Composed
// entries keep their own class under hasClass.
func composedRecords(v any) []any {
	entries, ok := v.([]any)
	if !ok {
		entries = []any{v}
	}
	out := make([]any, 0, len(entries))
	for _, entry := range entries {
		elem, ok := entry.(map[string]any)
		if !ok {
			out = append(out, entry)
			continue
		}
		rec := map[string]any{"itemType": itemTypeOf(elem)}
		if hc, ok := fieldOf(elem, "hasClass", KeywordType); ok {
			if s, isWrapped := hc.(map[string]any); isWrapped {
				hc = s[KeywordID]
			}
			rec["hasClass"] = hc
		}
		if v, ok := fieldOf(elem, "value", KeywordValue); ok {
			rec["value"] = v
		}
		if v, ok := fieldOf(elem, "id", KeywordID); ok {
			rec["idRef"] = v
		}
		out = append(out, rec)
	}
	return out
}

// Records flattens an array of value objects into internal records, reading
// the configuring class from each element itself ("hasClass" or "@type")
// instead of from an object key. This is the parsing half for
// fixed-predicate arrays such as pig:hasSource. A single unwrapped value
// object is tolerated like a one-element array; non-object entries are
// skipped.
func Records(v any) []map[string]any {
	entries, ok := v.([]any)
	if !ok {
		elem, isObject := v.(map[string]any)
		if !isObject {
			return nil
		}
		entries = []any{elem}
	}

	records := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		elem, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		rec := map[string]any{"itemType": itemTypeOf(elem)}
		if hc, ok := fieldOf(elem, "hasClass", KeywordType); ok {
			if wrapped, isWrapped := hc.(map[string]any); isWrapped {
				hc = wrapped[KeywordID]
			}
			rec["hasClass"] = hc
		}
		if v, ok := fieldOf(elem, "value", KeywordValue); ok {
			rec["value"] = v
		}
		if v, ok := fieldOf(elem, "id", KeywordID); ok {
			rec["idRef"] = v
		}
		if v, ok := elem["idRef"]; ok {
			rec["idRef"] = v
		}
		if v, ok := fieldOf(elem, "aComposedProperty", ComposedPredicate); ok {
			rec["aComposedProperty"] = composedRecords(v)
		}
		records = append(records, rec)
	}
	return records
}

// ValueObjects builds the JSON-LD array for flat records, carrying each
// record's hasClass as "@type" on the element — the emitting half for
// fixed-predicate arrays, inverse of Records.
func ValueObjects(records []map[string]any) []any {
	out := make([]any, 0, len(records))
	for _, rec := range records {
		entry := valueObject(rec)
		if hc, ok := rec["hasClass"]; ok {
			entry[KeywordType] = hc
		}
		out = append(out, entry)
	}
	return out
}

// Expand regroups flat records under their per-class keys on a JSON-LD
// object — the inverse of Collect. Each record becomes a value object
// {"pig:itemType": {"@id": t}, "@value": ..., "@id": ...}; records sharing a
// hasClass land in the same array. The flat field is deleted from obj.
func Expand(obj map[string]any, records []map[string]any, fieldName string) {
	delete(obj, fieldName)
	for _, rec := range records {
		class, _ := rec["hasClass"].(string)
		if class == "" {
			continue
		}
		entry := valueObject(rec)
		switch existing := obj[class].(type) {
		case nil:
			obj[class] = []any{entry}
		case []any:
			obj[class] = append(existing, entry)
		default:
			obj[class] = []any{existing, entry}
		}
	}
}

// valueObject builds the JSON-LD value object for a flat record.
func valueObject(rec map[string]any) map[string]any {
	entry := map[string]any{
		ItemTypePredicate: map[string]any{KeywordID: rec["itemType"]},
	}
	if v, ok := rec["value"]; ok {
		entry[KeywordValue] = v
	}
	if v, ok := rec["idRef"]; ok {
		entry[KeywordID] = v
	}
	if composed, ok := rec["aComposedProperty"].([]any); ok {
		out := make([]any, 0, len(composed))
		for _, c := range composed {
			cm, ok := c.(map[string]any)
			if !ok {
				out = append(out, c)
				continue
			}
			nested := map[string]any{
				ItemTypePredicate: map[string]any{KeywordID: cm["itemType"]},
			}
			if hc, ok := cm["hasClass"]; ok {
				nested[KeywordType] = hc
			}
			if v, ok := cm["value"]; ok {
				nested[KeywordValue] = v
			}
			if v, ok := cm["idRef"]; ok {
				nested[KeywordID] = v
			}
			out = append(out, nested)
		}
		entry[ComposedPredicate] = out
	}
	return entry
}

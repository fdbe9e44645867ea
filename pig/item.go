package pig

import (
	"fmt"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pkg/jsontree"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// Item is the behavior every metamodel type implements.
//
// Set runs the full normalize → validate → assign pipeline and is
// all-or-nothing: on failure no field changes and the item is marked
// invalid. Get returns a plain snapshot of the item's state, or nil while
// the item is invalid (never set, or last validation failed). GetJSONLD and
// SetJSONLD add the interchange transforms on top of Get and Set.
type Item interface {
	Type() ItemType
	Normalize(data map[string]any) map[string]any
	Validate(data map[string]any) message.Status
	Set(data map[string]any) message.Status
	Get() map[string]any
	SetJSONLD(doc map[string]any) message.Status
	GetJSONLD() map[string]any
}

// core is embedded in every concrete item type.
type core struct {
	model    *Model
	itemType ItemType
	valid    bool
}

func (c *core) Type() ItemType { return c.itemType }

func (c *core) status(code int, args ...any) message.Status {
	return c.model.status(code, args...)
}

// normalizeBase clones the candidate, fills in a missing itemType tag and
// canonicalizes the text fields. Every concrete Normalize starts here, so
// the caller's map is never modified.
func (c *core) normalizeBase(data map[string]any) map[string]any {
	out, _ := jsontree.Clone(data).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	if _, ok := out["itemType"]; !ok {
		out["itemType"] = string(c.itemType)
	}
	for _, field := range []string{"title", "description"} {
		if v, ok := out[field]; ok {
			out[field] = normalizeText(v)
		}
	}
	return out
}

// checkTypeTag rejects input tagged with a different item type. This runs
// before schema validation because the schema is selected by the tag.
func (c *core) checkTypeTag(data map[string]any) message.Status {
	raw, ok := data["itemType"]
	if !ok {
		return message.OK()
	}
	if s, _ := raw.(string); s != string(c.itemType) {
		return c.status(message.StatusWrongItemType, string(c.itemType), fmt.Sprint(raw))
	}
	return message.OK()
}

// checkIdentity validates id and specializes against the id grammar and the
// immutability rules, given the item's current values. An absent
// specializes on a re-set keeps the current value; the field cannot be
// unset.
func (c *core) checkIdentity(data map[string]any, currentID, currentSpecializes string) (id, specializes string, st message.Status) {
	id, _ = data["id"].(string)
	if !vocabulary.ValidID(id) {
		return "", "", c.status(message.StatusInvalidID, id)
	}
	if currentID != "" && id != currentID {
		return "", "", c.status(message.StatusImmutableID, currentID, id)
	}

	specializes = currentSpecializes
	if raw, ok := data["specializes"]; ok {
		supplied, _ := raw.(string)
		if !vocabulary.ValidID(supplied) {
			return "", "", c.status(message.StatusInvalidID, fmt.Sprint(raw))
		}
		if currentSpecializes != "" && supplied != currentSpecializes {
			return "", "", c.status(message.StatusImmutableSpecializes, currentSpecializes, supplied)
		}
		specializes = supplied
	}
	return id, specializes, message.OK()
}

// idArray validates a field holding an array of id strings. The return
// value distinguishes an absent field from a present-but-empty one: absent
// yields nil, present-empty yields an empty non-nil slice. minCount applies
// only when the field is present.
func (c *core) idArray(data map[string]any, field string, minCount int) ([]string, message.Status) {
	raw, present := data[field]
	if !present {
		return nil, message.OK()
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.status(message.StatusNotAnArray, field)
	}
	if len(entries) < minCount {
		return nil, c.status(message.StatusArrayBelowMinCount, field, minCount)
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		s, isString := entry.(string)
		if !isString || !vocabulary.ValidID(s) {
			return nil, c.status(message.StatusInvalidArrayEntry, field, fmt.Sprint(entry))
		}
		out = append(out, s)
	}
	return out, message.OK()
}

// requiredIDArray is idArray for fields that must be present.
func (c *core) requiredIDArray(data map[string]any, field string, minCount int) ([]string, message.Status) {
	if _, present := data[field]; !present {
		return nil, c.status(message.StatusArrayBelowMinCount, field, minCount)
	}
	return c.idArray(data, field, minCount)
}

// textField parses a normalized multi-language text field and applies the
// language cardinality rule: a single variant may omit its language tag,
// multiple variants may not.
func (c *core) textField(data map[string]any, field string) (MultiLanguageText, message.Status) {
	raw, present := data[field]
	if !present {
		return nil, message.OK()
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.status(message.StatusInvalidText, field)
	}
	out := make(MultiLanguageText, 0, len(entries))
	for _, entry := range entries {
		elem, ok := entry.(map[string]any)
		if !ok {
			return nil, c.status(message.StatusInvalidText, field)
		}
		value, ok := elem["value"].(string)
		if !ok {
			return nil, c.status(message.StatusInvalidText, field)
		}
		lang, _ := elem["lang"].(string)
		if lang == "" && len(entries) > 1 {
			return nil, c.status(message.StatusTextMissingLanguage, field)
		}
		out = append(out, LanguageText{Value: value, Lang: lang})
	}
	return out, message.OK()
}

// classID validates an optional field holding a single class id.
func (c *core) classID(data map[string]any, field string) (string, message.Status) {
	raw, present := data[field]
	if !present {
		return "", message.OK()
	}
	s, _ := raw.(string)
	if !vocabulary.ValidID(s) {
		return "", c.status(message.StatusInvalidID, fmt.Sprint(raw))
	}
	return s, message.OK()
}

// identifiable carries the attributes shared by everything that has an
// identity of its own: the classes and the self-standing instances.
type identifiable struct {
	id          string
	specializes string
	title       MultiLanguageText
	description MultiLanguageText
}

// ID returns the item's identifier, empty until the first successful Set.
func (i *identifiable) ID() string { return i.id }

// Specializes returns the id of the generalized item, empty when unset.
func (i *identifiable) Specializes() string { return i.specializes }

func (i *identifiable) Title() MultiLanguageText { return i.title }

func (i *identifiable) Description() MultiLanguageText { return i.description }

func (i *identifiable) snapshotInto(out map[string]any) {
	out["id"] = i.id
	if i.specializes != "" {
		out["specializes"] = i.specializes
	}
	if len(i.title) > 0 {
		out["title"] = i.title.snapshot()
	}
	if len(i.description) > 0 {
		out["description"] = i.description.snapshot()
	}
}

func intField(data map[string]any, field string) *int {
	switch v := data[field].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}

func floatField(data map[string]any, field string) *float64 {
	switch v := data[field].(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func stringSlice(v any) []string {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// mergeRecords appends collected records to an array field, keeping
// whatever the field already holds.
func mergeRecords(obj map[string]any, field string, records []map[string]any) {
	if len(records) == 0 {
		return
	}
	existing, _ := obj[field].([]any)
	for _, rec := range records {
		existing = append(existing, rec)
	}
	obj[field] = existing
}

package pig

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pkg/timestamp"
)

// anElement carries the attributes shared by the self-standing instances
// AnEntity and ARelationship: identity, revision chain, audit fields and
// the owned configurable property values.
type anElement struct {
	identifiable
	hasClass      string
	revision      string
	priorRevision string
	modified      string
	creator       string
	hasProperty   []*AProperty
}

// HasClass returns the id of the instantiated ontology class.
func (e *anElement) HasClass() string { return e.hasClass }

// Revision returns the revision tag, synthesized when the source had none.
func (e *anElement) Revision() string { return e.revision }

func (e *anElement) PriorRevision() string { return e.priorRevision }

// Modified returns the last-change timestamp in RFC3339 UTC form.
func (e *anElement) Modified() string { return e.modified }

func (e *anElement) Creator() string { return e.creator }

// HasProperty returns the owned property values. The slice is the item's
// own state; callers must not modify it.
func (e *anElement) HasProperty() []*AProperty { return e.hasProperty }

func (e *anElement) snapshotInto(out map[string]any) {
	e.identifiable.snapshotInto(out)
	if e.hasClass != "" {
		out["hasClass"] = e.hasClass
	}
	if e.revision != "" {
		out["revision"] = e.revision
	}
	if e.priorRevision != "" {
		out["priorRevision"] = e.priorRevision
	}
	if e.modified != "" {
		out["modified"] = e.modified
	}
	if e.creator != "" {
		out["creator"] = e.creator
	}
	if len(e.hasProperty) > 0 {
		out["hasProperty"] = propertySnapshots(e.hasProperty)
	}
}

// normalizeElement applies the instance-level synthesis rules to a
// normalized candidate: a missing revision gets a fresh UUID, a missing
// modified timestamp the current time, and a parseable timestamp its
// canonical RFC3339 UTC form. An unparseable timestamp is left for the
// caller to see unchanged.
func (c *core) normalizeElement(out map[string]any) {
	if _, ok := out["revision"]; !ok {
		out["revision"] = uuid.NewString()
	}
	raw, ok := out["modified"]
	if !ok {
		out["modified"] = timestamp.Now()
		return
	}
	if canonical, valid := timestamp.Normalize(raw); valid {
		out["modified"] = canonical
	}
}

// validateElement stages the shared instance attributes.
func (c *core) validateElement(data map[string]any, current *anElement) (anElement, message.Status) {
	var f anElement
	if st := c.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := c.model.checkSchema(c.itemType, data); !st.Ok {
		return f, st
	}

	id, specializes, st := c.checkIdentity(data, current.id, current.specializes)
	if !st.Ok {
		return f, st
	}
	f.id, f.specializes = id, specializes

	if f.title, st = c.textField(data, "title"); !st.Ok {
		return f, st
	}
	if f.description, st = c.textField(data, "description"); !st.Ok {
		return f, st
	}
	if f.hasClass, st = c.classID(data, "hasClass"); !st.Ok {
		return f, st
	}
	f.revision, _ = data["revision"].(string)
	f.priorRevision, _ = data["priorRevision"].(string)
	f.modified, _ = data["modified"].(string)
	f.creator, _ = data["creator"].(string)

	if f.hasProperty, st = c.ownedProperties(data, "hasProperty"); !st.Ok {
		return f, st
	}
	return f, message.OK()
}

// ownedProperties instantiates the owned property values of a field. Each
// record must carry the class that configures it; without one the value
// could not be grouped back under its class key on output.
func (c *core) ownedProperties(data map[string]any, field string) ([]*AProperty, message.Status) {
	raw, present := data[field]
	if !present {
		return nil, message.OK()
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.status(message.StatusNotAnArray, field)
	}
	out := make([]*AProperty, 0, len(entries))
	for _, entry := range entries {
		elem, isObject := entry.(map[string]any)
		if !isObject {
			return nil, c.status(message.StatusInvalidArrayEntry, field, fmt.Sprint(entry))
		}
		child := c.model.NewAProperty()
		if st := child.Set(elem); !st.Ok {
			return nil, st
		}
		if child.hasClass == "" {
			return nil, c.status(message.StatusInvalidArrayEntry, field, "value without hasClass")
		}
		out = append(out, child)
	}
	return out, message.OK()
}

// ownedReferences instantiates the owned references of a field. minCount
// greater than zero makes the field required.
func (c *core) ownedReferences(data map[string]any, field string, minCount int) ([]*AReference, message.Status) {
	raw, present := data[field]
	if !present {
		if minCount > 0 {
			return nil, c.status(message.StatusArrayBelowMinCount, field, minCount)
		}
		return nil, message.OK()
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.status(message.StatusNotAnArray, field)
	}
	if len(entries) < minCount {
		return nil, c.status(message.StatusArrayBelowMinCount, field, minCount)
	}
	out := make([]*AReference, 0, len(entries))
	for _, entry := range entries {
		elem, isObject := entry.(map[string]any)
		if !isObject {
			return nil, c.status(message.StatusInvalidArrayEntry, field, fmt.Sprint(entry))
		}
		child := c.model.NewAReference()
		if st := child.Set(elem); !st.Ok {
			return nil, st
		}
		if child.hasClass == "" {
			return nil, c.status(message.StatusInvalidArrayEntry, field, "reference without hasClass")
		}
		out = append(out, child)
	}
	return out, message.OK()
}

func propertySnapshots(props []*AProperty) []any {
	out := make([]any, len(props))
	for i, p := range props {
		out[i] = p.Get()
	}
	return out
}

func referenceSnapshots(refs []*AReference) []any {
	out := make([]any, len(refs))
	for i, r := range refs {
		out[i] = r.Get()
	}
	return out
}

func propertyRecords(props []*AProperty) []map[string]any {
	out := make([]map[string]any, len(props))
	for i, p := range props {
		out[i] = p.record()
	}
	return out
}

func referenceRecords(refs []*AReference) []map[string]any {
	out := make([]map[string]any, len(refs))
	for i, r := range refs {
		out[i] = r.record()
	}
	return out
}

package pig

import (
	"fmt"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/jsonld"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

type aReferenceState struct {
	hasClass string
	idRef    string
}

// AReference is an instantiated reference to another element. Like
// AProperty it has no identity of its own; it is owned by the element or
// relationship end carrying it, classed by a Reference class, and points at
// its target by id only. Resolving the target is the whole-graph
// consistency check's concern.
type AReference struct {
	core
	aReferenceState
}

// HasClass returns the id of the configuring Reference class.
func (r *AReference) HasClass() string { return r.hasClass }

// IDRef returns the id of the referenced element.
func (r *AReference) IDRef() string { return r.idRef }

func (r *AReference) Normalize(data map[string]any) map[string]any {
	return r.normalizeBase(data)
}

func (r *AReference) validate(data map[string]any) (aReferenceState, message.Status) {
	var f aReferenceState
	if st := r.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := r.model.checkSchema(r.itemType, data); !st.Ok {
		return f, st
	}

	var st message.Status
	if f.hasClass, st = r.classID(data, "hasClass"); !st.Ok {
		return f, st
	}
	f.idRef, _ = data["idRef"].(string)
	if !vocabulary.ValidID(f.idRef) {
		return f, r.status(message.StatusInvalidID, fmt.Sprint(data["idRef"]))
	}
	return f, message.OK()
}

func (r *AReference) Validate(data map[string]any) message.Status {
	_, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
	}
	return st
}

func (r *AReference) Set(data map[string]any) message.Status {
	f, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
		return st
	}
	r.aReferenceState = f
	r.valid = true
	return st
}

// record returns the flat transform record for this reference.
func (r *AReference) record() map[string]any {
	rec := map[string]any{"itemType": string(r.itemType)}
	if r.hasClass != "" {
		rec["hasClass"] = r.hasClass
	}
	if r.idRef != "" {
		rec["idRef"] = r.idRef
	}
	return rec
}

func (r *AReference) Get() map[string]any {
	if !r.valid {
		return nil
	}
	return r.record()
}

// GetJSONLD renders the reference as a standalone JSON-LD value object.
func (r *AReference) GetJSONLD() map[string]any {
	if !r.valid {
		return nil
	}
	entry, _ := jsonld.ValueObjects([]map[string]any{r.record()})[0].(map[string]any)
	out, _ := jsonld.MakeIDObjects(entry, jsonld.Options{Mutate: true, IDKeys: r.model.idKeys}).(map[string]any)
	if r.model.context != "" {
		out[jsonld.KeywordContext] = r.model.context
	}
	r.model.observeTransform("to_jsonld")
	return out
}

func (r *AReference) SetJSONLD(doc map[string]any) message.Status {
	obj := r.model.internalize(doc)
	records := jsonld.Records([]any{obj})
	if len(records) != 1 {
		return r.status(message.StatusSchemaViolation, string(r.itemType), "not a value object")
	}
	return r.Set(records[0])
}

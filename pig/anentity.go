package pig

import (
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/jsonld"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
)

type anEntityState struct {
	anElement
	hasTarget []*AReference
}

// AnEntity is an instantiated entity: a concrete thing of the product
// graph, classed by an Entity class, carrying configurable property values
// and references to other entities.
type AnEntity struct {
	core
	anEntityState
}

// HasTarget returns the owned references to other entities.
func (e *AnEntity) HasTarget() []*AReference { return e.hasTarget }

func (e *AnEntity) Normalize(data map[string]any) map[string]any {
	out := e.normalizeBase(data)
	e.normalizeElement(out)
	return out
}

func (e *AnEntity) validate(data map[string]any) (anEntityState, message.Status) {
	var f anEntityState
	element, st := e.validateElement(data, &e.anElement)
	if !st.Ok {
		return f, st
	}
	f.anElement = element
	if f.hasTarget, st = e.ownedReferences(data, "hasTarget", 0); !st.Ok {
		return f, st
	}
	return f, message.OK()
}

func (e *AnEntity) Validate(data map[string]any) message.Status {
	_, st := e.validate(e.Normalize(data))
	e.model.observe(e.itemType, st)
	if !st.Ok {
		e.valid = false
	}
	return st
}

func (e *AnEntity) Set(data map[string]any) message.Status {
	f, st := e.validate(e.Normalize(data))
	e.model.observe(e.itemType, st)
	if !st.Ok {
		e.valid = false
		return st
	}
	e.anEntityState = f
	e.valid = true
	return st
}

func (e *AnEntity) Get() map[string]any {
	if !e.valid {
		return nil
	}
	out := map[string]any{"itemType": string(e.itemType)}
	e.anElement.snapshotInto(out)
	if len(e.hasTarget) > 0 {
		out["hasTarget"] = referenceSnapshots(e.hasTarget)
	}
	return out
}

// GetJSONLD renders the entity with its owned values regrouped under their
// class keys: property values and references both travel as class-keyed
// value-object arrays.
func (e *AnEntity) GetJSONLD() map[string]any {
	snap := e.Get()
	if snap == nil {
		return nil
	}
	delete(snap, "hasProperty")
	delete(snap, "hasTarget")
	return e.model.externalize(snap, func(out map[string]any) {
		jsonld.Expand(out, propertyRecords(e.hasProperty), "hasProperty")
		jsonld.Expand(out, referenceRecords(e.hasTarget), "hasTarget")
	})
}

// SetJSONLD ingests a JSON-LD document, collecting class-keyed value
// objects back into the owned collections before Set.
func (e *AnEntity) SetJSONLD(doc map[string]any) message.Status {
	obj := e.model.internalize(doc)
	mergeRecords(obj, "hasProperty", e.model.collector.Collect(obj, string(TypeAProperty)))
	mergeRecords(obj, "hasTarget", e.model.collector.Collect(obj, string(TypeAReference)))
	return e.Set(obj)
}

package pig

import (
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/jsonld"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
)

type aRelationshipState struct {
	anElement
	hasSource []*AReference
	hasTarget []*AReference
}

// ARelationship is an instantiated relationship: a statement connecting at
// least one source and one target entity, classed by a Relationship class.
type ARelationship struct {
	core
	aRelationshipState
}

// HasSource returns the references at the source end.
func (r *ARelationship) HasSource() []*AReference { return r.hasSource }

// HasTarget returns the references at the target end.
func (r *ARelationship) HasTarget() []*AReference { return r.hasTarget }

func (r *ARelationship) Normalize(data map[string]any) map[string]any {
	out := r.normalizeBase(data)
	r.normalizeElement(out)
	return out
}

func (r *ARelationship) validate(data map[string]any) (aRelationshipState, message.Status) {
	var f aRelationshipState
	element, st := r.validateElement(data, &r.anElement)
	if !st.Ok {
		return f, st
	}
	f.anElement = element

	// A relationship without both ends states nothing.
	if f.hasSource, st = r.ownedReferences(data, "hasSource", 1); !st.Ok {
		return f, st
	}
	if f.hasTarget, st = r.ownedReferences(data, "hasTarget", 1); !st.Ok {
		return f, st
	}
	return f, message.OK()
}

func (r *ARelationship) Validate(data map[string]any) message.Status {
	_, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
	}
	return st
}

func (r *ARelationship) Set(data map[string]any) message.Status {
	f, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
		return st
	}
	r.aRelationshipState = f
	r.valid = true
	return st
}

func (r *ARelationship) Get() map[string]any {
	if !r.valid {
		return nil
	}
	out := map[string]any{"itemType": string(r.itemType)}
	r.anElement.snapshotInto(out)
	out["hasSource"] = referenceSnapshots(r.hasSource)
	out["hasTarget"] = referenceSnapshots(r.hasTarget)
	return out
}

// GetJSONLD renders the relationship with its property values regrouped
// under their class keys. The endpoints go under the fixed predicates
// pig:hasSource and pig:hasTarget: both ends hold aReference values, so
// class-keyed grouping could not tell them apart on the way back in.
func (r *ARelationship) GetJSONLD() map[string]any {
	snap := r.Get()
	if snap == nil {
		return nil
	}
	delete(snap, "hasProperty")
	delete(snap, "hasSource")
	delete(snap, "hasTarget")
	return r.model.externalize(snap, func(out map[string]any) {
		jsonld.Expand(out, propertyRecords(r.hasProperty), "hasProperty")
		out[jsonld.SourcePredicate] = jsonld.ValueObjects(referenceRecords(r.hasSource))
		out[jsonld.TargetPredicate] = jsonld.ValueObjects(referenceRecords(r.hasTarget))
	})
}

// SetJSONLD ingests a JSON-LD document: property values are collected from
// their class keys, the endpoints from their fixed predicates.
func (r *ARelationship) SetJSONLD(doc map[string]any) message.Status {
	obj := r.model.internalize(doc)
	if raw, ok := obj[jsonld.SourcePredicate]; ok {
		delete(obj, jsonld.SourcePredicate)
		mergeRecords(obj, "hasSource", jsonld.Records(raw))
	}
	if raw, ok := obj[jsonld.TargetPredicate]; ok {
		delete(obj, jsonld.TargetPredicate)
		mergeRecords(obj, "hasTarget", jsonld.Records(raw))
	}
	mergeRecords(obj, "hasProperty", r.model.collector.Collect(obj, string(TypeAProperty)))
	return r.Set(obj)
}

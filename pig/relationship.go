package pig

import "github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"

type relationshipState struct {
	identifiable
	eligibleProperty []string
	eligibleSource   []string
	eligibleTarget   []string
	icon             string
}

// Relationship is the ontology class for first-class statements between
// entities. Its eligible lists configure which entity classes may appear at
// either end and which property classes instances may carry.
type Relationship struct {
	core
	relationshipState
}

// EligibleProperty returns the property classes instances may carry;
// present is false when unrestricted, a present empty list forbids all.
func (r *Relationship) EligibleProperty() (classes []string, present bool) {
	return r.eligibleProperty, r.eligibleProperty != nil
}

// EligibleSource returns the entity classes allowed at the source end.
// present is false when any class is allowed; a supplied list must not be
// empty, so present implies at least one entry.
func (r *Relationship) EligibleSource() (classes []string, present bool) {
	return r.eligibleSource, r.eligibleSource != nil
}

// EligibleTarget returns the entity classes allowed at the target end, with
// the same semantics as EligibleSource.
func (r *Relationship) EligibleTarget() (classes []string, present bool) {
	return r.eligibleTarget, r.eligibleTarget != nil
}

func (r *Relationship) Icon() string { return r.icon }

func (r *Relationship) Normalize(data map[string]any) map[string]any {
	return r.normalizeBase(data)
}

func (r *Relationship) validate(data map[string]any) (relationshipState, message.Status) {
	var f relationshipState
	if st := r.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := r.model.checkSchema(r.itemType, data); !st.Ok {
		return f, st
	}

	id, specializes, st := r.checkIdentity(data, r.id, r.specializes)
	if !st.Ok {
		return f, st
	}
	f.id, f.specializes = id, specializes

	if f.title, st = r.textField(data, "title"); !st.Ok {
		return f, st
	}
	if f.description, st = r.textField(data, "description"); !st.Ok {
		return f, st
	}
	if f.eligibleProperty, st = r.idArray(data, "eligibleProperty", 0); !st.Ok {
		return f, st
	}
	// An absent endpoint list means any entity class; a supplied one must
	// name at least one class, otherwise no instance could ever be built.
	if f.eligibleSource, st = r.idArray(data, "eligibleSource", 1); !st.Ok {
		return f, st
	}
	if f.eligibleTarget, st = r.idArray(data, "eligibleTarget", 1); !st.Ok {
		return f, st
	}
	f.icon, _ = data["icon"].(string)
	return f, message.OK()
}

func (r *Relationship) Validate(data map[string]any) message.Status {
	_, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
	}
	return st
}

func (r *Relationship) Set(data map[string]any) message.Status {
	f, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
		return st
	}
	r.relationshipState = f
	r.valid = true
	return st
}

func (r *Relationship) Get() map[string]any {
	if !r.valid {
		return nil
	}
	out := map[string]any{"itemType": string(r.itemType)}
	r.identifiable.snapshotInto(out)
	if r.eligibleProperty != nil {
		out["eligibleProperty"] = anySlice(r.eligibleProperty)
	}
	if r.eligibleSource != nil {
		out["eligibleSource"] = anySlice(r.eligibleSource)
	}
	if r.eligibleTarget != nil {
		out["eligibleTarget"] = anySlice(r.eligibleTarget)
	}
	if r.icon != "" {
		out["icon"] = r.icon
	}
	return out
}

func (r *Relationship) GetJSONLD() map[string]any {
	snap := r.Get()
	if snap == nil {
		return nil
	}
	return r.model.externalize(snap, nil)
}

func (r *Relationship) SetJSONLD(doc map[string]any) message.Status {
	return r.Set(r.model.internalize(doc))
}

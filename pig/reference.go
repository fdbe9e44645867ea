package pig

import "github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"

type referenceState struct {
	identifiable
	eligibleTarget []string
}

// Reference is the ontology class typing the references an entity may hold
// to other entities. Unlike a Relationship it carries no statement of its
// own; it only names the entity classes a reference of this class may
// point at.
type Reference struct {
	core
	referenceState
}

// EligibleTarget returns the entity classes a reference of this class may
// point at. Always present with at least one entry on a valid item.
func (r *Reference) EligibleTarget() []string { return r.eligibleTarget }

func (r *Reference) Normalize(data map[string]any) map[string]any {
	return r.normalizeBase(data)
}

func (r *Reference) validate(data map[string]any) (referenceState, message.Status) {
	var f referenceState
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
	if f.eligibleTarget, st = r.requiredIDArray(data, "eligibleTarget", 1); !st.Ok {
		return f, st
	}
	return f, message.OK()
}

func (r *Reference) Validate(data map[string]any) message.Status {
	_, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
	}
	return st
}

func (r *Reference) Set(data map[string]any) message.Status {
	f, st := r.validate(r.Normalize(data))
	r.model.observe(r.itemType, st)
	if !st.Ok {
		r.valid = false
		return st
	}
	r.referenceState = f
	r.valid = true
	return st
}

func (r *Reference) Get() map[string]any {
	if !r.valid {
		return nil
	}
	out := map[string]any{"itemType": string(r.itemType)}
	r.identifiable.snapshotInto(out)
	out["eligibleTarget"] = anySlice(r.eligibleTarget)
	return out
}

func (r *Reference) GetJSONLD() map[string]any {
	snap := r.Get()
	if snap == nil {
		return nil
	}
	return r.model.externalize(snap, nil)
}

func (r *Reference) SetJSONLD(doc map[string]any) message.Status {
	return r.Set(r.model.internalize(doc))
}

package pig

import "github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"

type entityState struct {
	identifiable
	eligibleProperty  []string
	eligibleReference []string
	icon              string
}

// Entity is the ontology class for the things of the product graph. Its
// eligible lists configure which property and reference classes instances
// of this class may carry.
type Entity struct {
	core
	entityState
}

// EligibleProperty returns the property classes instances may carry.
// present is false when the field was never supplied, which means
// unrestricted; a present empty list means no properties are allowed.
func (e *Entity) EligibleProperty() (classes []string, present bool) {
	return e.eligibleProperty, e.eligibleProperty != nil
}

// EligibleReference returns the reference classes instances may carry, with
// the same absent-versus-empty semantics as EligibleProperty.
func (e *Entity) EligibleReference() (classes []string, present bool) {
	return e.eligibleReference, e.eligibleReference != nil
}

func (e *Entity) Icon() string { return e.icon }

func (e *Entity) Normalize(data map[string]any) map[string]any {
	return e.normalizeBase(data)
}

func (e *Entity) validate(data map[string]any) (entityState, message.Status) {
	var f entityState
	if st := e.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := e.model.checkSchema(e.itemType, data); !st.Ok {
		return f, st
	}

	id, specializes, st := e.checkIdentity(data, e.id, e.specializes)
	if !st.Ok {
		return f, st
	}
	f.id, f.specializes = id, specializes

	if f.title, st = e.textField(data, "title"); !st.Ok {
		return f, st
	}
	if f.description, st = e.textField(data, "description"); !st.Ok {
		return f, st
	}
	if f.eligibleProperty, st = e.idArray(data, "eligibleProperty", 0); !st.Ok {
		return f, st
	}
	if f.eligibleReference, st = e.idArray(data, "eligibleReference", 0); !st.Ok {
		return f, st
	}
	f.icon, _ = data["icon"].(string)
	return f, message.OK()
}

func (e *Entity) Validate(data map[string]any) message.Status {
	_, st := e.validate(e.Normalize(data))
	e.model.observe(e.itemType, st)
	if !st.Ok {
		e.valid = false
	}
	return st
}

func (e *Entity) Set(data map[string]any) message.Status {
	f, st := e.validate(e.Normalize(data))
	e.model.observe(e.itemType, st)
	if !st.Ok {
		e.valid = false
		return st
	}
	e.entityState = f
	e.valid = true
	return st
}

func (e *Entity) Get() map[string]any {
	if !e.valid {
		return nil
	}
	out := map[string]any{"itemType": string(e.itemType)}
	e.identifiable.snapshotInto(out)
	if e.eligibleProperty != nil {
		out["eligibleProperty"] = anySlice(e.eligibleProperty)
	}
	if e.eligibleReference != nil {
		out["eligibleReference"] = anySlice(e.eligibleReference)
	}
	if e.icon != "" {
		out["icon"] = e.icon
	}
	return out
}

func (e *Entity) GetJSONLD() map[string]any {
	snap := e.Get()
	if snap == nil {
		return nil
	}
	return e.model.externalize(snap, nil)
}

func (e *Entity) SetJSONLD(doc map[string]any) message.Status {
	return e.Set(e.model.internalize(doc))
}

package pig

import (
	"strings"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
)

// propertyState is the assignable state of a Property; validation stages a
// complete value before anything is committed.
type propertyState struct {
	identifiable
	datatype         string
	minCount         *int
	maxCount         *int
	maxLength        *int
	pattern          string
	minInclusive     *float64
	maxInclusive     *float64
	eligibleValue    []string
	defaultValue     any
	unit             string
	composedProperty []string
}

// Property is the ontology class constraining configurable property values:
// their datatype, cardinality, length, range, value list and unit.
type Property struct {
	core
	propertyState
}

func (p *Property) Datatype() string { return p.datatype }

func (p *Property) Unit() string { return p.unit }

// MinCount returns the minimum cardinality; ok is false when unconstrained.
func (p *Property) MinCount() (n int, ok bool) {
	if p.minCount == nil {
		return 0, false
	}
	return *p.minCount, true
}

// MaxCount returns the maximum cardinality; ok is false when unconstrained.
func (p *Property) MaxCount() (n int, ok bool) {
	if p.maxCount == nil {
		return 0, false
	}
	return *p.maxCount, true
}

// Normalize canonicalizes a candidate: texts to array form, a missing
// itemType filled in, the datatype prefix and catalog normalized.
func (p *Property) Normalize(data map[string]any) map[string]any {
	out := p.normalizeBase(data)
	if raw, ok := out["datatype"].(string); ok {
		out["datatype"] = p.normalizeDatatype(raw)
	}
	return out
}

// normalizeDatatype rewrites the legacy "xsd:" prefix to "xs:" and falls
// back to xs:string for datatypes outside the known catalog.
func (p *Property) normalizeDatatype(dt string) string {
	if rest, found := strings.CutPrefix(dt, "xsd:"); found {
		dt = "xs:" + rest
	}
	if _, known := knownDatatypes[dt]; !known {
		p.model.log.Warn("unknown datatype, treating as xs:string",
			"datatype", dt,
			"property", p.id)
		return "xs:string"
	}
	return dt
}

func (p *Property) validate(data map[string]any) (propertyState, message.Status) {
	var f propertyState
	if st := p.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := p.model.checkSchema(p.itemType, data); !st.Ok {
		return f, st
	}

	id, specializes, st := p.checkIdentity(data, p.id, p.specializes)
	if !st.Ok {
		return f, st
	}
	f.id, f.specializes = id, specializes

	if f.title, st = p.textField(data, "title"); !st.Ok {
		return f, st
	}
	if f.description, st = p.textField(data, "description"); !st.Ok {
		return f, st
	}
	if f.composedProperty, st = p.idArray(data, "composedProperty", 0); !st.Ok {
		return f, st
	}

	f.datatype, _ = data["datatype"].(string)
	f.minCount = intField(data, "minCount")
	f.maxCount = intField(data, "maxCount")
	f.maxLength = intField(data, "maxLength")
	f.pattern, _ = data["pattern"].(string)
	f.minInclusive = floatField(data, "minInclusive")
	f.maxInclusive = floatField(data, "maxInclusive")
	if raw, ok := data["eligibleValue"]; ok {
		f.eligibleValue = stringSlice(raw)
	}
	f.defaultValue = data["defaultValue"]
	f.unit, _ = data["unit"].(string)
	return f, message.OK()
}

// Validate checks a candidate without assigning it. A failure marks the
// item invalid, so Get returns nil until the next successful Set.
func (p *Property) Validate(data map[string]any) message.Status {
	_, st := p.validate(p.Normalize(data))
	p.model.observe(p.itemType, st)
	if !st.Ok {
		p.valid = false
	}
	return st
}

// Set replaces the item's state with the candidate, all or nothing.
func (p *Property) Set(data map[string]any) message.Status {
	f, st := p.validate(p.Normalize(data))
	p.model.observe(p.itemType, st)
	if !st.Ok {
		p.valid = false
		return st
	}
	p.propertyState = f
	p.valid = true
	return st
}

// Get returns a snapshot of the item's state with unset fields stripped,
// or nil while the item is invalid.
func (p *Property) Get() map[string]any {
	if !p.valid {
		return nil
	}
	out := map[string]any{"itemType": string(p.itemType)}
	p.identifiable.snapshotInto(out)
	if p.datatype != "" {
		out["datatype"] = p.datatype
	}
	if p.minCount != nil {
		out["minCount"] = float64(*p.minCount)
	}
	if p.maxCount != nil {
		out["maxCount"] = float64(*p.maxCount)
	}
	if p.maxLength != nil {
		out["maxLength"] = float64(*p.maxLength)
	}
	if p.pattern != "" {
		out["pattern"] = p.pattern
	}
	if p.minInclusive != nil {
		out["minInclusive"] = *p.minInclusive
	}
	if p.maxInclusive != nil {
		out["maxInclusive"] = *p.maxInclusive
	}
	if p.eligibleValue != nil {
		out["eligibleValue"] = anySlice(p.eligibleValue)
	}
	if p.defaultValue != nil {
		out["defaultValue"] = p.defaultValue
	}
	if p.unit != "" {
		out["unit"] = p.unit
	}
	if p.composedProperty != nil {
		out["composedProperty"] = anySlice(p.composedProperty)
	}
	return out
}

func (p *Property) GetJSONLD() map[string]any {
	snap := p.Get()
	if snap == nil {
		return nil
	}
	return p.model.externalize(snap, nil)
}

func (p *Property) SetJSONLD(doc map[string]any) message.Status {
	return p.Set(p.model.internalize(doc))
}

package pig

import (
	"fmt"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/jsonld"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
)

type aPropertyState struct {
	hasClass string
	value    string
	idRef    string
	composed []*AProperty
}

// AProperty is a configurable property value. It has no identity of its
// own: it is owned by the element carrying it and classed by a Property
// class. The value is either a literal string, a reference to an enumerated
// value (idRef), or a composition of sub-property values.
type AProperty struct {
	core
	aPropertyState
}

// HasClass returns the id of the configuring Property class.
func (p *AProperty) HasClass() string { return p.hasClass }

func (p *AProperty) Value() string { return p.value }

// IDRef returns the referenced eligible-value id, empty for literal values.
func (p *AProperty) IDRef() string { return p.idRef }

// Composed returns the owned sub-property values.
func (p *AProperty) Composed() []*AProperty { return p.composed }

// Normalize canonicalizes a candidate: a missing itemType is filled in and
// a primitive non-string value is stringified, matching the interchange
// form where all literal values travel as strings.
func (p *AProperty) Normalize(data map[string]any) map[string]any {
	out := p.normalizeBase(data)
	if raw, ok := out["value"]; ok {
		if _, isString := raw.(string); !isString {
			out["value"] = fmt.Sprint(raw)
		}
	}
	return out
}

func (p *AProperty) validate(data map[string]any) (aPropertyState, message.Status) {
	var f aPropertyState
	if st := p.checkTypeTag(data); !st.Ok {
		return f, st
	}
	if st := p.model.checkSchema(p.itemType, data); !st.Ok {
		return f, st
	}

	var st message.Status
	if f.hasClass, st = p.classID(data, "hasClass"); !st.Ok {
		return f, st
	}
	f.value, _ = data["value"].(string)
	if f.idRef, st = p.classID(data, "idRef"); !st.Ok {
		return f, st
	}

	if raw, ok := data["aComposedProperty"]; ok {
		entries, isArray := raw.([]any)
		if !isArray {
			return f, p.status(message.StatusNotAnArray, "aComposedProperty")
		}
		for _, entry := range entries {
			elem, isObject := entry.(map[string]any)
			if !isObject {
				return f, p.status(message.StatusInvalidArrayEntry, "aComposedProperty", fmt.Sprint(entry))
			}
			child := p.model.NewAProperty()
			if st := child.Set(elem); !st.Ok {
				return f, st
			}
			f.composed = append(f.composed, child)
		}
	}
	return f, message.OK()
}

func (p *AProperty) Validate(data map[string]any) message.Status {
	_, st := p.validate(p.Normalize(data))
	p.model.observe(p.itemType, st)
	if !st.Ok {
		p.valid = false
	}
	return st
}

func (p *AProperty) Set(data map[string]any) message.Status {
	f, st := p.validate(p.Normalize(data))
	p.model.observe(p.itemType, st)
	if !st.Ok {
		p.valid = false
		return st
	}
	p.aPropertyState = f
	p.valid = true
	return st
}

// record returns the flat transform record for this value, the shape the
// jsonld collector and expander work with.
func (p *AProperty) record() map[string]any {
	rec := map[string]any{"itemType": string(p.itemType)}
	if p.hasClass != "" {
		rec["hasClass"] = p.hasClass
	}
	if p.value != "" {
		rec["value"] = p.value
	}
	if p.idRef != "" {
		rec["idRef"] = p.idRef
	}
	if len(p.composed) > 0 {
		composed := make([]any, len(p.composed))
		for i, c := range p.composed {
			composed[i] = c.record()
		}
		rec["aComposedProperty"] = composed
	}
	return rec
}

func (p *AProperty) Get() map[string]any {
	if !p.valid {
		return nil
	}
	return p.record()
}

// GetJSONLD renders the value as a standalone JSON-LD value object. When
// owned by an element the value travels inside the owner's document
// instead, grouped under its class key.
func (p *AProperty) GetJSONLD() map[string]any {
	if !p.valid {
		return nil
	}
	entry, _ := jsonld.ValueObjects([]map[string]any{p.record()})[0].(map[string]any)
	out, _ := jsonld.MakeIDObjects(entry, jsonld.Options{Mutate: true, IDKeys: p.model.idKeys}).(map[string]any)
	if p.model.context != "" {
		out[jsonld.KeywordContext] = p.model.context
	}
	p.model.observeTransform("to_jsonld")
	return out
}

func (p *AProperty) SetJSONLD(doc map[string]any) message.Status {
	obj := p.model.internalize(doc)
	records := jsonld.Records([]any{obj})
	if len(records) != 1 {
		return p.status(message.StatusSchemaViolation, string(p.itemType), "not a value object")
	}
	return p.Set(records[0])
}

package jsonld

// JSON-LD keywords used by the PIG wire format.
const (
	KeywordID       = "@id"
	KeywordType     = "@type"
	KeywordValue    = "@value"
	KeywordLanguage = "@language"
	KeywordContext  = "@context"
)

// ItemTypePredicate is the qualified predicate tagging the item type of a
// configurable value object.
const ItemTypePredicate = "pig:itemType"

// ComposedPredicate is the qualified predicate holding the composed
// sub-properties of a configurable property value object.
const ComposedPredicate = "pig:aComposedProperty"

// SourcePredicate and TargetPredicate are the fixed predicates carrying a
// relationship instance's endpoint references. Unlike configurable
// properties they are not keyed by the configuring class: both endpoints
// hold aReference values, so class-keyed grouping could not tell sources
// from targets apart.
const (
	SourcePredicate = "pig:hasSource"
	TargetPredicate = "pig:hasTarget"
)

// DefaultIDKeys are the object keys whose singleton string values denote an
// id object, in internal and JSON-LD form.
var DefaultIDKeys = []string{"id", KeywordID}

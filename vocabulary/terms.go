package vocabulary

// TermMap is a one-directional renaming table between two vocabularies.
// Tables returned by this package are copies; callers may extend them
// without affecting the canonical tables.
type TermMap map[string]string

// jsonldTerms maps internal attribute names to their JSON-LD form: the
// JSON-LD keywords for the identity/value positions and namespace-qualified
// predicates for everything else.
//
// The owned collection fields hasProperty, hasTarget and hasSource are
// absent on purpose: in JSON-LD they are not fixed predicates but dynamic
// keys equal to the configuring class id (see the jsonld package), and the
// nested idRef field surfaces as "@id" through the same transform.
var jsonldTerms = TermMap{
	// JSON-LD keywords
	"id":       "@id",
	"hasClass": "@type",
	"value":    "@value",
	"lang":     "@language",
	"context":  "@context",

	// Dublin Core
	"title":       "dcterms:title",
	"description": "dcterms:description",
	"modified":    "dcterms:modified",
	"creator":     "dcterms:creator",

	// SHACL constraint predicates
	"datatype":     "sh:datatype",
	"minCount":     "sh:minCount",
	"maxCount":     "sh:maxCount",
	"maxLength":    "sh:maxLength",
	"pattern":      "sh:pattern",
	"minInclusive": "sh:minInclusive",
	"maxInclusive": "sh:maxInclusive",
	"defaultValue": "sh:defaultValue",

	// PIG ontology predicates
	"itemType":          "pig:itemType",
	"specializes":       "pig:specializes",
	"eligibleProperty":  "pig:eligibleProperty",
	"eligibleReference": "pig:eligibleReference",
	"eligibleSource":    "pig:eligibleSource",
	"eligibleTarget":    "pig:eligibleTarget",
	"eligibleValue":     "pig:eligibleValue",
	"composedProperty":  "pig:composedProperty",
	"aComposedProperty": "pig:aComposedProperty",
	"icon":              "pig:icon",
	"unit":              "pig:unit",
	"revision":          "pig:revision",
	"priorRevision":     "pig:priorRevision",
}

// reqifTerms maps internal attribute names to ReqIF XML tags. The table is
// partial: only the attributes ReqIF actually carries are mapped.
var reqifTerms = TermMap{
	"id":           "IDENTIFIER",
	"title":        "LONG-NAME",
	"description":  "DESC",
	"modified":     "LAST-CHANGE",
	"maxLength":    "MAX-LENGTH",
	"minInclusive": "MIN",
	"maxInclusive": "MAX",
}

func invert(m TermMap) TermMap {
	out := make(TermMap, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func clone(m TermMap) TermMap {
	out := make(TermMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var (
	internalFromJSONLD = invert(jsonldTerms)
	internalFromReqIF  = invert(reqifTerms)
)

// ToJSONLD returns the internal-attribute-name → JSON-LD-term table.
func ToJSONLD() TermMap { return clone(jsonldTerms) }

// FromJSONLD returns the JSON-LD-term → internal-attribute-name table,
// the exact inverse of ToJSONLD.
func FromJSONLD() TermMap { return clone(internalFromJSONLD) }

// ToReqIF returns the internal-attribute-name → ReqIF-XML-tag table.
func ToReqIF() TermMap { return clone(reqifTerms) }

// FromReqIF returns the ReqIF-XML-tag → internal-attribute-name table.
func FromReqIF() TermMap { return clone(internalFromReqIF) }

// MapTerm applies a renaming table to a single term, returning the input
// unchanged when no mapping exists.
func MapTerm(term string, m TermMap) string {
	if mapped, ok := m[term]; ok {
		return mapped
	}
	return term
}

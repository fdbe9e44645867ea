package pig

// ItemType tags every item in the graph. The four capitalized tags are
// ontology classes; the four lowercase "a"-prefixed tags are their
// instances.
type ItemType string

const (
	TypeProperty      ItemType = "pig:Property"
	TypeReference     ItemType = "pig:Reference"
	TypeEntity        ItemType = "pig:Entity"
	TypeRelationship  ItemType = "pig:Relationship"
	TypeAProperty     ItemType = "pig:aProperty"
	TypeAReference    ItemType = "pig:aReference"
	TypeAnEntity      ItemType = "pig:anEntity"
	TypeARelationship ItemType = "pig:aRelationship"
)

func (t ItemType) String() string { return string(t) }

// IsClass reports whether the tag names an ontology class.
func (t ItemType) IsClass() bool {
	switch t {
	case TypeProperty, TypeReference, TypeEntity, TypeRelationship:
		return true
	}
	return false
}

// IsInstance reports whether the tag names an instance type.
func (t ItemType) IsInstance() bool {
	switch t {
	case TypeAProperty, TypeAReference, TypeAnEntity, TypeARelationship:
		return true
	}
	return false
}

// IsValid reports whether the tag is one of the eight metamodel types.
func (t ItemType) IsValid() bool {
	return t.IsClass() || t.IsInstance()
}

// knownDatatypes are the XSD datatypes a Property class may constrain its
// values to. Anything else is normalized to xs:string with a warning.
var knownDatatypes = map[string]struct{}{
	"xs:string":   {},
	"xs:boolean":  {},
	"xs:integer":  {},
	"xs:decimal":  {},
	"xs:double":   {},
	"xs:dateTime": {},
	"xs:date":     {},
	"xs:duration": {},
	"xs:anyURI":   {},
}

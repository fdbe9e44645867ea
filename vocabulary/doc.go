// Package vocabulary provides the namespace registry, the id/term grammar,
// and the static bidirectional tag-renaming tables of the Product Information
// Graph.
//
// # Identifiers
//
// Every PIG identifier (type TPigId in the model) is an opaque string that is
// either a namespace-qualified term ("pig:Entity", "dcterms:title") whose
// prefix is registered with this package, or a well-formed absolute IRI. Any
// string failing both grammars is not a usable id or reference.
//
// # Vocabularies
//
// Two canonical, mutually inverse renaming tables exist:
//
//   - internal attribute name ↔ JSON-LD predicate
//     ("title" ↔ "dcterms:title", "minCount" ↔ "sh:minCount", "id" ↔ "@id")
//   - internal attribute name ↔ ReqIF XML tag
//     ("id" ↔ "IDENTIFIER", "title" ↔ "LONG-NAME")
//
// RenameTags applies a table to every object key of a JSON tree at every
// nesting depth; MapTerm applies the same lookup to a single value. Keys
// without a table entry pass through unchanged. When renaming would overwrite
// an existing key at the same level, the renamed value wins and the event is
// logged as a warning (last-write-wins, intentional).
//
// # Namespace Registration
//
// The registry ships with the prefixes the PIG ontology relies on (pig,
// dcterms, sh, xs, rdf, rdfs, owl). Additional prefixes may be registered at
// startup, typically from configuration:
//
//	vocabulary.RegisterNamespace("req", "https://example.org/requirements#")
//
// Registration is thread-safe; lookups take a read lock only.
package vocabulary

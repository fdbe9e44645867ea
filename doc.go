// Package cascade is the reference implementation of the Product Information
// Graph (PIG) data model and its JSON-LD interchange format.
//
// A Product Information Graph is a typed graph of classes (Property,
// Reference, Entity, Relationship) and their instances (AProperty,
// AReference, AnEntity, ARelationship). The model is interchangeable with a
// JSON-LD serialization and, partially, with ReqIF XML.
//
// # Architecture
//
// The repository is organized by concern, leaf to root:
//
//	┌─────────────────────────────────────┐
//	│           pig                       │  Item hierarchy, lifecycle,
//	│  (Model, items, JSON-LD round trip) │  validation glue
//	└─────────────────────────────────────┘
//	           ↓ builds on
//	┌─────────────────────────────────────┐
//	│   vocabulary / jsonld / schema      │  Term tables, id grammar,
//	│                                     │  id-object packing, collector,
//	│                                     │  JSON-Schema validation
//	└─────────────────────────────────────┘
//	           ↓ builds on
//	┌─────────────────────────────────────┐
//	│   pkg/jsontree / message / errors   │  Tree traversal, localized
//	│                                     │  statuses, error taxonomy
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - pig: the Item class hierarchy (classes and instances) with the
//     normalize → validate → set → get lifecycle and the bidirectional
//     JSON-LD transform.
//   - vocabulary: namespace-prefix registry, the id/term grammar, and the
//     static bidirectional tag-renaming tables between internal attribute
//     names and JSON-LD predicates (plus the ReqIF XML tag table).
//   - jsonld: JSON-LD keyword constants, id-object packing/unpacking, and
//     the configurable-property collector/expander.
//   - schema: per-class JSON-Schema validation behind a narrow Validator
//     interface.
//   - message: the localized status/response catalog with numeric code
//     bands per error concern.
//   - config: file-based configuration (language, namespaces, id keys).
//   - metric: prometheus collectors for transform and validation activity.
//   - reqif: the (not yet implemented) ReqIF importer surface.
//   - pkg/jsontree: depth-first iteration and mapping over untyped JSON
//     trees.
//   - pkg/timestamp: tolerant timestamp parsing with RFC3339 canonical
//     form.
//
// # Data Flow
//
// Ingesting JSON-LD:
//
//	raw JSON-LD object
//	  → vocabulary.RenameTags (predicate → internal attribute names)
//	  → jsonld.ReplaceIDObjects (unpack {"@id": ...} to bare strings)
//	  → jsonld.Collector.Collect (ontology-keyed entries → flat arrays)
//	  → item.Set (normalize, validate, assign)
//
// Emitting JSON-LD reverses each step. Both directions are pure, synchronous
// tree transforms; every transform defaults to copy-on-write with an explicit
// mutate-in-place opt-in for large documents.
//
// # Error Handling
//
// Data-quality problems are reported as message.Status values with localized
// text and numeric codes segmented by concern; they are never returned as Go
// errors. Go errors and panics are reserved for programming mistakes and
// external-collaborator failures (see the errors package).
package cascade

// Package jsonld implements the JSON-LD-specific tree transforms of the PIG
// interchange format: id-object packing and unpacking, and the collection
// and expansion of configurable properties and references.
//
// # Id Objects
//
// JSON-LD expresses every reference as an object with an "@id" key; the
// internal model keeps references as bare strings. MakeIDObjects packs
// ("pig:E-1" → {"@id": "pig:E-1"}) and ReplaceIDObjects unpacks. Both are
// idempotent, default to copy-on-write and support an explicit
// mutate-in-place mode.
//
// # Configurable Properties and References
//
// A dynamic instance's configured values are serialized in JSON-LD under
// keys equal to the configuring class id — a namespace-qualified term — each
// holding an array of value objects tagged with "pig:itemType". The internal
// model wants flat arrays (hasProperty, hasTarget, hasSource) whose elements
// carry their class as an explicit hasClass field. Collector.Collect pulls
// the ontology-keyed entries into such flat records; Expand regroups records
// under their per-class keys. The set of fixed metamodel keys a Collector
// must never treat as configurable is resolved once at construction.
package jsonld

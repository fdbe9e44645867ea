// Package pig implements the Product Information Graph item hierarchy: the
// classes Property, Reference, Entity and Relationship, their instances
// AProperty, AReference, AnEntity and ARelationship, and the bidirectional
// JSON-LD transform over all of them.
//
// # Lifecycle
//
// Items are created through a Model, which carries the catalog language,
// the schema validator, logger and metrics — there is no ambient global
// state. A fresh item is empty; data enters exclusively through Set (or
// SetJSONLD), which runs the fixed pipeline
//
//	normalize → validate → assign
//
// Normalization tolerates input variation: bare strings become
// multi-language text arrays, "xsd:" datatypes become "xs:", a missing
// modified timestamp is synthesized, a missing revision gets a fresh UUID.
// Validation runs the external schema validator first and then the local
// guards (id grammar, immutability, array cardinality, the multi-language
// text rule), short-circuiting on the first failure. Only a fully valid
// candidate is assigned; a failed Set leaves every field untouched.
//
// All data-quality failures are returned as message.Status values — never
// as Go errors and never by panicking. Panics are reserved for programming
// errors such as constructing an unknown item type.
//
// Get returns a plain snapshot with unset fields stripped, or nil while the
// item's last validation failed. GetJSONLD additionally applies tag
// renaming, configurable-property expansion and id-object packing;
// SetJSONLD reverses those steps before Set. For every item that was
// ingested successfully, SetJSONLD(GetJSONLD()) reproduces the same state.
//
// # Ownership
//
// AProperty and AReference values held in hasProperty, hasSource and
// hasTarget are owned by their parent instance: they have no id of their
// own and live and die with the parent. All other references between items
// are held by id only; resolving them is the whole-graph consistency
// check's concern, outside this package.
package pig

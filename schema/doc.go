// Package schema validates item candidates against per-class JSON Schemas.
//
// The model layer consumes validation through the narrow Validator
// interface, so the engine stays an external collaborator: a validation
// failure is a data result (valid=false plus details), while a failure of
// the engine itself — a broken schema, a panicking loader — surfaces as a Go
// error and is mapped to its own status code by the caller.
//
// The default implementation compiles the schemas embedded under schemas/
// once at construction, using github.com/xeipuuv/gojsonschema. Schemas
// deliberately check structure only (types and required presence); value
// rules with dedicated status codes — id grammar, array cardinality, the
// multi-language text rule — are enforced by the model layer's local guards
// so their specific codes are reported.
package schema

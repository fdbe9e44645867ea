// Package errors provides the error taxonomy of the PIG reference
// implementation: classification of failures into programming errors,
// external-collaborator errors and plain data problems, plus helpers for
// consistent wrapping.
//
// The model layer itself never returns Go errors for bad data — malformed
// ids, wrong array shapes and schema violations travel as message.Status
// values so callers can pattern-match on numeric code bands. Go errors (and,
// for constructor misuse, panics) are reserved for bugs in the calling code
// and for failures of external collaborators such as the JSON-Schema engine.
//
// Usage:
//
//	if err := imp.Import(r); err != nil {
//	    if errors.IsProgramming(err) {
//	        panic(err) // caller bug, never user data
//	    }
//	    ...
//	}
package errors

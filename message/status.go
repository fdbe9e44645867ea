package message

import "golang.org/x/text/language"

// Status codes used by the model layer. Code 0 and the 2xx range are
// success; everything in the 900 band is a data or collaborator error.
const (
	// StatusOK is success with no message text.
	StatusOK = 0

	// StatusFound is success with a payload (used by CreateResponse).
	StatusFound = 200

	// 900–909: JSON-Schema validation.

	// StatusSchemaViolation reports that the external schema validator
	// rejected the candidate. Args: item type, validator details.
	StatusSchemaViolation = 901
	// StatusSchemaEngineError reports that the schema validation engine
	// itself failed. Args: underlying error text.
	StatusSchemaEngineError = 902

	// 910–919: identifiers and immutability.

	// StatusInvalidID reports a string that is neither a registered
	// qualified term nor a well-formed IRI. Args: the offending string.
	StatusInvalidID = 911
	// StatusImmutableID reports an attempt to re-set an item with a
	// different id. Args: current id, attempted id.
	StatusImmutableID = 912
	// StatusImmutableSpecializes reports an attempt to re-set an item with
	// a different specializes reference. Args: current, attempted.
	StatusImmutableSpecializes = 913
	// StatusWrongItemType reports input whose itemType does not match the
	// item being set. Args: expected, supplied.
	StatusWrongItemType = 914

	// 920–929: array shapes.

	// StatusNotAnArray reports a field that must be an array of id strings
	// but is not. Args: field name.
	StatusNotAnArray = 921
	// StatusArrayBelowMinCount reports an array shorter than its minimum
	// cardinality. Args: field name, minimum.
	StatusArrayBelowMinCount = 922
	// StatusInvalidArrayEntry reports an array entry that is not a valid
	// id string. Args: field name, the offending entry.
	StatusInvalidArrayEntry = 923

	// 930–939: multi-language text.

	// StatusInvalidText reports a malformed multi-language text value.
	// Args: field name.
	StatusInvalidText = 931
	// StatusTextMissingLanguage reports a multi-language text with more
	// than one entry where an entry lacks a language tag. Args: field name.
	StatusTextMissingLanguage = 932

	// 940–949: package-level constraints (reserved for the whole-graph
	// consistency check outside this core).

	// StatusConstraintViolation reports a violated package-level
	// constraint. Args: description.
	StatusConstraintViolation = 941

	// 950–959: importers and transforms.

	// StatusNotImplemented reports a surface that is declared but not yet
	// implemented. Args: surface name.
	StatusNotImplemented = 951
)

// Status is the result value for all data-quality checks. It is a value
// type: returning one never mutates the item it describes.
type Status struct {
	// Status is the numeric code, 0 for success.
	Status int `json:"status"`
	// StatusText is the localized message, empty for code 0.
	StatusText string `json:"statusText,omitempty"`
	// Ok is derived from the code: true for 0 and the 2xx band.
	Ok bool `json:"ok"`
}

// Response is a Status carrying a payload, for operations that return data.
type Response struct {
	Status
	// Response is the payload.
	Response any `json:"response,omitempty"`
	// ResponseType names the payload kind (e.g. "application/ld+json").
	ResponseType string `json:"responseType,omitempty"`
}

// okFor derives the ok flag from a status code.
func okFor(code int) bool {
	return code == 0 || (code >= 200 && code < 300)
}

// CreateStatus builds a localized Status for a code. The language is an
// explicit parameter; unsupported languages fall back to English. Positional
// args fill the code's message template.
func CreateStatus(code int, lang language.Tag, args ...any) Status {
	return Status{
		Status:     code,
		StatusText: text(code, lang, args...),
		Ok:         okFor(code),
	}
}

// CreateResponse builds a localized Response carrying a payload.
func CreateResponse(code int, lang language.Tag, payload any, payloadKind string, args ...any) Response {
	return Response{
		Status:       CreateStatus(code, lang, args...),
		Response:     payload,
		ResponseType: payloadKind,
	}
}

// OK is the canonical success status.
func OK() Status {
	return Status{Status: StatusOK, Ok: true}
}

// Package message provides the localized status and response catalog of the
// PIG reference implementation.
//
// Every data-quality problem detected by the model layer is reported as a
// Status value: a numeric code, a localized text and a derived ok flag.
// Codes are segmented into numeric bands by concern so callers can
// pattern-match on error category:
//
//	  0        success, no message
//	200–299    success with payload (Response)
//	900–909    JSON-Schema validation
//	910–919    identifier and immutability violations
//	920–929    array shape violations
//	930–939    multi-language text violations
//	940–949    package-level constraints
//	950–959    importer and transform failures
//
// # Localization
//
// Texts exist in four languages (English, German, French, Spanish). The
// requested language is an explicit parameter on every call — there is no
// process-wide current-language state. Unsupported languages and codes
// without a template in the requested language fall back to English via
// golang.org/x/text language matching.
//
//	st := message.CreateStatus(message.StatusInvalidID, language.German, "x y")
//	// st.Status == 911, st.Ok == false, st.StatusText localized
package message

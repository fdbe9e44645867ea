package vocabulary

import (
	"regexp"
	"strings"
)

// termPattern matches a namespace-qualified term: a prefix, a colon, and a
// local name. Whether the prefix is usable is decided against the registry,
// not by the pattern.
var termPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*):([A-Za-z_][A-Za-z0-9_.-]*)$`)

// iriPattern matches absolute IRIs in hierarchical form (scheme://...) and
// URNs. Plain "prefix:name" strings deliberately do not match, so that
// qualified terms are governed by prefix registration rather than accepted
// as opaque URIs.
var iriPattern = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9+.-]*://\S+|urn:\S+)$`)

// IsTerm reports whether s is a namespace-qualified term with a registered
// prefix ("pig:Entity", "dcterms:title").
func IsTerm(s string) bool {
	m := termPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return IsRegisteredPrefix(m[1])
}

// IsIRI reports whether s is a well-formed absolute IRI ("https://..." or
// "urn:...").
func IsIRI(s string) bool {
	return iriPattern.MatchString(s)
}

// ValidID reports whether s is a usable PIG identifier or reference: a
// registered namespace-qualified term or a well-formed IRI. The two grammars
// are mutually exclusive.
func ValidID(s string) bool {
	return IsTerm(s) || IsIRI(s)
}

// SplitTerm splits a qualified term into prefix and local name. ok is false
// if s is not in prefix:localName form or the prefix is not registered.
func SplitTerm(s string) (prefix, local string, ok bool) {
	m := termPattern.FindStringSubmatch(s)
	if m == nil || !IsRegisteredPrefix(m[1]) {
		return "", "", false
	}
	return m[1], m[2], true
}

// ExpandTerm resolves a qualified term to its full IRI using the registered
// namespaces. IRIs pass through unchanged; anything else returns ok=false.
func ExpandTerm(s string) (string, bool) {
	if IsIRI(s) {
		return s, true
	}
	prefix, local, ok := SplitTerm(s)
	if !ok {
		return "", false
	}
	iri, _ := NamespaceIRI(prefix)
	if !strings.HasSuffix(iri, "#") && !strings.HasSuffix(iri, "/") {
		iri += "#"
	}
	return iri + local, true
}

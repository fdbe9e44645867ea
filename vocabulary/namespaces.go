package vocabulary

import "sync"

// Namespace IRIs of the vocabularies the PIG metamodel draws from.
const (
	// PigNamespace is the base IRI of the PIG ontology itself.
	PigNamespace = "https://product-information-graph.org/ns/pig#"

	// DctermsNamespace holds Dublin Core metadata terms (title, description,
	// modified, creator).
	DctermsNamespace = "http://purl.org/dc/terms/"

	// ShaclNamespace holds SHACL constraint predicates (minCount, pattern).
	ShaclNamespace = "http://www.w3.org/ns/shacl#"

	// XsNamespace holds XML Schema datatypes (xs:string, xs:dateTime).
	XsNamespace = "http://www.w3.org/2001/XMLSchema#"

	// RdfNamespace is the RDF core vocabulary.
	RdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RdfsNamespace is the RDF Schema vocabulary.
	RdfsNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OwlNamespace is the Web Ontology Language vocabulary.
	OwlNamespace = "http://www.w3.org/2002/07/owl#"
)

var (
	namespaceMu sync.RWMutex
	namespaces  = defaultNamespaces()
)

func defaultNamespaces() map[string]string {
	return map[string]string{
		"pig":     PigNamespace,
		"dcterms": DctermsNamespace,
		"sh":      ShaclNamespace,
		"xs":      XsNamespace,
		"rdf":     RdfNamespace,
		"rdfs":    RdfsNamespace,
		"owl":     OwlNamespace,
	}
}

// RegisterNamespace registers a prefix with its namespace IRI. Registering an
// existing prefix overwrites it, which enables project-specific overrides.
// This is thread-safe and intended for startup/configuration time.
func RegisterNamespace(prefix, iri string) {
	namespaceMu.Lock()
	defer namespaceMu.Unlock()
	namespaces[prefix] = iri
}

// NamespaceIRI returns the IRI registered for a prefix.
func NamespaceIRI(prefix string) (string, bool) {
	namespaceMu.RLock()
	defer namespaceMu.RUnlock()
	iri, ok := namespaces[prefix]
	return iri, ok
}

// IsRegisteredPrefix reports whether a namespace prefix is known.
func IsRegisteredPrefix(prefix string) bool {
	namespaceMu.RLock()
	defer namespaceMu.RUnlock()
	_, ok := namespaces[prefix]
	return ok
}

// RegisteredPrefixes returns a snapshot of all registered prefixes.
func RegisteredPrefixes() []string {
	namespaceMu.RLock()
	defer namespaceMu.RUnlock()
	out := make([]string, 0, len(namespaces))
	for p := range namespaces {
		out = append(out, p)
	}
	return out
}

// ResetNamespaces restores the default prefix set. It exists for tests and
// for re-loading configuration.
func ResetNamespaces() {
	namespaceMu.Lock()
	defer namespaceMu.Unlock()
	namespaces = defaultNamespaces()
}

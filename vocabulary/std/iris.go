// Package std defines IRI constants from standard W3C and DOAP/FOAF
// vocabularies that LV2 bundle metadata relies on.
package std

// Namespace base IRIs.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	DOAPNamespace = "http://usefulinc.com/ns/doap#"
	FOAFNamespace = "http://xmlns.com/foaf/0.1/"
)

// RDF and RDFS predicates.
const (
	RDFType  = RDFNamespace + "type"
	RDFValue = RDFNamespace + "value"

	RDFSLabel   = RDFSNamespace + "label"
	RDFSComment = RDFSNamespace + "comment"

	// RDFSSeeAlso links a manifest entry to the document holding the
	// entity's full description.
	RDFSSeeAlso = RDFSNamespace + "seeAlso"
)

// DOAP predicates used for plugin and project descriptions.
const (
	// DOAPName is the required human-readable plugin name.
	DOAPName = DOAPNamespace + "name"

	DOAPShortDesc  = DOAPNamespace + "shortdesc"
	DOAPLicense    = DOAPNamespace + "license"
	DOAPMaintainer = DOAPNamespace + "maintainer"
	DOAPDeveloper  = DOAPNamespace + "developer"
	DOAPHomepage   = DOAPNamespace + "homepage"
	ClassProject   = DOAPNamespace + "Project"
)

// FOAF predicates used inside maintainer descriptions.
const (
	FOAFName     = FOAFNamespace + "name"
	FOAFHomepage = FOAFNamespace + "homepage"
	FOAFMbox     = FOAFNamespace + "mbox"
)

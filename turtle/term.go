// Package turtle parses and writes the Turtle subset used by LV2 bundle
// metadata. The parser has no knowledge of the LV2 vocabulary; it produces
// flat statements that higher layers index and interpret.
package turtle

import (
	"fmt"
	"strings"
)

// Well-known datatype IRIs the parser assigns to literal shorthand forms.
const (
	XSDString  = "http://www.w3.org/2001/XMLSchema#string"
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble  = "http://www.w3.org/2001/XMLSchema#double"
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"

	// RDFLangString is the datatype implied by a language tag.
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

	// RDFType is the predicate the "a" keyword expands to.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// Term is a node in an RDF statement: an IRI, a blank node, or a literal.
// All implementations are comparable values, so terms can be compared with
// == and used as map keys.
type Term interface {
	fmt.Stringer
	isTerm()
}

// IRI is an absolute IRI reference.
type IRI string

func (IRI) isTerm() {}

// String renders the IRI in N-Triples form.
func (i IRI) String() string { return "<" + string(i) + ">" }

// BlankNode identifies an anonymous node. The label carries no meaning
// outside the document (or graph namespace) that introduced it.
type BlankNode string

func (BlankNode) isTerm() {}

// String renders the blank node in Turtle form.
func (b BlankNode) String() string { return "_:" + string(b) }

// Literal is a value with a datatype and an optional language tag. A
// language-tagged literal always has datatype rdf:langString; an untagged
// literal without an explicit datatype has xsd:string.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

func (Literal) isTerm() {}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value, Datatype: XSDString}
}

// NewLangLiteral returns a language-tagged literal. Language tags are
// case-insensitive; they are lowercased for stable comparison.
func NewLangLiteral(value, lang string) Literal {
	return Literal{Value: value, Datatype: RDFLangString, Lang: strings.ToLower(lang)}
}

// NewTypedLiteral returns a literal with an explicit datatype.
func NewTypedLiteral(value string, datatype IRI) Literal {
	if datatype == "" {
		datatype = XSDString
	}
	return Literal{Value: value, Datatype: datatype}
}

// String renders the literal in N-Triples form.
func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Value) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "" && l.Datatype != XSDString:
		return s + "^^" + l.Datatype.String()
	default:
		return s
	}
}

// Statement is a single subject-predicate-object triple. Subjects are IRIs
// or blank nodes; objects may additionally be literals.
type Statement struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// String renders the statement in N-Triples form, without the final dot.
func (s Statement) String() string {
	return s.Subject.String() + " " + s.Predicate.String() + " " + s.Object.String()
}

func escapeLiteral(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

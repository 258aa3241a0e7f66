package turtle

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Parse reads one Turtle document. Relative IRI references are resolved
// against base (which an @base directive inside the document may override).
// On malformed input it returns a *SyntaxError describing the first failure.
func Parse(name string, data []byte, base string) (*Document, error) {
	p := &parser{
		lx: newLexer(name, string(data)),
		doc: &Document{
			Name:     name,
			Base:     base,
			Prefixes: make(map[string]string),
		},
	}
	p.setBase(base)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type parser struct {
	lx       *lexer
	doc      *Document
	tok      token
	baseURL  *url.URL
	blankSeq int
}

func (p *parser) setBase(base string) {
	p.doc.Base = base
	if u, err := url.Parse(base); err == nil && u.IsAbs() {
		p.baseURL = u
	} else {
		p.baseURL = nil
	}
}

func (p *parser) next() *SyntaxError {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) syntaxErr(expected string) *SyntaxError {
	got := p.tok.kind.String()
	if p.tok.text != "" {
		got = fmt.Sprintf("%q", p.tok.text)
	}
	return &SyntaxError{
		Document: p.doc.Name,
		Line:     p.tok.line,
		Col:      p.tok.col,
		Offset:   p.tok.offset,
		Expected: expected,
		Got:      got,
	}
}

func (p *parser) expect(kind tokenKind, expected string) *SyntaxError {
	if p.tok.kind != kind {
		return p.syntaxErr(expected)
	}
	return nil
}

func (p *parser) run() *SyntaxError {
	if err := p.next(); err != nil {
		return err
	}
	for p.tok.kind != tokEOF {
		switch p.tok.kind {
		case tokPrefixDirective:
			if err := p.parsePrefix(); err != nil {
				return err
			}
		case tokBaseDirective:
			if err := p.parseBase(); err != nil {
				return err
			}
		default:
			if err := p.parseTriples(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *parser) parsePrefix() *SyntaxError {
	if err := p.next(); err != nil {
		return err
	}
	if err := p.expect(tokPrefixedName, "prefix label"); err != nil {
		return err
	}
	label, ok := strings.CutSuffix(p.tok.text, ":")
	if !ok || strings.Contains(label, ":") {
		return p.syntaxErr("prefix label ending in ':'")
	}
	if err := p.next(); err != nil {
		return err
	}
	if err := p.expect(tokIRIRef, "namespace IRI"); err != nil {
		return err
	}
	p.doc.Prefixes[label] = string(p.resolveIRI(p.tok.text))
	if err := p.next(); err != nil {
		return err
	}
	// The '@prefix' form requires a terminating dot; the SPARQL-style
	// 'PREFIX' form forbids it. Accepting an optional dot covers both.
	if p.tok.kind == tokDot {
		return p.next()
	}
	return nil
}

func (p *parser) parseBase() *SyntaxError {
	if err := p.next(); err != nil {
		return err
	}
	if err := p.expect(tokIRIRef, "base IRI"); err != nil {
		return err
	}
	p.setBase(string(p.resolveIRI(p.tok.text)))
	if err := p.next(); err != nil {
		return err
	}
	if p.tok.kind == tokDot {
		return p.next()
	}
	return nil
}

func (p *parser) parseTriples() *SyntaxError {
	var subject Term
	switch p.tok.kind {
	case tokIRIRef:
		subject = p.resolveIRI(p.tok.text)
		if err := p.next(); err != nil {
			return err
		}
	case tokPrefixedName:
		iri, err := p.expandPrefixed(p.tok.text)
		if err != nil {
			return err
		}
		subject = iri
		if err := p.next(); err != nil {
			return err
		}
	case tokBlankLabel:
		subject = BlankNode(p.tok.text)
		if err := p.next(); err != nil {
			return err
		}
	case tokOpenBracket:
		node, err := p.parseBlankPropertyList()
		if err != nil {
			return err
		}
		subject = node
		// "[ ... ] ." with no further predicates is a complete statement.
		if p.tok.kind == tokDot {
			return p.next()
		}
	default:
		return p.syntaxErr("subject (IRI, prefixed name, or blank node)")
	}

	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	if err := p.expect(tokDot, "'.' terminating statement"); err != nil {
		return err
	}
	return p.next()
}

func (p *parser) parsePredicateObjectList(subject Term) *SyntaxError {
	for {
		pred, err := p.parseVerb()
		if err != nil {
			return err
		}
		for {
			obj, err := p.parseObject()
			if err != nil {
				return err
			}
			p.doc.Statements = append(p.doc.Statements, Statement{Subject: subject, Predicate: pred, Object: obj})
			if p.tok.kind != tokComma {
				break
			}
			if err := p.next(); err != nil {
				return err
			}
		}
		if p.tok.kind != tokSemicolon {
			return nil
		}
		if err := p.next(); err != nil {
			return err
		}
		// Trailing semicolons before '.' or ']' are legal.
		if p.tok.kind == tokDot || p.tok.kind == tokCloseBracket {
			return nil
		}
	}
}

func (p *parser) parseVerb() (IRI, *SyntaxError) {
	switch p.tok.kind {
	case tokIRIRef:
		iri := p.resolveIRI(p.tok.text)
		return iri, p.next()
	case tokPrefixedName:
		if p.tok.text == "a" {
			return RDFType, p.next()
		}
		iri, err := p.expandPrefixed(p.tok.text)
		if err != nil {
			return "", err
		}
		return iri, p.next()
	default:
		return "", p.syntaxErr("predicate (IRI or 'a')")
	}
}

func (p *parser) parseObject() (Term, *SyntaxError) {
	switch p.tok.kind {
	case tokIRIRef:
		iri := p.resolveIRI(p.tok.text)
		return iri, p.next()
	case tokPrefixedName:
		switch p.tok.text {
		case "true":
			return NewTypedLiteral("true", XSDBoolean), p.next()
		case "false":
			return NewTypedLiteral("false", XSDBoolean), p.next()
		}
		iri, err := p.expandPrefixed(p.tok.text)
		if err != nil {
			return nil, err
		}
		return iri, p.next()
	case tokBlankLabel:
		node := BlankNode(p.tok.text)
		return node, p.next()
	case tokOpenBracket:
		return p.parseBlankPropertyList()
	case tokOpenParen:
		return p.parseCollection()
	case tokString:
		return p.parseLiteralTail(p.tok.text)
	case tokInteger:
		return NewTypedLiteral(p.tok.text, XSDInteger), p.next()
	case tokDecimal:
		return NewTypedLiteral(p.tok.text, XSDDecimal), p.next()
	case tokDouble:
		return NewTypedLiteral(p.tok.text, XSDDouble), p.next()
	default:
		return nil, p.syntaxErr("object (IRI, blank node, or literal)")
	}
}

// parseLiteralTail handles the optional @lang or ^^datatype suffix after a
// quoted string.
func (p *parser) parseLiteralTail(value string) (Term, *SyntaxError) {
	if err := p.next(); err != nil {
		return nil, err
	}
	switch p.tok.kind {
	case tokLangTag:
		lit := NewLangLiteral(value, p.tok.text)
		return lit, p.next()
	case tokCaretCaret:
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.tok.kind {
		case tokIRIRef:
			lit := NewTypedLiteral(value, p.resolveIRI(p.tok.text))
			return lit, p.next()
		case tokPrefixedName:
			iri, err := p.expandPrefixed(p.tok.text)
			if err != nil {
				return nil, err
			}
			return NewTypedLiteral(value, iri), p.next()
		default:
			return nil, p.syntaxErr("datatype IRI after '^^'")
		}
	default:
		return NewLiteral(value), nil
	}
}

// parseBlankPropertyList handles "[ predicateObjectList ]", allocating a
// fresh anonymous node.
func (p *parser) parseBlankPropertyList() (Term, *SyntaxError) {
	node := p.freshBlank()
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokCloseBracket { // bare "[]"
		return node, p.next()
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	if err := p.expect(tokCloseBracket, "']' closing property list"); err != nil {
		return nil, err
	}
	return node, p.next()
}

// parseCollection handles "( o1 o2 ... )" as an rdf:first/rdf:rest chain.
func (p *parser) parseCollection() (Term, *SyntaxError) {
	const (
		rdfFirst = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first")
		rdfRest  = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#rest")
		rdfNil   = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil")
	)
	if err := p.next(); err != nil {
		return nil, err
	}
	var head Term = rdfNil
	var tail BlankNode
	for p.tok.kind != tokCloseParen {
		if p.tok.kind == tokEOF {
			return nil, p.syntaxErr("')' closing collection")
		}
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		cell := p.freshBlank()
		if head == rdfNil {
			head = cell
		} else {
			p.doc.Statements = append(p.doc.Statements, Statement{Subject: tail, Predicate: rdfRest, Object: cell})
		}
		p.doc.Statements = append(p.doc.Statements, Statement{Subject: cell, Predicate: rdfFirst, Object: obj})
		tail = cell
	}
	if head != rdfNil {
		p.doc.Statements = append(p.doc.Statements, Statement{Subject: tail, Predicate: rdfRest, Object: rdfNil})
	}
	return head, p.next()
}

func (p *parser) freshBlank() BlankNode {
	p.blankSeq++
	return BlankNode("genid" + strconv.Itoa(p.blankSeq))
}

func (p *parser) expandPrefixed(pname string) (IRI, *SyntaxError) {
	prefix, local, ok := strings.Cut(pname, ":")
	if !ok {
		return "", p.syntaxErr("prefixed name containing ':'")
	}
	ns, declared := p.doc.Prefixes[prefix]
	if !declared {
		return "", p.syntaxErr(fmt.Sprintf("declared prefix (prefix %q is not bound)", prefix))
	}
	return IRI(ns + local), nil
}

// resolveIRI resolves a (possibly relative) IRI reference against the
// current base. References that cannot be resolved are kept verbatim.
func (p *parser) resolveIRI(ref string) IRI {
	if p.baseURL == nil {
		return IRI(ref)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return IRI(ref)
	}
	if u.IsAbs() {
		return IRI(ref)
	}
	return IRI(p.baseURL.ResolveReference(u).String())
}

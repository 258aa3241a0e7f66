// Package graph indexes parsed Turtle statements for lookup by subject,
// predicate, and object. It is purely structural: no vocabulary knowledge
// and no validation. Blank node identity is document-scoped, so each
// inserted document's blank nodes are remapped into a namespace unique to
// that insertion before merging.
package graph

import (
	"strconv"
	"sync"

	"github.com/c360studio/lv2meta/turtle"
)

// Graph is the merged statement index over one or more documents.
//
// Insert is safe for concurrent use; lookups are safe once loading has
// finished (the bundle aggregator parses documents concurrently but
// serializes inserts and queries only afterward).
type Graph struct {
	mu         sync.Mutex
	statements []turtle.Statement

	bySubject   map[turtle.Term][]int
	byPredicate map[turtle.IRI][]int
	byObject    map[turtle.Term][]int

	insertions int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		bySubject:   make(map[turtle.Term][]int),
		byPredicate: make(map[turtle.IRI][]int),
		byObject:    make(map[turtle.Term][]int),
	}
}

// Insert merges a document's statements into the graph. Blank nodes are
// relabeled "d<N>_" + original label, where N is the insertion sequence, so
// equally named blank nodes from different documents never collide. The
// separator stays inside the PN_CHARS set, keeping relabeled nodes safe to
// serialize for strict Turtle consumers.
func (g *Graph) Insert(doc *turtle.Document) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ns := "d" + strconv.Itoa(g.insertions) + "_"
	g.insertions++

	for _, st := range doc.Statements {
		st.Subject = remapBlank(st.Subject, ns)
		st.Object = remapBlank(st.Object, ns)

		idx := len(g.statements)
		g.statements = append(g.statements, st)
		g.bySubject[st.Subject] = append(g.bySubject[st.Subject], idx)
		g.byPredicate[st.Predicate] = append(g.byPredicate[st.Predicate], idx)
		g.byObject[st.Object] = append(g.byObject[st.Object], idx)
	}
}

func remapBlank(t turtle.Term, ns string) turtle.Term {
	if b, ok := t.(turtle.BlankNode); ok {
		return turtle.BlankNode(ns + string(b))
	}
	return t
}

// Len reports the number of statements in the graph.
func (g *Graph) Len() int { return len(g.statements) }

// Statements returns all statements in insertion order. The returned slice
// is shared; callers must not modify it.
func (g *Graph) Statements() []turtle.Statement { return g.statements }

// BySubject returns every statement with the given subject.
func (g *Graph) BySubject(subject turtle.Term) []turtle.Statement {
	return g.collect(g.bySubject[subject])
}

// ByPredicate returns every statement with the given predicate.
func (g *Graph) ByPredicate(predicate turtle.IRI) []turtle.Statement {
	return g.collect(g.byPredicate[predicate])
}

// ByObject returns every statement with the given object.
func (g *Graph) ByObject(object turtle.Term) []turtle.Statement {
	return g.collect(g.byObject[object])
}

// Objects returns the objects of all (subject, predicate) statements, in
// insertion order.
func (g *Graph) Objects(subject turtle.Term, predicate turtle.IRI) []turtle.Term {
	var out []turtle.Term
	for _, idx := range g.bySubject[subject] {
		if st := g.statements[idx]; st.Predicate == predicate {
			out = append(out, st.Object)
		}
	}
	return out
}

// FirstObject returns the first object of (subject, predicate), or nil.
func (g *Graph) FirstObject(subject turtle.Term, predicate turtle.IRI) turtle.Term {
	for _, idx := range g.bySubject[subject] {
		if st := g.statements[idx]; st.Predicate == predicate {
			return st.Object
		}
	}
	return nil
}

// SubjectsOfType returns the distinct subjects carrying an rdf:type
// statement with the given class object, in insertion order.
func (g *Graph) SubjectsOfType(class turtle.IRI) []turtle.Term {
	seen := make(map[turtle.Term]bool)
	var out []turtle.Term
	for _, idx := range g.byObject[class] {
		st := g.statements[idx]
		if st.Predicate == turtle.RDFType && !seen[st.Subject] {
			seen[st.Subject] = true
			out = append(out, st.Subject)
		}
	}
	return out
}

func (g *Graph) collect(indices []int) []turtle.Statement {
	if len(indices) == 0 {
		return nil
	}
	out := make([]turtle.Statement, len(indices))
	for i, idx := range indices {
		out[i] = g.statements[idx]
	}
	return out
}

package model

import "github.com/c360studio/lv2meta/turtle"

// Property is one predicate-object pair the mapper did not recognize,
// retained verbatim so serialization loses nothing.
type Property struct {
	Predicate string
	Object    turtle.Term

	// Nested holds the description of a blank-node object: the statements
	// about that node, carried along so the structure belongs to somebody
	// when the bundle is written back out.
	Nested PropertyBag
}

// PropertyBag is the generic fallback payload attached to every entity:
// statements about the entity that no typed field covers. Order reflects
// the source but carries no meaning.
type PropertyBag []Property

// Add appends a pair.
func (b *PropertyBag) Add(predicate string, object turtle.Term) {
	*b = append(*b, Property{Predicate: predicate, Object: object})
}

// Objects returns all objects stored under the given predicate.
func (b PropertyBag) Objects(predicate string) []turtle.Term {
	var out []turtle.Term
	for _, p := range b {
		if p.Predicate == predicate {
			out = append(out, p.Object)
		}
	}
	return out
}

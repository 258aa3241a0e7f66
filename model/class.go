package model

// ClassSet is an ordered, duplicate-free set of class IRIs attached to an
// entity. Membership is kept verbatim: whether a class is recognized is a
// vocabulary question, not a model one, so unknown classes survive
// round-trips unchanged.
type ClassSet struct {
	iris []string
	seen map[string]bool
}

// NewClassSet builds a set from the given IRIs, preserving first-seen order.
func NewClassSet(iris ...string) ClassSet {
	var cs ClassSet
	for _, iri := range iris {
		cs.Add(iri)
	}
	return cs
}

// Add inserts a class IRI if not already present.
func (cs *ClassSet) Add(iri string) {
	if cs.seen == nil {
		cs.seen = make(map[string]bool)
	}
	if cs.seen[iri] {
		return
	}
	cs.seen[iri] = true
	cs.iris = append(cs.iris, iri)
}

// Contains reports membership.
func (cs ClassSet) Contains(iri string) bool { return cs.seen[iri] }

// All returns the members in insertion order. The slice is shared; callers
// must not modify it.
func (cs ClassSet) All() []string { return cs.iris }

// Len reports the number of members.
func (cs ClassSet) Len() int { return len(cs.iris) }

// Filter returns the members accepted by keep, in order.
func (cs ClassSet) Filter(keep func(string) bool) []string {
	var out []string
	for _, iri := range cs.iris {
		if keep(iri) {
			out = append(out, iri)
		}
	}
	return out
}

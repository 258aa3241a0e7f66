package turtle

// Document is the result of parsing one Turtle source: the statements it
// asserts plus the prefix bindings it declared. Statement order reflects
// source order but carries no meaning.
type Document struct {
	// Name identifies the source, typically the logical file name within a
	// bundle. Used in error reporting only.
	Name string

	// Base is the IRI relative references were resolved against.
	Base string

	// Prefixes maps declared prefix labels (without the trailing colon) to
	// namespace IRIs.
	Prefixes map[string]string

	Statements []Statement
}

// Subjects returns the distinct subjects in statement order.
func (d *Document) Subjects() []Term {
	seen := make(map[Term]bool, len(d.Statements))
	var out []Term
	for _, st := range d.Statements {
		if !seen[st.Subject] {
			seen[st.Subject] = true
			out = append(out, st.Subject)
		}
	}
	return out
}

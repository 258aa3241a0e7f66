package model

// Maintainer is one doap:maintainer description.
type Maintainer struct {
	Name     string
	Homepage string
	Mbox     string
}

// Project is the doap:Project metadata a plugin may link to.
type Project struct {
	// URI identifies the project; empty for anonymous project nodes.
	URI string

	Name        string
	ShortDesc   string
	License     string
	Homepage    string
	Maintainers []Maintainer

	// Extra retains unrecognized predicate-object pairs verbatim.
	Extra PropertyBag
}

package model

import "github.com/c360studio/lv2meta/turtle"

// Plugin is one LV2 plugin description within a bundle.
type Plugin struct {
	// URI identifies the plugin; unique within a bundle.
	URI string

	// Binary is the IRI of the shared library implementing the plugin. The
	// value is opaque here; resolving and loading it is host business.
	Binary string

	// SeeAlso lists the data documents (by logical name) that described
	// this plugin on input; export mirrors the same split.
	SeeAlso []string

	// Classes holds every class IRI declared for the plugin: lv2:Plugin,
	// category classes, and unrecognized classes verbatim.
	Classes ClassSet

	// Names are doap:name literals, possibly one per language.
	Names []turtle.Literal

	// Documentation holds lv2:documentation XHTML literals.
	Documentation []turtle.Literal

	// Symbol is the optional plugin symbol.
	Symbol Symbol

	Version ResourceVersion

	// RequiredFeatures and OptionalFeatures are host feature IRIs; the two
	// sets must be disjoint.
	RequiredFeatures []string
	OptionalFeatures []string

	// ExtensionData lists extension interface IRIs the binary provides.
	ExtensionData []string

	Project *Project

	// Ports in lv2:index order once mapped; order is re-derived from the
	// Index fields, not from statement order.
	Ports []*Port

	// Extra retains unrecognized predicate-object pairs verbatim.
	Extra PropertyBag
}

// Name returns the plugin's untagged doap:name, falling back to the first
// name in any language, or "".
func (p *Plugin) Name() string {
	for _, lit := range p.Names {
		if lit.Lang == "" {
			return lit.Value
		}
	}
	if len(p.Names) > 0 {
		return p.Names[0].Value
	}
	return ""
}

// Categories returns the plugin's recognized category classes per
// isCategory, excluding the base class.
func (p *Plugin) Categories(isCategory func(string) bool) []string {
	return p.Classes.Filter(isCategory)
}

// CategoriesWithAncestors returns the declared categories closed over the
// hierarchy: each declared category followed by its ancestors, without
// duplicates.
func (p *Plugin) CategoriesWithAncestors(isCategory func(string) bool, ancestors func(string) []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range p.Categories(isCategory) {
		add(c)
		for _, a := range ancestors(c) {
			add(a)
		}
	}
	return out
}

// PortBySymbol returns the port with the given symbol, or nil.
func (p *Plugin) PortBySymbol(symbol Symbol) *Port {
	for _, port := range p.Ports {
		if port.Symbol == symbol {
			return port
		}
	}
	return nil
}

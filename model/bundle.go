// Package model holds the typed representation of an LV2 bundle: the sole
// artifact handed downstream once mapping completes. Graph statements are
// not retained beyond each entity's fallback payload.
package model

// DynManifest is a dynamic manifest generator entry: a shared library that
// produces plugin descriptions at load time. The core records it without
// resolving the binary.
type DynManifest struct {
	URI     string
	Binary  string
	SeeAlso []string
	Extra   PropertyBag
}

// Bundle is the top-level unit: the plugins described by one manifest plus
// its satellite documents.
type Bundle struct {
	// URI is the bundle base IRI documents were resolved against.
	URI string

	// Plugins in manifest declaration order. Plugin URIs are unique; the
	// validator enforces this.
	Plugins []*Plugin

	DynManifests []*DynManifest
}

// Plugin returns the plugin with the given URI, or nil.
func (b *Bundle) Plugin(uri string) *Plugin {
	for _, p := range b.Plugins {
		if p.URI == uri {
			return p
		}
	}
	return nil
}

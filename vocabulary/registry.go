// Package vocabulary maps class IRIs onto the entity kinds the schema
// mapper recognizes. The standard table is immutable; callers needing
// additional extension vocabularies build a derived registry rather than
// mutating shared state, keeping every pipeline invocation a pure function
// of its inputs.
package vocabulary

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/lv2meta/vocabulary/atom"
	"github.com/c360studio/lv2meta/vocabulary/dman"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
	"github.com/c360studio/lv2meta/vocabulary/pprops"
	"github.com/c360studio/lv2meta/vocabulary/std"
	"github.com/c360studio/lv2meta/vocabulary/units"
)

// EntityKind is the mapper-level classification of a graph subject.
type EntityKind string

const (
	// KindUnknown marks subjects whose classes the registry does not
	// recognize; the mapper skips them with a warning.
	KindUnknown EntityKind = "unknown"

	// KindPlugin marks LV2 plugin subjects.
	KindPlugin EntityKind = "plugin"

	// KindPort marks plugin port subjects.
	KindPort EntityKind = "port"

	// KindProject marks doap:Project subjects.
	KindProject EntityKind = "project"

	// KindDynManifest marks dynamic manifest generator subjects.
	KindDynManifest EntityKind = "dyn_manifest"
)

// kindEntry is one row of the ordered class-to-kind lookup table. Earlier
// rows win when a subject declares several recognized classes of different
// kinds.
type kindEntry struct {
	class string
	kind  EntityKind
}

// Registry is the fixed vocabulary table: which class IRIs denote which
// entity kinds, which port classes carry direction or buffer-type meaning,
// the plugin category hierarchy, and the canonical prefix bindings used on
// output.
type Registry struct {
	kinds []kindEntry

	portDirections map[string]bool
	portTypes      map[string]bool
	categories     map[string]bool
	superclasses   map[string][]string
	prefixes       map[string]string
}

// Default returns the standard registry covering LV2 core plus the units,
// atom, port-properties and dynamic-manifest extensions. The returned value
// is freshly built and safe to extend.
func Default() *Registry {
	r := &Registry{
		portDirections: map[string]bool{
			lv2.ClassInputPort:  true,
			lv2.ClassOutputPort: true,
		},
		portTypes: map[string]bool{
			lv2.ClassAudioPort:   true,
			lv2.ClassControlPort: true,
			lv2.ClassCVPort:      true,
			atom.ClassAtomPort:   true,
		},
		categories:   make(map[string]bool),
		superclasses: make(map[string][]string),
		prefixes: map[string]string{
			"rdf":         std.RDFNamespace,
			"rdfs":        std.RDFSNamespace,
			"xsd":         std.XSDNamespace,
			"doap":        std.DOAPNamespace,
			"foaf":        std.FOAFNamespace,
			lv2.Prefix:    lv2.Namespace,
			units.Prefix:  units.Namespace,
			atom.Prefix:   atom.Namespace,
			pprops.Prefix: pprops.Namespace,
			dman.Prefix:   dman.Namespace,
		},
	}

	// Entity kind table. Plugin categories come first so a subject typed
	// with only a category (missing lv2:Plugin) still maps as a plugin; the
	// validator reports the missing base class separately.
	r.addKind(lv2.ClassPlugin, KindPlugin)
	for class, parents := range lv2.Superclasses {
		r.categories[class] = true
		r.superclasses[class] = parents
	}
	// Categories that are hierarchy roots or leaves without parent entries.
	for _, class := range []string{
		lv2.ClassDelayPlugin, lv2.ClassDistortionPlugin, lv2.ClassDynamicsPlugin,
		lv2.ClassFilterPlugin, lv2.ClassGeneratorPlugin, lv2.ClassMIDIPlugin,
		lv2.ClassModulatorPlugin, lv2.ClassSimulatorPlugin, lv2.ClassSpatialPlugin,
		lv2.ClassSpectralPlugin, lv2.ClassUtilityPlugin,
	} {
		r.categories[class] = true
	}
	for class := range r.categories {
		r.addKind(class, KindPlugin)
	}

	r.addKind(lv2.ClassPort, KindPort)
	for class := range r.portDirections {
		r.addKind(class, KindPort)
	}
	for class := range r.portTypes {
		r.addKind(class, KindPort)
	}

	r.addKind(std.ClassProject, KindProject)
	r.addKind(dman.ClassDynManifest, KindDynManifest)

	return r
}

func (r *Registry) addKind(class string, kind EntityKind) {
	for _, e := range r.kinds {
		if e.class == class {
			return
		}
	}
	r.kinds = append(r.kinds, kindEntry{class: class, kind: kind})
}

// KindOf resolves the entity kind for a subject from its class-membership
// IRIs using the ordered lookup table. The first class with a recognized
// kind decides; unrecognized classes yield KindUnknown.
func (r *Registry) KindOf(classes []string) EntityKind {
	for _, e := range r.kinds {
		for _, c := range classes {
			if c == e.class {
				return e.kind
			}
		}
	}
	return KindUnknown
}

// IsPortDirection reports whether the class IRI is a port direction class.
func (r *Registry) IsPortDirection(class string) bool { return r.portDirections[class] }

// IsPortType reports whether the class IRI is a port buffer-type class.
func (r *Registry) IsPortType(class string) bool { return r.portTypes[class] }

// IsPluginCategory reports whether the class IRI is a plugin category
// (excluding the lv2:Plugin base class).
func (r *Registry) IsPluginCategory(class string) bool { return r.categories[class] }

// Ancestors returns the transitive superclasses of a plugin category, not
// including the category itself or lv2:Plugin. The hierarchy may share
// ancestors; each is returned once.
func (r *Registry) Ancestors(class string) []string {
	var out []string
	seen := map[string]bool{class: true}
	queue := append([]string(nil), r.superclasses[class]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
		queue = append(queue, r.superclasses[next]...)
	}
	return out
}

// Prefixes returns a copy of the canonical prefix bindings.
func (r *Registry) Prefixes() map[string]string {
	out := make(map[string]string, len(r.prefixes))
	for k, v := range r.prefixes {
		out[k] = v
	}
	return out
}

// ExtensionConfig is the YAML shape for user-supplied extension
// vocabularies.
type ExtensionConfig struct {
	Extensions []ExtensionEntry `yaml:"extensions"`
}

// ExtensionEntry declares one extension namespace and its recognized
// classes.
type ExtensionEntry struct {
	Prefix    string           `yaml:"prefix"`
	Namespace string           `yaml:"namespace"`
	Classes   []ExtensionClass `yaml:"classes"`
}

// ExtensionClass declares one class IRI and how the mapper should treat it.
type ExtensionClass struct {
	// IRI may be absolute or relative to the entry's namespace.
	IRI string `yaml:"iri"`

	// Kind is one of plugin, port, project, dyn_manifest.
	Kind EntityKind `yaml:"kind"`

	// PortDirection and PortType mark port classes that satisfy the
	// direction / buffer-type requirements.
	PortDirection bool `yaml:"port_direction"`
	PortType      bool `yaml:"port_type"`
}

// WithExtensions returns a new registry extended with the vocabulary
// declared in the YAML config. The receiver is not modified.
func (r *Registry) WithExtensions(data []byte) (*Registry, error) {
	var cfg ExtensionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse extension config: %w", err)
	}

	out := r.clone()
	for _, ext := range cfg.Extensions {
		if ext.Prefix != "" && ext.Namespace != "" {
			out.prefixes[ext.Prefix] = ext.Namespace
		}
		for _, class := range ext.Classes {
			iri := class.IRI
			if iri == "" {
				return nil, fmt.Errorf("extension %q: class with empty IRI", ext.Prefix)
			}
			if !isAbsoluteIRI(iri) {
				iri = ext.Namespace + iri
			}
			switch class.Kind {
			case KindPlugin, KindPort, KindProject, KindDynManifest:
				out.addKind(iri, class.Kind)
			case "", KindUnknown:
				// Class contributes direction/type flags only.
			default:
				return nil, fmt.Errorf("extension %q: unknown kind %q for %s", ext.Prefix, class.Kind, iri)
			}
			if class.PortDirection {
				out.portDirections[iri] = true
				out.addKind(iri, KindPort)
			}
			if class.PortType {
				out.portTypes[iri] = true
				out.addKind(iri, KindPort)
			}
		}
	}
	return out, nil
}

func (r *Registry) clone() *Registry {
	out := &Registry{
		kinds:          append([]kindEntry(nil), r.kinds...),
		portDirections: make(map[string]bool, len(r.portDirections)),
		portTypes:      make(map[string]bool, len(r.portTypes)),
		categories:     make(map[string]bool, len(r.categories)),
		superclasses:   make(map[string][]string, len(r.superclasses)),
		prefixes:       make(map[string]string, len(r.prefixes)),
	}
	for k, v := range r.portDirections {
		out.portDirections[k] = v
	}
	for k, v := range r.portTypes {
		out.portTypes[k] = v
	}
	for k, v := range r.categories {
		out.categories[k] = v
	}
	for k, v := range r.superclasses {
		out.superclasses[k] = v
	}
	for k, v := range r.prefixes {
		out.prefixes[k] = v
	}
	return out
}

func isAbsoluteIRI(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			return i > 0
		}
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' && i > 0 || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return false
}

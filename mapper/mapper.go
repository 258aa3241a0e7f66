// Package mapper turns indexed graph statements into the typed bundle
// model. It resolves each subject's entity kind from its rdf:type classes
// via the vocabulary registry, fills typed fields from recognized
// predicates, and retains everything else verbatim in the entity's Extra
// payload so serialization loses nothing. Structural rules (index
// contiguity, symbol uniqueness, range ordering) are the validator's job,
// not the mapper's.
package mapper

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/c360studio/lv2meta/graph"
	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/atom"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
	"github.com/c360studio/lv2meta/vocabulary/pprops"
	"github.com/c360studio/lv2meta/vocabulary/std"
	"github.com/c360studio/lv2meta/vocabulary/units"
)

// Warning records a non-fatal mapping problem: a skipped subject or a value
// that could not be coerced to its typed field. The statement that caused
// it is left in the entity's Extra payload where possible.
type Warning struct {
	Subject string
	Reason  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Subject, w.Reason)
}

// Map builds a Bundle from the graph. Entry points are the subject IRIs the
// manifest declared (plugins and dynamic manifest generators); subjects
// whose classes the registry does not recognize are skipped with a warning.
func Map(g *graph.Graph, entryPoints []string, reg *vocabulary.Registry) (*model.Bundle, []Warning) {
	m := &mapping{g: g, reg: reg}
	b := &model.Bundle{}

	for _, uri := range entryPoints {
		subject := turtle.IRI(uri)
		classes := m.classesOf(subject)
		switch kind := reg.KindOf(classes.All()); kind {
		case vocabulary.KindPlugin:
			b.Plugins = append(b.Plugins, m.plugin(subject, classes))
		case vocabulary.KindDynManifest:
			b.DynManifests = append(b.DynManifests, m.dynManifest(subject))
		case vocabulary.KindUnknown:
			m.warn(uri, "no recognized entity class, subject skipped")
		default:
			m.warn(uri, "%s is not a bundle entry point, subject skipped", kind)
		}
	}
	return b, m.warnings
}

type mapping struct {
	g        *graph.Graph
	reg      *vocabulary.Registry
	warnings []Warning
}

func (m *mapping) warn(subject, format string, args ...any) {
	m.warnings = append(m.warnings, Warning{
		Subject: subject,
		Reason:  fmt.Sprintf(format, args...),
	})
}

// classesOf collects the subject's rdf:type objects. Unrecognized class
// IRIs are kept verbatim; non-IRI type objects are malformed and warned.
func (m *mapping) classesOf(subject turtle.Term) model.ClassSet {
	var cs model.ClassSet
	for _, obj := range m.g.Objects(subject, turtle.RDFType) {
		if iri, ok := obj.(turtle.IRI); ok {
			cs.Add(string(iri))
		} else {
			m.warn(subject.String(), "rdf:type object %s is not an IRI", obj)
		}
	}
	return cs
}

// extra records an unrecognized statement in the bag. When the object is a
// blank node, the node's own description belongs to no entity, so the
// reachable sub-statements travel nested inside the property and get written
// back out alongside it.
func (m *mapping) extra(bag *model.PropertyBag, st turtle.Statement) {
	*bag = append(*bag, m.extraProperty(st.Predicate, st.Object, make(map[turtle.Term]bool)))
}

func (m *mapping) extraProperty(predicate turtle.IRI, object turtle.Term, seen map[turtle.Term]bool) model.Property {
	pr := model.Property{Predicate: string(predicate), Object: object}
	if _, ok := object.(turtle.BlankNode); !ok || seen[object] {
		return pr
	}
	seen[object] = true
	for _, st := range m.g.BySubject(object) {
		pr.Nested = append(pr.Nested, m.extraProperty(st.Predicate, st.Object, seen))
	}
	return pr
}

func (m *mapping) plugin(subject turtle.IRI, classes model.ClassSet) *model.Plugin {
	p := &model.Plugin{URI: string(subject), Classes: classes}

	for _, st := range m.g.BySubject(subject) {
		switch string(st.Predicate) {
		case std.RDFType:
			// Classes already collected.
		case lv2.PropBinary:
			p.Binary = m.iriField(subject, "lv2:binary", st.Object, p.Binary)
		case std.RDFSSeeAlso:
			if iri, ok := st.Object.(turtle.IRI); ok {
				p.SeeAlso = append(p.SeeAlso, string(iri))
			} else {
				m.warn(string(subject), "rdfs:seeAlso object %s is not an IRI", st.Object)
			}
		case std.DOAPName:
			if lit, ok := st.Object.(turtle.Literal); ok {
				p.Names = append(p.Names, lit)
			} else {
				m.warn(string(subject), "doap:name object %s is not a literal", st.Object)
			}
		case lv2.PropDocumentation:
			if lit, ok := st.Object.(turtle.Literal); ok {
				p.Documentation = append(p.Documentation, lit)
			} else {
				m.warn(string(subject), "lv2:documentation object %s is not a literal", st.Object)
			}
		case lv2.PropSymbol:
			if lit, ok := st.Object.(turtle.Literal); ok && p.Symbol == "" {
				p.Symbol = model.Symbol(lit.Value)
			} else if !ok {
				m.warn(string(subject), "lv2:symbol object %s is not a literal", st.Object)
			} else {
				m.warn(string(subject), "duplicate lv2:symbol ignored")
			}
		case lv2.PropMinorVersion:
			if v := m.intField(string(subject), "lv2:minorVersion", st.Object); v != nil {
				p.Version.Minor = *v
			}
		case lv2.PropMicroVersion:
			if v := m.intField(string(subject), "lv2:microVersion", st.Object); v != nil {
				p.Version.Micro = *v
			}
		case lv2.PropRequiredFeature:
			p.RequiredFeatures = m.appendIRI(subject, "lv2:requiredFeature", st.Object, p.RequiredFeatures)
		case lv2.PropOptionalFeature:
			p.OptionalFeatures = m.appendIRI(subject, "lv2:optionalFeature", st.Object, p.OptionalFeatures)
		case lv2.PropExtensionData:
			p.ExtensionData = m.appendIRI(subject, "lv2:extensionData", st.Object, p.ExtensionData)
		case lv2.PropProject:
			if p.Project == nil {
				p.Project = m.project(st.Object)
			} else {
				m.warn(string(subject), "duplicate lv2:project ignored")
			}
		case lv2.PropPort:
			p.Ports = append(p.Ports, m.port(st.Object))
		default:
			m.extra(&p.Extra, st)
		}
	}

	sortPorts(p.Ports)
	return p
}

// sortPorts orders ports by declared index, indexless ports last in
// statement order. The sort is stable so mapping stays deterministic.
func sortPorts(ports []*model.Port) {
	sort.SliceStable(ports, func(i, j int) bool {
		a, b := ports[i].Index, ports[j].Index
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

func (m *mapping) port(node turtle.Term) *model.Port {
	p := &model.Port{Classes: m.classesOf(node)}
	subject := node.String()

	for _, st := range m.g.BySubject(node) {
		switch string(st.Predicate) {
		case std.RDFType:
			// Classes already collected.
		case lv2.PropIndex:
			if v := m.uint32Field(subject, "lv2:index", st.Object); v != nil {
				p.Index = v
			}
		case lv2.PropSymbol:
			if lit, ok := st.Object.(turtle.Literal); ok && p.Symbol == "" {
				p.Symbol = model.Symbol(lit.Value)
			} else if !ok {
				m.warn(subject, "lv2:symbol object %s is not a literal", st.Object)
			} else {
				m.warn(subject, "duplicate lv2:symbol ignored")
			}
		case lv2.PropName:
			if lit, ok := st.Object.(turtle.Literal); ok {
				p.Names = append(p.Names, lit)
			} else {
				m.warn(subject, "lv2:name object %s is not a literal", st.Object)
			}
		case lv2.PropDefault:
			p.Range = ensureRange(p.Range)
			p.Range.Default = m.floatField(subject, "lv2:default", st.Object)
		case lv2.PropMinimum:
			p.Range = ensureRange(p.Range)
			p.Range.Minimum = m.floatField(subject, "lv2:minimum", st.Object)
		case lv2.PropMaximum:
			p.Range = ensureRange(p.Range)
			p.Range.Maximum = m.floatField(subject, "lv2:maximum", st.Object)
		case lv2.PropDesignation:
			p.Designations = m.appendIRI(node, "lv2:designation", st.Object, p.Designations)
		case lv2.PropPortProperty:
			if iri, ok := st.Object.(turtle.IRI); ok {
				p.Properties.Add(string(iri))
			} else {
				m.warn(subject, "lv2:portProperty object %s is not an IRI", st.Object)
			}
		case lv2.PropScalePoint:
			if sp, ok := m.scalePoint(st.Object); ok {
				p.ScalePoints = append(p.ScalePoints, sp)
			}
		case units.PropUnit:
			if p.Units == nil {
				p.Units = &model.UnitsPayload{}
			}
			m.unit(st.Object, p.Units)
		case atom.PropBufferType:
			if iri, ok := st.Object.(turtle.IRI); ok {
				if p.Atom == nil {
					p.Atom = &model.AtomPayload{}
				}
				p.Atom.BufferType = string(iri)
			} else {
				m.warn(subject, "atom:bufferType object %s is not an IRI", st.Object)
			}
		case atom.PropSupports:
			if iri, ok := st.Object.(turtle.IRI); ok {
				if p.Atom == nil {
					p.Atom = &model.AtomPayload{}
				}
				p.Atom.Supports = append(p.Atom.Supports, string(iri))
			} else {
				m.warn(subject, "atom:supports object %s is not an IRI", st.Object)
			}
		case pprops.PropRangeSteps:
			if v := m.uint32Field(subject, "pprops:rangeSteps", st.Object); v != nil {
				p.PortProps = ensurePortProps(p.PortProps)
				p.PortProps.RangeSteps = v
			}
		case pprops.PropDisplayPriority:
			if v := m.uint32Field(subject, "pprops:displayPriority", st.Object); v != nil {
				p.PortProps = ensurePortProps(p.PortProps)
				p.PortProps.DisplayPriority = v
			}
		default:
			m.extra(&p.Extra, st)
		}
	}
	return p
}

func ensureRange(r *model.ValueRange) *model.ValueRange {
	if r == nil {
		return &model.ValueRange{}
	}
	return r
}

func ensurePortProps(pp *model.PortPropertiesPayload) *model.PortPropertiesPayload {
	if pp == nil {
		return &model.PortPropertiesPayload{}
	}
	return pp
}

// unit fills the units payload. The object is either a standard unit IRI or
// a node describing a bundle-local unit inline via units:render and
// units:symbol.
func (m *mapping) unit(node turtle.Term, out *model.UnitsPayload) {
	if iri, ok := node.(turtle.IRI); ok {
		out.Unit = string(iri)
	}
	for _, st := range m.g.BySubject(node) {
		lit, ok := st.Object.(turtle.Literal)
		if !ok {
			continue
		}
		switch string(st.Predicate) {
		case units.PropRender:
			out.Render = lit.Value
		case units.PropSymbol:
			out.Symbol = lit.Value
		}
	}
}

func (m *mapping) scalePoint(node turtle.Term) (model.ScalePoint, bool) {
	var sp model.ScalePoint
	subject := node.String()
	haveValue := false
	for _, st := range m.g.BySubject(node) {
		switch string(st.Predicate) {
		case std.RDFSLabel:
			if lit, ok := st.Object.(turtle.Literal); ok {
				sp.Label = lit.Value
			}
		case std.RDFValue:
			if v := m.floatField(subject, "rdf:value", st.Object); v != nil {
				sp.Value = *v
				haveValue = true
			}
		}
	}
	if !haveValue {
		m.warn(subject, "scale point without rdf:value skipped")
		return model.ScalePoint{}, false
	}
	return sp, true
}

func (m *mapping) project(node turtle.Term) *model.Project {
	p := &model.Project{}
	if iri, ok := node.(turtle.IRI); ok {
		p.URI = string(iri)
	}

	for _, st := range m.g.BySubject(node) {
		switch string(st.Predicate) {
		case std.RDFType:
			// Kind is implied by the lv2:project link.
		case std.DOAPName:
			if lit, ok := st.Object.(turtle.Literal); ok && p.Name == "" {
				p.Name = lit.Value
			}
		case std.DOAPShortDesc:
			if lit, ok := st.Object.(turtle.Literal); ok {
				p.ShortDesc = lit.Value
			}
		case std.DOAPLicense:
			p.License = m.iriField(node, "doap:license", st.Object, p.License)
		case std.DOAPHomepage:
			p.Homepage = m.iriField(node, "doap:homepage", st.Object, p.Homepage)
		case std.DOAPMaintainer, std.DOAPDeveloper:
			p.Maintainers = append(p.Maintainers, m.maintainer(st.Object))
		default:
			m.extra(&p.Extra, st)
		}
	}
	return p
}

func (m *mapping) maintainer(node turtle.Term) model.Maintainer {
	var mt model.Maintainer
	for _, st := range m.g.BySubject(node) {
		switch string(st.Predicate) {
		case std.FOAFName:
			if lit, ok := st.Object.(turtle.Literal); ok {
				mt.Name = lit.Value
			}
		case std.FOAFHomepage:
			if iri, ok := st.Object.(turtle.IRI); ok {
				mt.Homepage = string(iri)
			}
		case std.FOAFMbox:
			if iri, ok := st.Object.(turtle.IRI); ok {
				mt.Mbox = string(iri)
			}
		}
	}
	return mt
}

func (m *mapping) dynManifest(subject turtle.IRI) *model.DynManifest {
	d := &model.DynManifest{URI: string(subject)}
	for _, st := range m.g.BySubject(subject) {
		switch string(st.Predicate) {
		case std.RDFType:
		case lv2.PropBinary:
			d.Binary = m.iriField(subject, "lv2:binary", st.Object, d.Binary)
		case std.RDFSSeeAlso:
			if iri, ok := st.Object.(turtle.IRI); ok {
				d.SeeAlso = append(d.SeeAlso, string(iri))
			}
		default:
			m.extra(&d.Extra, st)
		}
	}
	return d
}

// iriField coerces a single-valued IRI field, keeping the first value.
func (m *mapping) iriField(subject turtle.Term, field string, obj turtle.Term, current string) string {
	iri, ok := obj.(turtle.IRI)
	if !ok {
		m.warn(subject.String(), "%s object %s is not an IRI", field, obj)
		return current
	}
	if current != "" {
		m.warn(subject.String(), "duplicate %s ignored", field)
		return current
	}
	return string(iri)
}

func (m *mapping) appendIRI(subject turtle.Term, field string, obj turtle.Term, list []string) []string {
	iri, ok := obj.(turtle.IRI)
	if !ok {
		m.warn(subject.String(), "%s object %s is not an IRI", field, obj)
		return list
	}
	return append(list, string(iri))
}

func (m *mapping) floatField(subject, field string, obj turtle.Term) *float64 {
	lit, ok := obj.(turtle.Literal)
	if !ok {
		m.warn(subject, "%s object %s is not a literal", field, obj)
		return nil
	}
	v, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		m.warn(subject, "%s value %q is not a number", field, lit.Value)
		return nil
	}
	return &v
}

func (m *mapping) intField(subject, field string, obj turtle.Term) *int {
	lit, ok := obj.(turtle.Literal)
	if !ok {
		m.warn(subject, "%s object %s is not a literal", field, obj)
		return nil
	}
	v, err := strconv.Atoi(lit.Value)
	if err != nil {
		m.warn(subject, "%s value %q is not an integer", field, lit.Value)
		return nil
	}
	return &v
}

func (m *mapping) uint32Field(subject, field string, obj turtle.Term) *uint32 {
	lit, ok := obj.(turtle.Literal)
	if !ok {
		m.warn(subject, "%s object %s is not a literal", field, obj)
		return nil
	}
	v, err := strconv.ParseUint(lit.Value, 10, 32)
	if err != nil {
		m.warn(subject, "%s value %q is not a non-negative integer", field, lit.Value)
		return nil
	}
	u := uint32(v)
	return &u
}

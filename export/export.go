// Package export serializes the typed bundle model back into Turtle
// documents: a manifest that declares each entity and points at its data
// document, plus the data documents holding the full descriptions. The
// split mirrors the rdfs:seeAlso layout recorded at load time when one
// exists; entities without a recorded layout get a document named after
// their URI. Extra payloads are always written, so anything the mapper did
// not recognize survives the round trip.
package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/atom"
	"github.com/c360studio/lv2meta/vocabulary/dman"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
	"github.com/c360studio/lv2meta/vocabulary/pprops"
	"github.com/c360studio/lv2meta/vocabulary/std"
	"github.com/c360studio/lv2meta/vocabulary/units"
)

// ManifestName is the document every bundle split contains.
const ManifestName = "manifest.ttl"

// SerializationError reports a model value that Turtle cannot represent.
type SerializationError struct {
	Subject string
	Field   string
	Value   float64
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %s value %g is not representable in Turtle", e.Subject, e.Field, e.Value)
}

// Split serializes the bundle into named documents. The registry supplies
// the prefix bindings; each document declares only the prefixes its IRIs
// actually use.
func Split(b *model.Bundle, reg *vocabulary.Registry) (map[string]*turtle.Document, error) {
	s := &splitter{
		bundle: b,
		docs:   make(map[string]*turtle.Document),
	}
	s.manifest = s.doc(ManifestName)

	for _, p := range b.Plugins {
		if err := s.plugin(p); err != nil {
			return nil, err
		}
	}
	for _, d := range b.DynManifests {
		s.dynManifest(d)
	}

	bindings := reg.Prefixes()
	for _, doc := range s.docs {
		doc.Prefixes = usedPrefixes(doc, bindings)
	}
	return s.docs, nil
}

type splitter struct {
	bundle   *model.Bundle
	docs     map[string]*turtle.Document
	manifest *turtle.Document
	blanks   int
}

func (s *splitter) doc(name string) *turtle.Document {
	if d, ok := s.docs[name]; ok {
		return d
	}
	d := &turtle.Document{Name: name, Base: s.bundle.URI}
	s.docs[name] = d
	return d
}

func (s *splitter) blank(hint string) turtle.BlankNode {
	s.blanks++
	return turtle.BlankNode(fmt.Sprintf("%s%d", hint, s.blanks))
}

func add(doc *turtle.Document, subject turtle.Term, predicate string, object turtle.Term) {
	doc.Statements = append(doc.Statements, turtle.Statement{
		Subject:   subject,
		Predicate: turtle.IRI(predicate),
		Object:    object,
	})
}

func (s *splitter) plugin(p *model.Plugin) error {
	subject := turtle.IRI(p.URI)
	dataName := s.dataDocName(p.URI, p.SeeAlso)
	data := s.doc(dataName)

	// Manifest entry: type, binary, and the pointer to the data document.
	add(s.manifest, subject, std.RDFType, turtle.IRI(lv2.ClassPlugin))
	if p.Binary != "" {
		add(s.manifest, subject, lv2.PropBinary, turtle.IRI(p.Binary))
	}
	add(s.manifest, subject, std.RDFSSeeAlso, turtle.IRI(s.seeAlsoIRI(dataName, p.SeeAlso)))

	for _, class := range p.Classes.All() {
		add(data, subject, std.RDFType, turtle.IRI(class))
	}
	for _, name := range p.Names {
		add(data, subject, std.DOAPName, name)
	}
	for _, docLit := range p.Documentation {
		add(data, subject, lv2.PropDocumentation, docLit)
	}
	if p.Symbol != "" {
		add(data, subject, lv2.PropSymbol, turtle.NewLiteral(string(p.Symbol)))
	}
	if !p.Version.IsZero() {
		add(data, subject, lv2.PropMinorVersion, integerLiteral(int64(p.Version.Minor)))
		add(data, subject, lv2.PropMicroVersion, integerLiteral(int64(p.Version.Micro)))
	}
	for _, f := range p.RequiredFeatures {
		add(data, subject, lv2.PropRequiredFeature, turtle.IRI(f))
	}
	for _, f := range p.OptionalFeatures {
		add(data, subject, lv2.PropOptionalFeature, turtle.IRI(f))
	}
	for _, e := range p.ExtensionData {
		add(data, subject, lv2.PropExtensionData, turtle.IRI(e))
	}
	if p.Project != nil {
		s.project(data, subject, p.Project)
	}
	for _, port := range p.Ports {
		if err := s.port(data, subject, p.URI, port); err != nil {
			return err
		}
	}
	writeExtra(data, subject, p.Extra)
	return nil
}

func (s *splitter) port(data *turtle.Document, plugin turtle.Term, pluginURI string, port *model.Port) error {
	node := s.blank("port")
	add(data, plugin, lv2.PropPort, node)

	for _, class := range port.Classes.All() {
		add(data, node, std.RDFType, turtle.IRI(class))
	}
	if port.Index != nil {
		add(data, node, lv2.PropIndex, integerLiteral(int64(*port.Index)))
	}
	if port.Symbol != "" {
		add(data, node, lv2.PropSymbol, turtle.NewLiteral(string(port.Symbol)))
	}
	for _, name := range port.Names {
		add(data, node, lv2.PropName, name)
	}
	if r := port.Range; r != nil {
		for _, field := range []struct {
			predicate string
			value     *float64
		}{
			{lv2.PropDefault, r.Default},
			{lv2.PropMinimum, r.Minimum},
			{lv2.PropMaximum, r.Maximum},
		} {
			if field.value == nil {
				continue
			}
			lit, err := decimalLiteral(pluginURI, field.predicate, *field.value)
			if err != nil {
				return err
			}
			add(data, node, field.predicate, lit)
		}
	}
	for _, d := range port.Designations {
		add(data, node, lv2.PropDesignation, turtle.IRI(d))
	}
	for _, prop := range port.Properties.All() {
		add(data, node, lv2.PropPortProperty, turtle.IRI(prop))
	}
	for _, sp := range port.ScalePoints {
		lit, err := decimalLiteral(pluginURI, lv2.PropScalePoint, sp.Value)
		if err != nil {
			return err
		}
		spNode := s.blank("scale")
		add(data, node, lv2.PropScalePoint, spNode)
		add(data, spNode, std.RDFSLabel, turtle.NewLiteral(sp.Label))
		add(data, spNode, std.RDFValue, lit)
	}
	if u := port.Units; u != nil {
		if u.Unit != "" {
			add(data, node, units.PropUnit, turtle.IRI(u.Unit))
		} else {
			unitNode := s.blank("unit")
			add(data, node, units.PropUnit, unitNode)
			add(data, unitNode, std.RDFType, turtle.IRI(units.ClassUnit))
			if u.Render != "" {
				add(data, unitNode, units.PropRender, turtle.NewLiteral(u.Render))
			}
			if u.Symbol != "" {
				add(data, unitNode, units.PropSymbol, turtle.NewLiteral(u.Symbol))
			}
		}
	}
	if a := port.Atom; a != nil {
		if a.BufferType != "" {
			add(data, node, atom.PropBufferType, turtle.IRI(a.BufferType))
		}
		for _, sup := range a.Supports {
			add(data, node, atom.PropSupports, turtle.IRI(sup))
		}
	}
	if pp := port.PortProps; pp != nil {
		if pp.RangeSteps != nil {
			add(data, node, pprops.PropRangeSteps, integerLiteral(int64(*pp.RangeSteps)))
		}
		if pp.DisplayPriority != nil {
			add(data, node, pprops.PropDisplayPriority, integerLiteral(int64(*pp.DisplayPriority)))
		}
	}
	writeExtra(data, node, port.Extra)
	return nil
}

func (s *splitter) project(data *turtle.Document, plugin turtle.Term, prj *model.Project) {
	var node turtle.Term
	if prj.URI != "" {
		node = turtle.IRI(prj.URI)
	} else {
		node = s.blank("project")
	}
	add(data, plugin, lv2.PropProject, node)
	add(data, node, std.RDFType, turtle.IRI(std.ClassProject))
	if prj.Name != "" {
		add(data, node, std.DOAPName, turtle.NewLiteral(prj.Name))
	}
	if prj.ShortDesc != "" {
		add(data, node, std.DOAPShortDesc, turtle.NewLiteral(prj.ShortDesc))
	}
	if prj.License != "" {
		add(data, node, std.DOAPLicense, turtle.IRI(prj.License))
	}
	if prj.Homepage != "" {
		add(data, node, std.DOAPHomepage, turtle.IRI(prj.Homepage))
	}
	for _, mt := range prj.Maintainers {
		mNode := s.blank("maintainer")
		add(data, node, std.DOAPMaintainer, mNode)
		if mt.Name != "" {
			add(data, mNode, std.FOAFName, turtle.NewLiteral(mt.Name))
		}
		if mt.Homepage != "" {
			add(data, mNode, std.FOAFHomepage, turtle.IRI(mt.Homepage))
		}
		if mt.Mbox != "" {
			add(data, mNode, std.FOAFMbox, turtle.IRI(mt.Mbox))
		}
	}
	writeExtra(data, node, prj.Extra)
}

func (s *splitter) dynManifest(d *model.DynManifest) {
	subject := turtle.IRI(d.URI)
	add(s.manifest, subject, std.RDFType, turtle.IRI(dman.ClassDynManifest))
	if d.Binary != "" {
		add(s.manifest, subject, lv2.PropBinary, turtle.IRI(d.Binary))
	}
	for _, sa := range d.SeeAlso {
		add(s.manifest, subject, std.RDFSSeeAlso, turtle.IRI(sa))
	}
	writeExtra(s.manifest, subject, d.Extra)
}

func writeExtra(doc *turtle.Document, subject turtle.Term, extra model.PropertyBag) {
	for _, pr := range extra {
		add(doc, subject, pr.Predicate, pr.Object)
		// A blank-node object carries its own description; write it out so
		// the reference does not dangle.
		if len(pr.Nested) > 0 {
			writeExtra(doc, pr.Object, pr.Nested)
		}
	}
}

// dataDocName picks the document to hold an entity's full description: the
// first recorded rdfs:seeAlso target, made bundle-relative, or a name
// derived from the entity URI.
func (s *splitter) dataDocName(uri string, seeAlso []string) string {
	if len(seeAlso) > 0 {
		if rel, ok := strings.CutPrefix(seeAlso[0], s.bundle.URI); ok && rel != "" {
			return rel
		}
		if i := strings.LastIndexByte(seeAlso[0], '/'); i >= 0 && i+1 < len(seeAlso[0]) {
			return seeAlso[0][i+1:]
		}
	}
	return localName(uri) + ".ttl"
}

// seeAlsoIRI is the manifest-side pointer to the data document: the
// recorded absolute IRI when one exists, else the derived name resolved
// against the bundle URI.
func (s *splitter) seeAlsoIRI(dataName string, seeAlso []string) string {
	if len(seeAlso) > 0 {
		return seeAlso[0]
	}
	return s.bundle.URI + dataName
}

// localName derives a filesystem-safe name from a URI's final segment.
func localName(uri string) string {
	name := uri
	if i := strings.LastIndexAny(name, "/#"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "plugin"
	}
	return sb.String()
}

func integerLiteral(v int64) turtle.Literal {
	return turtle.NewTypedLiteral(strconv.FormatInt(v, 10), turtle.XSDInteger)
}

func decimalLiteral(subject, field string, v float64) (turtle.Literal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return turtle.Literal{}, &SerializationError{Subject: subject, Field: field, Value: v}
	}
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return turtle.NewTypedLiteral(text, turtle.XSDDecimal), nil
}

// usedPrefixes keeps only the bindings some IRI in the document actually
// falls under.
func usedPrefixes(doc *turtle.Document, bindings map[string]string) map[string]string {
	used := make(map[string]string)
	consider := func(iri string) {
		for prefix, ns := range bindings {
			if strings.HasPrefix(iri, ns) {
				used[prefix] = ns
			}
		}
	}
	for _, st := range doc.Statements {
		if iri, ok := st.Subject.(turtle.IRI); ok {
			consider(string(iri))
		}
		consider(string(st.Predicate))
		switch o := st.Object.(type) {
		case turtle.IRI:
			consider(string(o))
		case turtle.Literal:
			if o.Datatype != "" {
				consider(string(o.Datatype))
			}
		}
	}
	return used
}

// Package bundle is the top of the pipeline: it turns a set of Turtle
// documents into a validated Bundle, or a complete report of everything
// wrong with them, and performs the inverse split back to documents.
//
// Documents are parsed concurrently; a syntax error in one document is
// recorded without discarding the others, so the report covers the whole
// bundle in one pass. The merge into the graph and everything after it is
// sequential.
package bundle

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/c360studio/lv2meta/export"
	"github.com/c360studio/lv2meta/graph"
	"github.com/c360studio/lv2meta/mapper"
	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/validate"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/dman"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
)

// ManifestName is the document the loader reads entry points from.
const ManifestName = "manifest.ttl"

// Report collects everything the pipeline found wrong with a bundle. A
// bundle is only returned when the report is clean.
type Report struct {
	Syntax     []*turtle.SyntaxError
	Warnings   []mapper.Warning
	Validation []validate.Error
}

// OK reports whether the bundle loaded without any syntax error, mapping
// warning, or validation error.
func (r *Report) OK() bool {
	return len(r.Syntax) == 0 && len(r.Warnings) == 0 && len(r.Validation) == 0
}

// Error summarizes the report; empty when OK.
func (r *Report) Error() string {
	if r.OK() {
		return ""
	}
	var parts []string
	for _, e := range r.Syntax {
		parts = append(parts, "syntax: "+e.Error())
	}
	for _, w := range r.Warnings {
		parts = append(parts, "mapping: "+w.String())
	}
	for _, e := range r.Validation {
		parts = append(parts, "validation: "+e.Error())
	}
	return fmt.Sprintf("%d problems: %s", len(parts), strings.Join(parts, "; "))
}

type options struct {
	registry   *vocabulary.Registry
	sequential bool
}

// Option configures Load and Save.
type Option func(*options)

// WithRegistry substitutes the vocabulary registry, typically one built
// with WithExtensions.
func WithRegistry(reg *vocabulary.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithSequentialParse disables concurrent document parsing.
func WithSequentialParse() Option {
	return func(o *options) { o.sequential = true }
}

func buildOptions(opts []Option) options {
	o := options{registry: vocabulary.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load parses, indexes, maps and validates the documents of one bundle.
// Keys are logical document names (the manifest under ManifestName); base
// is the bundle IRI relative references resolve against. The returned
// bundle is non-nil exactly when the report is clean.
func Load(docs map[string][]byte, base string, opts ...Option) (*model.Bundle, *Report) {
	o := buildOptions(opts)
	report := &Report{}

	parsed := parseAll(docs, base, o.sequential, report)

	g := graph.New()
	var manifestDoc *turtle.Document
	for _, doc := range parsed {
		g.Insert(doc)
		if doc.Name == ManifestName {
			manifestDoc = doc
		}
	}

	entries := entryPoints(g, manifestDoc, report)

	b, warnings := mapper.Map(g, entries, o.registry)
	report.Warnings = warnings
	b.URI = base

	report.Validation = validate.Validate(b, o.registry)

	if !report.OK() {
		return nil, report
	}
	return b, report
}

// parseAll parses every document, concurrently unless disabled, and
// returns the successful ones in deterministic order: manifest first, the
// rest by name. Failures land in the report.
func parseAll(docs map[string][]byte, base string, sequential bool, report *Report) []*turtle.Document {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == ManifestName) != (names[j] == ManifestName) {
			return names[i] == ManifestName
		}
		return names[i] < names[j]
	})

	results := make([]*turtle.Document, len(names))
	errs := make([]*turtle.SyntaxError, len(names))

	parse := func(i int) {
		name := names[i]
		docName := name
		if docName == "" {
			// An unnamed document still needs an identity for error
			// reporting and blank node scoping.
			docName = "unnamed-" + uuid.NewString() + ".ttl"
		}
		doc, err := turtle.Parse(docName, docs[name], base)
		if err != nil {
			errs[i] = asSyntaxError(docName, err)
			return
		}
		results[i] = doc
	}

	if sequential {
		for i := range names {
			parse(i)
		}
	} else {
		var wg sync.WaitGroup
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				parse(i)
			}(i)
		}
		wg.Wait()
	}

	var out []*turtle.Document
	for i := range names {
		if errs[i] != nil {
			report.Syntax = append(report.Syntax, errs[i])
			continue
		}
		out = append(out, results[i])
	}
	return out
}

func asSyntaxError(doc string, err error) *turtle.SyntaxError {
	if serr, ok := err.(*turtle.SyntaxError); ok {
		return serr
	}
	return &turtle.SyntaxError{Document: doc, Got: err.Error()}
}

// entryPoints collects the subjects the manifest declares as plugins or
// dynamic manifest generators, in declaration order. Without a manifest
// every typed subject in the graph qualifies.
func entryPoints(g *graph.Graph, manifest *turtle.Document, report *Report) []string {
	var subjects []turtle.Term
	if manifest != nil {
		seen := make(map[turtle.Term]bool)
		for _, st := range manifest.Statements {
			if st.Predicate != turtle.RDFType || seen[st.Subject] {
				continue
			}
			if st.Object == turtle.IRI(lv2.ClassPlugin) || st.Object == turtle.IRI(dman.ClassDynManifest) {
				seen[st.Subject] = true
				subjects = append(subjects, st.Subject)
			}
		}
	} else {
		subjects = append(subjects, g.SubjectsOfType(lv2.ClassPlugin)...)
		subjects = append(subjects, g.SubjectsOfType(dman.ClassDynManifest)...)
	}

	var out []string
	for _, s := range subjects {
		iri, ok := s.(turtle.IRI)
		if !ok {
			report.Warnings = append(report.Warnings, mapper.Warning{
				Subject: s.String(),
				Reason:  "bundle entry point is not an IRI, subject skipped",
			})
			continue
		}
		out = append(out, string(iri))
	}
	return out
}

// Save serializes a bundle back into named documents, the inverse of Load.
func Save(b *model.Bundle, opts ...Option) (map[string][]byte, error) {
	o := buildOptions(opts)
	docs, err := export.Split(b, o.registry)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(docs))
	for name, doc := range docs {
		out[name] = turtle.Write(doc)
	}
	return out, nil
}

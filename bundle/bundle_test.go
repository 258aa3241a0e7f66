package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/validate"
	"github.com/c360studio/lv2meta/vocabulary"
)

const testBase = "http://example.org/bundle/"

func testDocs() map[string][]byte {
	return map[string][]byte{
		"manifest.ttl": []byte(`
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

<http://example.org/plug>
	a lv2:Plugin ;
	lv2:binary <plug.so> ;
	rdfs:seeAlso <plug.ttl> .
`),
		"plug.ttl": []byte(`
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix eg: <http://example.org/> .

<http://example.org/plug>
	a lv2:Plugin , lv2:ReverbPlugin ;
	doap:name "Exampleverb" ;
	eg:color "blue" ;
	lv2:port [
		a lv2:InputPort , lv2:AudioPort ;
		lv2:index 0 ;
		lv2:symbol "in"
	] , [
		a lv2:InputPort , lv2:ControlPort ;
		lv2:index 1 ;
		lv2:symbol "gain" ;
		lv2:name "Gain" ;
		lv2:default 0.0 ;
		lv2:minimum -24.0 ;
		lv2:maximum 24.0
	] .
`),
	}
}

func TestLoad_CleanBundle(t *testing.T) {
	b, report := Load(testDocs(), testBase)
	require.True(t, report.OK(), report.Error())
	require.NotNil(t, b)

	assert.Equal(t, testBase, b.URI)
	require.Len(t, b.Plugins, 1)
	p := b.Plugins[0]
	assert.Equal(t, "http://example.org/plug", p.URI)
	assert.Equal(t, "Exampleverb", p.Name())
	assert.Equal(t, testBase+"plug.so", p.Binary)
	assert.Equal(t, []string{testBase + "plug.ttl"}, p.SeeAlso)
	require.Len(t, p.Ports, 2)
	assert.Equal(t, "in", p.Ports[0].Symbol.String())
	assert.Equal(t, "gain", p.Ports[1].Symbol.String())
}

func TestLoad_SequentialMatchesConcurrent(t *testing.T) {
	concurrent, r1 := Load(testDocs(), testBase)
	sequential, r2 := Load(testDocs(), testBase, WithSequentialParse())
	require.True(t, r1.OK())
	require.True(t, r2.OK())
	assert.Equal(t, concurrent, sequential)
}

func TestLoad_SyntaxErrorIsolatedPerDocument(t *testing.T) {
	docs := testDocs()
	docs["broken.ttl"] = []byte(`@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
<http://example.org/other> lv2:binary `)

	b, report := Load(docs, testBase)
	assert.Nil(t, b)
	assert.False(t, report.OK())
	require.Len(t, report.Syntax, 1)
	assert.Equal(t, "broken.ttl", report.Syntax[0].Document)

	// The healthy documents were still parsed and validated.
	assert.Empty(t, report.Validation)
	assert.Empty(t, report.Warnings)
}

func TestLoad_MissingBinaryReported(t *testing.T) {
	docs := testDocs()
	docs["manifest.ttl"] = []byte(`
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
<http://example.org/plug> a lv2:Plugin ; rdfs:seeAlso <plug.ttl> .
`)

	b, report := Load(docs, testBase)
	assert.Nil(t, b)
	require.Len(t, report.Validation, 1)
	assert.Equal(t, validate.CodeMissingBinary, report.Validation[0].Code)
	assert.Contains(t, report.Error(), validate.CodeMissingBinary)
}

func TestLoad_DynManifest(t *testing.T) {
	docs := map[string][]byte{
		"manifest.ttl": []byte(`
@prefix dman: <http://lv2plug.in/ns/ext/dynmanifest#> .
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
<http://example.org/dyn> a dman:DynManifest ;
	lv2:binary <gen.so> ;
	rdfs:seeAlso <gen.ttl> .
`),
	}
	b, report := Load(docs, testBase)
	require.True(t, report.OK(), report.Error())
	require.Len(t, b.DynManifests, 1)
	assert.Equal(t, testBase+"gen.so", b.DynManifests[0].Binary)
}

func TestLoad_ExtensionRegistry(t *testing.T) {
	reg, err := vocabulary.Default().WithExtensions([]byte(`
extensions:
  - prefix: work
    namespace: http://example.org/work#
    classes:
      - iri: WorkPort
        kind: port
        port_type: true
`))
	require.NoError(t, err)

	docs := testDocs()
	docs["plug.ttl"] = []byte(`
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix work: <http://example.org/work#> .

<http://example.org/plug>
	a lv2:Plugin ;
	doap:name "Worker" ;
	lv2:port [
		a lv2:InputPort , work:WorkPort ;
		lv2:index 0 ;
		lv2:symbol "work_in"
	] .
`)

	// The default registry rejects the unknown buffer type class.
	b, report := Load(docs, testBase)
	assert.Nil(t, b)
	require.NotEmpty(t, report.Validation)
	assert.Equal(t, validate.CodePortNoType, report.Validation[0].Code)

	// The extended registry accepts it.
	b, report = Load(docs, testBase, WithRegistry(reg))
	require.True(t, report.OK(), report.Error())
	require.Len(t, b.Plugins, 1)
}

func TestRoundTrip(t *testing.T) {
	first, report := Load(testDocs(), testBase)
	require.True(t, report.OK(), report.Error())

	saved, err := Save(first)
	require.NoError(t, err)
	require.Contains(t, saved, "manifest.ttl")
	require.Contains(t, saved, "plug.ttl")

	second, report := Load(saved, testBase)
	require.True(t, report.OK(), report.Error())
	require.Len(t, second.Plugins, 1)

	p1, p2 := first.Plugins[0], second.Plugins[0]
	assert.Equal(t, p1.URI, p2.URI)
	assert.Equal(t, p1.Name(), p2.Name())
	assert.Equal(t, p1.Binary, p2.Binary)
	assert.Equal(t, p1.Classes.All(), p2.Classes.All())
	require.Len(t, p2.Ports, 2)
	assert.Equal(t, p1.Ports[1].Symbol, p2.Ports[1].Symbol)
	require.NotNil(t, p2.Ports[1].Range)
	assert.Equal(t, *p1.Ports[1].Range.Minimum, *p2.Ports[1].Range.Minimum)

	// Unrecognized data survives the full cycle.
	extras := p2.Extra.Objects("http://example.org/color")
	require.Len(t, extras, 1)
	assert.Equal(t, turtle.NewLiteral("blue"), extras[0])
}

func TestRoundTrip_ExtraBlankObject(t *testing.T) {
	docs := testDocs()
	docs["plug.ttl"] = []byte(`
@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix eg: <http://example.org/> .

<http://example.org/plug>
	a lv2:Plugin ;
	doap:name "Exampleverb" ;
	eg:thing [ eg:x "nested" ] .
`)

	first, report := Load(docs, testBase)
	require.True(t, report.OK(), report.Error())

	saved, err := Save(first)
	require.NoError(t, err)

	// The anonymous node referenced by the unrecognized predicate must come
	// back with its description intact.
	second, report := Load(saved, testBase)
	require.True(t, report.OK(), report.Error())
	require.Len(t, second.Plugins, 1)

	extra := second.Plugins[0].Extra
	require.Len(t, extra, 1)
	assert.Equal(t, "http://example.org/thing", extra[0].Predicate)
	require.Len(t, extra[0].Nested, 1)
	assert.Equal(t, "http://example.org/x", extra[0].Nested[0].Predicate)
	assert.Equal(t, turtle.NewLiteral("nested"), extra[0].Nested[0].Object)
}

func TestSave_IsDeterministic(t *testing.T) {
	b, report := Load(testDocs(), testBase)
	require.True(t, report.OK())

	first, err := Save(b)
	require.NoError(t, err)
	again, err := Save(b)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

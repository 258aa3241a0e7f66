package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MinimalManifest(t *testing.T) {
	input := `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

<http://example.org/plugins/amp>
	a lv2:Plugin ;
	lv2:binary <amp.so> ;
	rdfs:seeAlso <amp.ttl> .
`

	doc, err := Parse("manifest.ttl", []byte(input), "http://example.org/bundle/")
	require.NoError(t, err)

	assert.Equal(t, "http://lv2plug.in/ns/lv2core#", doc.Prefixes["lv2"])
	require.Len(t, doc.Statements, 3)

	subject := IRI("http://example.org/plugins/amp")
	assert.Equal(t, Statement{
		Subject:   subject,
		Predicate: IRI(RDFType),
		Object:    IRI("http://lv2plug.in/ns/lv2core#Plugin"),
	}, doc.Statements[0])

	// Relative references resolve against the base.
	assert.Equal(t, IRI("http://example.org/bundle/amp.so"), doc.Statements[1].Object)
	assert.Equal(t, IRI("http://example.org/bundle/amp.ttl"), doc.Statements[2].Object)
}

func TestParse_ObjectLists(t *testing.T) {
	input := `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
<http://example.org/p> a lv2:Plugin , lv2:AmplifierPlugin .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 2)
	assert.Equal(t, IRI("http://lv2plug.in/ns/lv2core#Plugin"), doc.Statements[0].Object)
	assert.Equal(t, IRI("http://lv2plug.in/ns/lv2core#AmplifierPlugin"), doc.Statements[1].Object)
}

func TestParse_Literals(t *testing.T) {
	input := `@prefix ex: <http://example.org/ns#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
ex:s ex:plain "hello" ;
	ex:tagged "hallo"@DE ;
	ex:typed "42"^^xsd:byte ;
	ex:int 7 ;
	ex:neg -3 ;
	ex:dec 0.5 ;
	ex:dbl 1.5e3 ;
	ex:flag true ;
	ex:off false .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 9)

	want := map[IRI]Literal{
		"http://example.org/ns#plain":  NewLiteral("hello"),
		"http://example.org/ns#tagged": NewLangLiteral("hallo", "de"),
		"http://example.org/ns#typed":  NewTypedLiteral("42", "http://www.w3.org/2001/XMLSchema#byte"),
		"http://example.org/ns#int":    NewTypedLiteral("7", XSDInteger),
		"http://example.org/ns#neg":    NewTypedLiteral("-3", XSDInteger),
		"http://example.org/ns#dec":    NewTypedLiteral("0.5", XSDDecimal),
		"http://example.org/ns#dbl":    NewTypedLiteral("1.5e3", XSDDouble),
		"http://example.org/ns#flag":   NewTypedLiteral("true", XSDBoolean),
		"http://example.org/ns#off":    NewTypedLiteral("false", XSDBoolean),
	}
	for _, st := range doc.Statements {
		assert.Equal(t, want[st.Predicate], st.Object, "predicate %s", st.Predicate)
	}
}

func TestParse_StringEscapes(t *testing.T) {
	input := `<http://e.org/s> <http://e.org/p> "line\nbreak \"quoted\" é" .`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)
	assert.Equal(t, NewLiteral("line\nbreak \"quoted\" é"), doc.Statements[0].Object)
}

func TestParse_LongString(t *testing.T) {
	input := "<http://e.org/s> <http://e.org/p> \"\"\"two\nlines\"\"\" ."
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)
	assert.Equal(t, NewLiteral("two\nlines"), doc.Statements[0].Object)
}

func TestParse_BlankNodes(t *testing.T) {
	input := `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
<http://e.org/p> lv2:port _:p0 , [ lv2:index 1 ] .
_:p0 lv2:index 0 .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 4)

	assert.Equal(t, BlankNode("p0"), doc.Statements[0].Object)

	// The anonymous property list introduces a fresh node carrying its own
	// statement.
	anon, ok := doc.Statements[2].Object.(BlankNode)
	require.True(t, ok)
	assert.Equal(t, anon, doc.Statements[1].Subject)
	assert.NotEqual(t, BlankNode("p0"), anon)
}

func TestParse_BlankLabelInteriorDots(t *testing.T) {
	input := `@prefix ex: <http://example.org/ns#> .
_:d0.genid1 ex:p "v" .
ex:s ex:q _:a.b.c .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 2)

	// Interior dots are part of the label; the trailing dot still ends the
	// statement.
	assert.Equal(t, BlankNode("d0.genid1"), doc.Statements[0].Subject)
	assert.Equal(t, BlankNode("a.b.c"), doc.Statements[1].Object)
}

func TestParse_AnonymousSubject(t *testing.T) {
	input := `@prefix ex: <http://example.org/ns#> .
[ ex:a 1 ; ex:b 2 ] .
[] ex:c 3 .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 3)
	assert.Equal(t, doc.Statements[0].Subject, doc.Statements[1].Subject)
	assert.NotEqual(t, doc.Statements[0].Subject, doc.Statements[2].Subject)
}

func TestParse_Collection(t *testing.T) {
	input := `@prefix ex: <http://example.org/ns#> .
ex:s ex:list ( 1 2 ) .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	// head cell: first+rest, second cell: first+rest(nil), plus the link.
	require.Len(t, doc.Statements, 5)
	assert.Equal(t, IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"), doc.Statements[3].Object)
}

func TestParse_CommentsAndWhitespaceIgnored(t *testing.T) {
	bare := `<http://e.org/s> <http://e.org/p> <http://e.org/o> .`
	commented := `# leading comment
<http://e.org/s>   <http://e.org/p>
	# interleaved comment
	<http://e.org/o> . # trailing
`
	a, err := Parse("a.ttl", []byte(bare), "")
	require.NoError(t, err)
	b, err := Parse("b.ttl", []byte(commented), "")
	require.NoError(t, err)
	assert.Equal(t, a.Statements, b.Statements)
}

func TestParse_BaseDirective(t *testing.T) {
	input := `@base <http://example.org/bundle/> .
<amp> <rel> <lib/amp.so> .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)
	assert.Equal(t, IRI("http://example.org/bundle/amp"), doc.Statements[0].Subject)
	assert.Equal(t, IRI("http://example.org/bundle/lib/amp.so"), doc.Statements[0].Object)
}

func TestParse_SparqlStyleDirectives(t *testing.T) {
	input := `PREFIX ex: <http://example.org/ns#>
BASE <http://example.org/>
ex:s ex:p <rel> .
`
	doc, err := Parse("t.ttl", []byte(input), "")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)
	assert.Equal(t, IRI("http://example.org/rel"), doc.Statements[0].Object)
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing dot", `<http://e.org/s> <http://e.org/p> <http://e.org/o>`},
		{"unterminated IRI", `<http://e.org/s`},
		{"unterminated string", `<http://e.org/s> <http://e.org/p> "oops .`},
		{"undeclared prefix", `ex:s ex:p ex:o .`},
		{"bad escape", `<http://e.org/s> <http://e.org/p> "\q" .`},
		{"object missing", `<http://e.org/s> <http://e.org/p> .`},
		{"predicate missing", `<http://e.org/s> . `},
		{"run-together directive", `@prefixfoo <http://e.org/ns#> .`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.ttl", []byte(tt.input), "")
			require.Error(t, err)

			var synErr *SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, "bad.ttl", synErr.Document)
			assert.Positive(t, synErr.Line)
			assert.Positive(t, synErr.Col)
			assert.NotEmpty(t, synErr.Expected)
		})
	}
}

func TestParse_RunTogetherDirectiveErrorPosition(t *testing.T) {
	// "@prefixfoo" must not be read as "@prefix" plus leftover input; the
	// error points at the malformed directive itself.
	_, err := Parse("bad.ttl", []byte("@prefixfoo <http://e.org/ns#> .\n"), "")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 1, synErr.Line)
	assert.Equal(t, 1, synErr.Col)
}

func TestParse_ErrorPosition(t *testing.T) {
	input := "<http://e.org/s> <http://e.org/p>\n    %%% .\n"
	_, err := Parse("bad.ttl", []byte(input), "")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Line)
	assert.Equal(t, 5, synErr.Col)
}

package export

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
	"github.com/c360studio/lv2meta/vocabulary/std"
)

func u32(v uint32) *uint32   { return &v }
func f64(v float64) *float64 { return &v }

func testBundle() *model.Bundle {
	return &model.Bundle{
		URI: "http://example.org/bundle/",
		Plugins: []*model.Plugin{{
			URI:     "http://example.org/plug",
			Binary:  "http://example.org/bundle/plug.so",
			Names:   []turtle.Literal{turtle.NewLiteral("Plug")},
			Classes: model.NewClassSet(lv2.ClassPlugin, lv2.ClassReverbPlugin),
			Ports: []*model.Port{{
				Index:   u32(0),
				Symbol:  "gain",
				Classes: model.NewClassSet(lv2.ClassInputPort, lv2.ClassControlPort),
				Range:   &model.ValueRange{Default: f64(0), Minimum: f64(-24), Maximum: f64(24)},
			}},
		}},
	}
}

func objects(doc *turtle.Document, subject turtle.Term, predicate string) []turtle.Term {
	var out []turtle.Term
	for _, st := range doc.Statements {
		if st.Subject == subject && st.Predicate == turtle.IRI(predicate) {
			out = append(out, st.Object)
		}
	}
	return out
}

func TestSplit_ManifestAndDataDoc(t *testing.T) {
	docs, err := Split(testBundle(), vocabulary.Default())
	require.NoError(t, err)
	require.Contains(t, docs, ManifestName)
	require.Contains(t, docs, "plug.ttl")

	plug := turtle.IRI("http://example.org/plug")
	manifest := docs[ManifestName]
	assert.Equal(t, []turtle.Term{turtle.IRI(lv2.ClassPlugin)}, objects(manifest, plug, std.RDFType))
	assert.Equal(t, []turtle.Term{turtle.IRI("http://example.org/bundle/plug.so")}, objects(manifest, plug, lv2.PropBinary))
	assert.Equal(t, []turtle.Term{turtle.IRI("http://example.org/bundle/plug.ttl")}, objects(manifest, plug, std.RDFSSeeAlso))

	data := docs["plug.ttl"]
	assert.Len(t, objects(data, plug, std.RDFType), 2)
	ports := objects(data, plug, lv2.PropPort)
	require.Len(t, ports, 1)
	node := ports[0]
	assert.Equal(t, []turtle.Term{turtle.NewLiteral("gain")}, objects(data, node, lv2.PropSymbol))
	assert.Equal(t,
		[]turtle.Term{turtle.NewTypedLiteral("-24.0", turtle.XSDDecimal)},
		objects(data, node, lv2.PropMinimum))
}

func TestSplit_MirrorsRecordedSeeAlso(t *testing.T) {
	b := testBundle()
	b.Plugins[0].SeeAlso = []string{"http://example.org/bundle/custom.ttl"}

	docs, err := Split(b, vocabulary.Default())
	require.NoError(t, err)
	require.Contains(t, docs, "custom.ttl")
	assert.NotContains(t, docs, "plug.ttl")

	manifest := docs[ManifestName]
	plug := turtle.IRI("http://example.org/plug")
	assert.Equal(t,
		[]turtle.Term{turtle.IRI("http://example.org/bundle/custom.ttl")},
		objects(manifest, plug, std.RDFSSeeAlso))
}

func TestSplit_PrefixesMinimal(t *testing.T) {
	docs, err := Split(testBundle(), vocabulary.Default())
	require.NoError(t, err)

	manifest := docs[ManifestName]
	assert.Contains(t, manifest.Prefixes, "lv2")
	assert.Contains(t, manifest.Prefixes, "rdf")
	assert.Contains(t, manifest.Prefixes, "rdfs")
	assert.NotContains(t, manifest.Prefixes, "units")
	assert.NotContains(t, manifest.Prefixes, "atom")
	assert.NotContains(t, manifest.Prefixes, "foaf")
}

func TestSplit_ExtraPayloadPreserved(t *testing.T) {
	b := testBundle()
	b.Plugins[0].Extra.Add("http://example.org/color", turtle.NewLiteral("blue"))

	docs, err := Split(b, vocabulary.Default())
	require.NoError(t, err)
	data := docs["plug.ttl"]
	plug := turtle.IRI("http://example.org/plug")
	assert.Equal(t,
		[]turtle.Term{turtle.NewLiteral("blue")},
		objects(data, plug, "http://example.org/color"))
}

func TestSplit_ExtraBlankDescriptionWritten(t *testing.T) {
	b := testBundle()
	node := turtle.BlankNode("d0_genid1")
	b.Plugins[0].Extra = model.PropertyBag{{
		Predicate: "http://example.org/thing",
		Object:    node,
		Nested: model.PropertyBag{{
			Predicate: "http://example.org/x",
			Object:    turtle.NewLiteral("nested"),
		}},
	}}

	docs, err := Split(b, vocabulary.Default())
	require.NoError(t, err)
	data := docs["plug.ttl"]

	plug := turtle.IRI("http://example.org/plug")
	assert.Equal(t, []turtle.Term{node}, objects(data, plug, "http://example.org/thing"))

	// The blank node's own statements follow it into the document.
	assert.Equal(t,
		[]turtle.Term{turtle.NewLiteral("nested")},
		objects(data, node, "http://example.org/x"))
}

func TestSplit_NaNRangeFails(t *testing.T) {
	b := testBundle()
	b.Plugins[0].Ports[0].Range.Default = f64(math.NaN())

	_, err := Split(b, vocabulary.Default())
	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "http://example.org/plug", serr.Subject)
}

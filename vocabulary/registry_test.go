package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2meta/vocabulary/lv2"
)

func TestRegistry_KindOf(t *testing.T) {
	r := Default()

	tests := []struct {
		name    string
		classes []string
		want    EntityKind
	}{
		{"plugin base class", []string{lv2.ClassPlugin}, KindPlugin},
		{"category only", []string{lv2.ClassReverbPlugin}, KindPlugin},
		{"port direction class", []string{lv2.ClassInputPort}, KindPort},
		{"port buffer class", []string{lv2.ClassAudioPort}, KindPort},
		{"multiple port classes", []string{lv2.ClassInputPort, lv2.ClassControlPort}, KindPort},
		{"project", []string{"http://usefulinc.com/ns/doap#Project"}, KindProject},
		{"dyn manifest", []string{"http://lv2plug.in/ns/ext/dynmanifest#DynManifest"}, KindDynManifest},
		{"unrecognized", []string{"http://example.org/ns#Gadget"}, KindUnknown},
		{"no classes", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.KindOf(tt.classes))
		})
	}
}

func TestRegistry_Ancestors(t *testing.T) {
	r := Default()

	// Reverb sits under both Delay and Simulator.
	anc := r.Ancestors(lv2.ClassReverbPlugin)
	assert.ElementsMatch(t, []string{lv2.ClassDelayPlugin, lv2.ClassSimulatorPlugin}, anc)

	// ParaEQ climbs ParaEQ -> EQ -> Filter.
	anc = r.Ancestors(lv2.ClassParaEQPlugin)
	assert.ElementsMatch(t, []string{lv2.ClassEQPlugin, lv2.ClassFilterPlugin}, anc)

	// Roots have no ancestors.
	assert.Empty(t, r.Ancestors(lv2.ClassUtilityPlugin))
	assert.Empty(t, r.Ancestors("http://example.org/ns#Gadget"))
}

func TestRegistry_PortClassQueries(t *testing.T) {
	r := Default()
	assert.True(t, r.IsPortDirection(lv2.ClassInputPort))
	assert.True(t, r.IsPortDirection(lv2.ClassOutputPort))
	assert.False(t, r.IsPortDirection(lv2.ClassAudioPort))

	assert.True(t, r.IsPortType(lv2.ClassControlPort))
	assert.True(t, r.IsPortType("http://lv2plug.in/ns/ext/atom#AtomPort"))
	assert.False(t, r.IsPortType(lv2.ClassInputPort))

	assert.True(t, r.IsPluginCategory(lv2.ClassCompressorPlugin))
	assert.False(t, r.IsPluginCategory(lv2.ClassPlugin))
}

func TestRegistry_WithExtensions(t *testing.T) {
	cfg := []byte(`
extensions:
  - prefix: ev
    namespace: http://example.org/ext/event#
    classes:
      - iri: EventPort
        port_type: true
      - iri: http://example.org/ext/event#SidechainPort
        port_direction: true
`)
	base := Default()
	r, err := base.WithExtensions(cfg)
	require.NoError(t, err)

	assert.True(t, r.IsPortType("http://example.org/ext/event#EventPort"))
	assert.True(t, r.IsPortDirection("http://example.org/ext/event#SidechainPort"))
	assert.Equal(t, KindPort, r.KindOf([]string{"http://example.org/ext/event#EventPort"}))
	assert.Equal(t, "http://example.org/ext/event#", r.Prefixes()["ev"])

	// The base registry is untouched.
	assert.False(t, base.IsPortType("http://example.org/ext/event#EventPort"))
	assert.Equal(t, KindUnknown, base.KindOf([]string{"http://example.org/ext/event#EventPort"}))
}

func TestRegistry_WithExtensions_Invalid(t *testing.T) {
	_, err := Default().WithExtensions([]byte(`extensions: [`))
	require.Error(t, err)

	_, err = Default().WithExtensions([]byte(`
extensions:
  - prefix: x
    namespace: http://example.org/x#
    classes:
      - iri: Thing
        kind: gizmo
`))
	require.Error(t, err)
}

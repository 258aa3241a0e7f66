package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/turtle"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
)

func u32(v uint32) *uint32   { return &v }
func f64(v float64) *float64 { return &v }

// validPlugin builds a plugin that passes every check, for tests to break
// one rule at a time.
func validPlugin() *model.Plugin {
	return &model.Plugin{
		URI:     "http://example.org/plug",
		Binary:  "http://example.org/plug.so",
		Names:   []turtle.Literal{turtle.NewLiteral("Plug")},
		Classes: model.NewClassSet(lv2.ClassPlugin),
		Ports: []*model.Port{
			{
				Index:   u32(0),
				Symbol:  "in",
				Classes: model.NewClassSet(lv2.ClassInputPort, lv2.ClassAudioPort),
			},
			{
				Index:   u32(1),
				Symbol:  "gain",
				Classes: model.NewClassSet(lv2.ClassInputPort, lv2.ClassControlPort),
				Range:   &model.ValueRange{Default: f64(0), Minimum: f64(-24), Maximum: f64(24)},
			},
		},
	}
}

func codes(errs []Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_CleanBundle(t *testing.T) {
	b := &model.Bundle{Plugins: []*model.Plugin{validPlugin()}}
	assert.Empty(t, Validate(b, vocabulary.Default()))
}

func TestValidate_PluginRules(t *testing.T) {
	reg := vocabulary.Default()

	tests := []struct {
		name   string
		mutate func(*model.Plugin)
		want   string
	}{
		{
			name:   "missing binary",
			mutate: func(p *model.Plugin) { p.Binary = "" },
			want:   CodeMissingBinary,
		},
		{
			name:   "missing name",
			mutate: func(p *model.Plugin) { p.Names = nil },
			want:   CodeMissingName,
		},
		{
			name: "missing base class",
			mutate: func(p *model.Plugin) {
				p.Classes = model.NewClassSet(lv2.ClassReverbPlugin)
			},
			want: CodeMissingPluginClass,
		},
		{
			name:   "invalid plugin symbol",
			mutate: func(p *model.Plugin) { p.Symbol = "9bad" },
			want:   CodeInvalidSymbol,
		},
		{
			name: "feature overlap",
			mutate: func(p *model.Plugin) {
				p.RequiredFeatures = []string{lv2.FeatureHardRTCapable}
				p.OptionalFeatures = []string{lv2.FeatureHardRTCapable}
			},
			want: CodeFeatureOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlugin()
			tt.mutate(p)
			errs := Validate(&model.Bundle{Plugins: []*model.Plugin{p}}, reg)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0].Code)
			assert.Equal(t, p.URI, errs[0].Subject)
		})
	}
}

func TestValidate_DuplicatePluginURI(t *testing.T) {
	b := &model.Bundle{Plugins: []*model.Plugin{validPlugin(), validPlugin()}}
	errs := Validate(b, vocabulary.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, CodeDuplicatePluginURI, errs[0].Code)
}

func TestValidate_PortRules(t *testing.T) {
	reg := vocabulary.Default()

	tests := []struct {
		name   string
		mutate func(*model.Plugin)
		want   []string
	}{
		{
			name:   "missing index",
			mutate: func(p *model.Plugin) { p.Ports[1].Index = nil },
			want:   []string{CodePortIndexMissing},
		},
		{
			name:   "duplicate index",
			mutate: func(p *model.Plugin) { p.Ports[1].Index = u32(0) },
			want:   []string{CodePortIndexDuplicate},
		},
		{
			name:   "index gap",
			mutate: func(p *model.Plugin) { p.Ports[1].Index = u32(5) },
			want:   []string{CodePortIndexGap},
		},
		{
			name:   "missing symbol",
			mutate: func(p *model.Plugin) { p.Ports[1].Symbol = "" },
			want:   []string{CodePortSymbolMissing},
		},
		{
			name:   "invalid symbol",
			mutate: func(p *model.Plugin) { p.Ports[1].Symbol = "with space" },
			want:   []string{CodePortSymbolInvalid},
		},
		{
			name:   "duplicate symbol",
			mutate: func(p *model.Plugin) { p.Ports[1].Symbol = "in" },
			want:   []string{CodePortSymbolDuplicate},
		},
		{
			name: "no direction",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Classes = model.NewClassSet(lv2.ClassControlPort)
			},
			want: []string{CodePortNoDirection},
		},
		{
			name: "no buffer type",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Classes = model.NewClassSet(lv2.ClassInputPort)
			},
			want: []string{CodePortNoType},
		},
		{
			name: "audio control conflict",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Classes = model.NewClassSet(lv2.ClassInputPort, lv2.ClassAudioPort, lv2.ClassControlPort)
			},
			want: []string{CodePortTypeConflict},
		},
		{
			name: "cv control conflict",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Classes = model.NewClassSet(lv2.ClassInputPort, lv2.ClassCVPort, lv2.ClassControlPort)
			},
			want: []string{CodePortTypeConflict},
		},
		{
			name: "minimum above maximum",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Range = &model.ValueRange{Minimum: f64(10), Maximum: f64(-10)}
			},
			want: []string{CodeRangeOrder},
		},
		{
			name: "default outside range",
			mutate: func(p *model.Plugin) {
				p.Ports[1].Range = &model.ValueRange{Default: f64(100), Minimum: f64(0), Maximum: f64(1)}
			},
			want: []string{CodeRangeOrder},
		},
		{
			name: "duplicate scale point label",
			mutate: func(p *model.Plugin) {
				p.Ports[1].ScalePoints = []model.ScalePoint{
					{Label: "Off", Value: 0},
					{Label: "Off", Value: 1},
				}
			},
			want: []string{CodeScalePointDuplicate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlugin()
			tt.mutate(p)
			errs := Validate(&model.Bundle{Plugins: []*model.Plugin{p}}, reg)
			assert.Equal(t, tt.want, codes(errs))
		})
	}
}

func TestValidate_PartialRangeAllowed(t *testing.T) {
	p := validPlugin()
	p.Ports[1].Range = &model.ValueRange{Default: f64(3)}
	assert.Empty(t, Validate(&model.Bundle{Plugins: []*model.Plugin{p}}, vocabulary.Default()))
}

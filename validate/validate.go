// Package validate checks a mapped bundle against the structural rules LV2
// hosts rely on. Validation is pure and deterministic: same bundle, same
// errors, in the same order. It never mutates the bundle and never touches
// the graph the bundle was mapped from.
package validate

import (
	"fmt"
	"sort"

	"github.com/c360studio/lv2meta/model"
	"github.com/c360studio/lv2meta/vocabulary"
	"github.com/c360studio/lv2meta/vocabulary/lv2"
)

// Error codes. Stable: tooling matches on them.
const (
	CodeDuplicatePluginURI  = "duplicate-plugin-uri"
	CodeMissingPluginClass  = "missing-plugin-class"
	CodeMissingBinary       = "missing-binary"
	CodeMissingName         = "missing-name"
	CodeInvalidSymbol       = "invalid-symbol"
	CodeFeatureOverlap      = "feature-overlap"
	CodePortIndexMissing    = "port-index-missing"
	CodePortIndexDuplicate  = "port-index-duplicate"
	CodePortIndexGap        = "port-index-gap"
	CodePortSymbolMissing   = "port-symbol-missing"
	CodePortSymbolInvalid   = "port-symbol-invalid"
	CodePortSymbolDuplicate = "port-symbol-duplicate"
	CodePortNoDirection     = "port-no-direction"
	CodePortNoType          = "port-no-type"
	CodePortTypeConflict    = "port-type-conflict"
	CodeRangeOrder          = "range-order"
	CodeScalePointDuplicate = "scale-point-duplicate-label"
)

// Error is one violated structural rule.
type Error struct {
	// Code is the stable machine-readable rule identifier.
	Code string

	// Subject is the plugin URI the rule was violated on.
	Subject string

	// Detail is the human-readable specifics, naming the port where one is
	// involved.
	Detail string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Subject, e.Detail)
}

// Validate checks every plugin in the bundle. The registry supplies the
// port direction and buffer-type class sets, so extension-defined port
// classes satisfy the direction/type requirements when the registry knows
// them.
func Validate(b *model.Bundle, reg *vocabulary.Registry) []Error {
	v := &validator{reg: reg}

	seen := make(map[string]bool)
	for _, p := range b.Plugins {
		if seen[p.URI] {
			v.add(CodeDuplicatePluginURI, p.URI, "plugin URI declared more than once")
			continue
		}
		seen[p.URI] = true
		v.plugin(p)
	}
	return v.errs
}

type validator struct {
	reg  *vocabulary.Registry
	errs []Error
}

func (v *validator) add(code, subject, format string, args ...any) {
	v.errs = append(v.errs, Error{
		Code:    code,
		Subject: subject,
		Detail:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) plugin(p *model.Plugin) {
	if !p.Classes.Contains(lv2.ClassPlugin) {
		v.add(CodeMissingPluginClass, p.URI, "plugin does not declare the lv2:Plugin class")
	}
	if p.Binary == "" {
		v.add(CodeMissingBinary, p.URI, "plugin has no lv2:binary")
	}
	if len(p.Names) == 0 {
		v.add(CodeMissingName, p.URI, "plugin has no doap:name")
	}
	if p.Symbol != "" && !p.Symbol.Valid() {
		v.add(CodeInvalidSymbol, p.URI, "plugin symbol %q is not a valid LV2 symbol", p.Symbol)
	}
	v.features(p)
	v.ports(p)
}

// features checks that no feature is declared both required and optional.
func (v *validator) features(p *model.Plugin) {
	required := make(map[string]bool, len(p.RequiredFeatures))
	for _, f := range p.RequiredFeatures {
		required[f] = true
	}
	for _, f := range p.OptionalFeatures {
		if required[f] {
			v.add(CodeFeatureOverlap, p.URI, "feature %s declared both required and optional", f)
		}
	}
}

func (v *validator) ports(p *model.Plugin) {
	indices := make(map[uint32][]string)
	symbols := make(map[model.Symbol]int)
	missingIndex := false

	for _, port := range p.Ports {
		label := portLabel(port)

		if port.Index == nil {
			v.add(CodePortIndexMissing, p.URI, "port %s has no lv2:index", label)
			missingIndex = true
		} else {
			indices[*port.Index] = append(indices[*port.Index], label)
		}

		switch {
		case port.Symbol == "":
			v.add(CodePortSymbolMissing, p.URI, "port %s has no lv2:symbol", label)
		case !port.Symbol.Valid():
			v.add(CodePortSymbolInvalid, p.URI, "port symbol %q is not a valid LV2 symbol", port.Symbol)
		default:
			symbols[port.Symbol]++
		}

		v.portClasses(p.URI, port, label)
		v.portRange(p.URI, port, label)
		v.scalePoints(p.URI, port, label)
	}

	for _, sym := range symbolOrder(p.Ports) {
		if symbols[sym] > 1 {
			v.add(CodePortSymbolDuplicate, p.URI, "port symbol %q used by %d ports", sym, symbols[sym])
		}
	}

	for _, idx := range sortedIndices(indices) {
		if labels := indices[idx]; len(labels) > 1 {
			v.add(CodePortIndexDuplicate, p.URI, "port index %d used by ports %v", idx, labels)
		}
	}

	// Contiguity only makes sense once every port has a distinct index.
	if !missingIndex && len(indices) == len(p.Ports) {
		for want := uint32(0); int(want) < len(p.Ports); want++ {
			if _, ok := indices[want]; !ok {
				v.add(CodePortIndexGap, p.URI, "port indices are not contiguous: missing index %d", want)
			}
		}
	}
}

func (v *validator) portClasses(uri string, port *model.Port, label string) {
	if len(port.Directions(v.reg.IsPortDirection)) == 0 {
		v.add(CodePortNoDirection, uri, "port %s declares no direction class (lv2:InputPort or lv2:OutputPort)", label)
	}
	types := port.Types(v.reg.IsPortType)
	if len(types) == 0 {
		v.add(CodePortNoType, uri, "port %s declares no buffer type class", label)
	}

	audio := port.Classes.Contains(lv2.ClassAudioPort)
	control := port.Classes.Contains(lv2.ClassControlPort)
	cv := port.Classes.Contains(lv2.ClassCVPort)
	switch {
	case audio && control:
		v.add(CodePortTypeConflict, uri, "port %s is both lv2:AudioPort and lv2:ControlPort", label)
	case cv && control:
		v.add(CodePortTypeConflict, uri, "port %s is both lv2:CVPort and lv2:ControlPort", label)
	}
}

func (v *validator) portRange(uri string, port *model.Port, label string) {
	r := port.Range
	if r == nil {
		return
	}
	if r.Minimum != nil && r.Maximum != nil && *r.Minimum > *r.Maximum {
		v.add(CodeRangeOrder, uri, "port %s: minimum %g exceeds maximum %g", label, *r.Minimum, *r.Maximum)
	}
	if r.Default != nil && r.Minimum != nil && *r.Default < *r.Minimum {
		v.add(CodeRangeOrder, uri, "port %s: default %g below minimum %g", label, *r.Default, *r.Minimum)
	}
	if r.Default != nil && r.Maximum != nil && *r.Default > *r.Maximum {
		v.add(CodeRangeOrder, uri, "port %s: default %g above maximum %g", label, *r.Default, *r.Maximum)
	}
}

func (v *validator) scalePoints(uri string, port *model.Port, label string) {
	seen := make(map[string]bool, len(port.ScalePoints))
	for _, sp := range port.ScalePoints {
		if seen[sp.Label] {
			v.add(CodeScalePointDuplicate, uri, "port %s: scale point label %q repeated", label, sp.Label)
			continue
		}
		seen[sp.Label] = true
	}
}

// portLabel identifies a port in error detail: the symbol when present,
// else the index, else a placeholder.
func portLabel(port *model.Port) string {
	if port.Symbol != "" {
		return string(port.Symbol)
	}
	if port.Index != nil {
		return fmt.Sprintf("#%d", *port.Index)
	}
	return "(unidentified)"
}

func sortedIndices(m map[uint32][]string) []uint32 {
	out := make([]uint32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func symbolOrder(ports []*model.Port) []model.Symbol {
	var out []model.Symbol
	seen := make(map[model.Symbol]bool)
	for _, p := range ports {
		if p.Symbol != "" && !seen[p.Symbol] {
			seen[p.Symbol] = true
			out = append(out, p.Symbol)
		}
	}
	return out
}

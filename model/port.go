package model

import "github.com/c360studio/lv2meta/turtle"

// ValueRange is a control port's numeric range. Any endpoint may be absent;
// when default, minimum and maximum are all present the validator enforces
// minimum <= default <= maximum.
type ValueRange struct {
	Default *float64
	Minimum *float64
	Maximum *float64
}

// ScalePoint is a labeled marker value on a control port's range.
type ScalePoint struct {
	Label string
	Value float64
}

// UnitsPayload is the typed payload for the units extension.
type UnitsPayload struct {
	// Unit is the unit IRI, standard or bundle-defined.
	Unit string

	// Render and Symbol describe bundle-defined units inline.
	Render string
	Symbol string
}

// AtomPayload is the typed payload for the atom extension on a port.
type AtomPayload struct {
	// BufferType is the atom class of the port buffer, e.g. atom:Sequence.
	BufferType string

	// Supports lists payload type IRIs the port understands.
	Supports []string
}

// PortPropertiesPayload is the typed payload for the numeric predicates of
// the port-properties extension. Boolean-style properties (trigger,
// logarithmic, ...) live in Port.Properties instead.
type PortPropertiesPayload struct {
	RangeSteps      *uint32
	DisplayPriority *uint32
}

// Port is one plugin port. A port belongs to exactly one plugin.
type Port struct {
	// Index is the zero-based port position. Absent when the bundle failed
	// to declare one; the validator reports that.
	Index *uint32

	// Symbol identifies the port within its plugin.
	Symbol Symbol

	// Names holds the human-readable names, possibly one per language.
	Names []turtle.Literal

	// Classes holds every class IRI the port declared: directions, buffer
	// types, and anything unrecognized.
	Classes ClassSet

	// Range is present when any of lv2:default/minimum/maximum was given.
	Range *ValueRange

	// Designations are lv2:designation object IRIs.
	Designations []string

	// Properties are lv2:portProperty object IRIs, recognized or not.
	Properties ClassSet

	ScalePoints []ScalePoint

	// Typed extension payloads; nil when the extension is unused.
	Units     *UnitsPayload
	Atom      *AtomPayload
	PortProps *PortPropertiesPayload

	// Extra retains unrecognized predicate-object pairs verbatim.
	Extra PropertyBag
}

// Name returns the port's untagged name, falling back to the first name in
// any language, or "".
func (p *Port) Name() string {
	for _, lit := range p.Names {
		if lit.Lang == "" {
			return lit.Value
		}
	}
	if len(p.Names) > 0 {
		return p.Names[0].Value
	}
	return ""
}

// Directions returns the port's direction class IRIs per isDirection.
func (p *Port) Directions(isDirection func(string) bool) []string {
	return p.Classes.Filter(isDirection)
}

// Types returns the port's buffer-type class IRIs per isType.
func (p *Port) Types(isType func(string) bool) []string {
	return p.Classes.Filter(isType)
}

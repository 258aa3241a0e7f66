// Package units defines IRI constants for the LV2 units extension
// (http://lv2plug.in/ns/extensions/units).
package units

// Namespace is the base IRI prefix for the units extension.
const Namespace = "http://lv2plug.in/ns/extensions/units#"

// Prefix is the conventional prefix label.
const Prefix = "units"

// Predicates.
const (
	// PropUnit assigns a measurement unit to a port.
	PropUnit = Namespace + "unit"

	// PropRender is a printf-style template for displaying values.
	PropRender = Namespace + "render"

	// PropSymbol is the unit's abbreviation, e.g. "dB".
	PropSymbol = Namespace + "symbol"
)

// ClassUnit is the class of measurement units; user-defined units declare it.
const ClassUnit = Namespace + "Unit"

// Standard unit instances.
const (
	UnitBar           = Namespace + "bar"
	UnitBeat          = Namespace + "beat"
	UnitBPM           = Namespace + "bpm"
	UnitCent          = Namespace + "cent"
	UnitCentimeter    = Namespace + "cm"
	UnitCoefficient   = Namespace + "coef"
	UnitDecibel       = Namespace + "db"
	UnitDegree        = Namespace + "degree"
	UnitFrame         = Namespace + "frame"
	UnitHertz         = Namespace + "hz"
	UnitInch          = Namespace + "inch"
	UnitKilohertz     = Namespace + "khz"
	UnitKilometer     = Namespace + "km"
	UnitMeter         = Namespace + "m"
	UnitMegahertz     = Namespace + "mhz"
	UnitMIDINote      = Namespace + "midiNote"
	UnitMile          = Namespace + "mile"
	UnitMinute        = Namespace + "min"
	UnitMillimeter    = Namespace + "mm"
	UnitMillisecond   = Namespace + "ms"
	UnitOctave        = Namespace + "oct"
	UnitPercent       = Namespace + "pc"
	UnitSecond        = Namespace + "s"
	UnitSemitone12TET = Namespace + "semitone12TET"
)

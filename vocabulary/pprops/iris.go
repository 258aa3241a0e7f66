// Package pprops defines IRI constants for the LV2 port-properties
// extension (http://lv2plug.in/ns/ext/port-props).
package pprops

// Namespace is the base IRI prefix for the port-properties extension.
const Namespace = "http://lv2plug.in/ns/ext/port-props#"

// Prefix is the conventional prefix label.
const Prefix = "pprops"

// Port property IRIs (objects of lv2:portProperty).
const (
	PropertyTrigger              = Namespace + "trigger"
	PropertyLogarithmic          = Namespace + "logarithmic"
	PropertyNotOnGUI             = Namespace + "notOnGUI"
	PropertyNotAutomatic         = Namespace + "notAutomatic"
	PropertyExpensive            = Namespace + "expensive"
	PropertyCausesArtifacts      = Namespace + "causesArtifacts"
	PropertyContinuousCV         = Namespace + "continuousCV"
	PropertyDiscreteCV           = Namespace + "discreteCV"
	PropertyHasStrictBounds      = Namespace + "hasStrictBounds"
	PropertySupportsStrictBounds = Namespace + "supportsStrictBounds"
)

// PropRangeSteps hints how many steps a host control should use across the
// port's range.
const PropRangeSteps = Namespace + "rangeSteps"

// PropDisplayPriority orders ports by importance for constrained UIs.
const PropDisplayPriority = Namespace + "displayPriority"

// Package lv2 defines IRI constants for the LV2 core vocabulary
// (http://lv2plug.in/ns/lv2core).
package lv2

// Namespace is the base IRI prefix for LV2 core vocabulary terms.
const Namespace = "http://lv2plug.in/ns/lv2core#"

// Prefix is the conventional prefix label for the core namespace.
const Prefix = "lv2"

// Plugin class IRIs. Categories form a hierarchy; see Superclasses.
const (
	// ClassPlugin is the base class every plugin must declare.
	ClassPlugin = Namespace + "Plugin"

	ClassDelayPlugin      = Namespace + "DelayPlugin"
	ClassReverbPlugin     = Namespace + "ReverbPlugin"
	ClassDistortionPlugin = Namespace + "DistortionPlugin"
	ClassWaveshaperPlugin = Namespace + "WaveshaperPlugin"
	ClassDynamicsPlugin   = Namespace + "DynamicsPlugin"
	ClassAmplifierPlugin  = Namespace + "AmplifierPlugin"
	ClassCompressorPlugin = Namespace + "CompressorPlugin"
	ClassEnvelopePlugin   = Namespace + "EnvelopePlugin"
	ClassExpanderPlugin   = Namespace + "ExpanderPlugin"
	ClassGatePlugin       = Namespace + "GatePlugin"
	ClassLimiterPlugin    = Namespace + "LimiterPlugin"
	ClassFilterPlugin     = Namespace + "FilterPlugin"
	ClassAllpassPlugin    = Namespace + "AllpassPlugin"
	ClassBandpassPlugin   = Namespace + "BandpassPlugin"
	ClassCombPlugin       = Namespace + "CombPlugin"
	ClassEQPlugin         = Namespace + "EQPlugin"
	ClassMultiEQPlugin    = Namespace + "MultiEQPlugin"
	ClassParaEQPlugin     = Namespace + "ParaEQPlugin"
	ClassHighpassPlugin   = Namespace + "HighpassPlugin"
	ClassLowpassPlugin    = Namespace + "LowpassPlugin"
	ClassGeneratorPlugin  = Namespace + "GeneratorPlugin"
	ClassConstantPlugin   = Namespace + "ConstantPlugin"
	ClassInstrumentPlugin = Namespace + "InstrumentPlugin"
	ClassOscillatorPlugin = Namespace + "OscillatorPlugin"
	ClassMIDIPlugin       = Namespace + "MIDIPlugin"
	ClassModulatorPlugin  = Namespace + "ModulatorPlugin"
	ClassChorusPlugin     = Namespace + "ChorusPlugin"
	ClassFlangerPlugin    = Namespace + "FlangerPlugin"
	ClassPhaserPlugin     = Namespace + "PhaserPlugin"
	ClassSimulatorPlugin  = Namespace + "SimulatorPlugin"
	ClassSpatialPlugin    = Namespace + "SpatialPlugin"
	ClassSpectralPlugin   = Namespace + "SpectralPlugin"
	ClassPitchPlugin      = Namespace + "PitchPlugin"
	ClassUtilityPlugin    = Namespace + "UtilityPlugin"
	ClassAnalyserPlugin   = Namespace + "AnalyserPlugin"
	ClassConverterPlugin  = Namespace + "ConverterPlugin"
	ClassFunctionPlugin   = Namespace + "FunctionPlugin"
	ClassMixerPlugin      = Namespace + "MixerPlugin"
)

// Port class IRIs. Direction classes (InputPort, OutputPort) are not
// mutually exclusive with each other in the LV2 data model, but every port
// needs at least one of them. Buffer type classes (AudioPort, ControlPort,
// CVPort) describe the connected buffer format.
const (
	ClassPort        = Namespace + "Port"
	ClassInputPort   = Namespace + "InputPort"
	ClassOutputPort  = Namespace + "OutputPort"
	ClassAudioPort   = Namespace + "AudioPort"
	ClassControlPort = Namespace + "ControlPort"
	ClassCVPort      = Namespace + "CVPort"
)

// Core predicate IRIs.
const (
	// PropBinary points to the shared library implementing the plugin.
	PropBinary = Namespace + "binary"

	// PropPort links a plugin to one of its ports.
	PropPort = Namespace + "port"

	// PropSymbol is the machine-readable identifier of a plugin or port.
	PropSymbol = Namespace + "symbol"

	// PropName is the human-readable name of a port.
	PropName = Namespace + "name"

	// PropShortName is a name of at most 16 characters.
	PropShortName = Namespace + "shortName"

	// PropIndex is the zero-based position of a port within its plugin.
	PropIndex = Namespace + "index"

	// PropDefault, PropMinimum and PropMaximum describe a control value
	// range; when all are present, minimum <= default <= maximum must hold.
	PropDefault = Namespace + "default"
	PropMinimum = Namespace + "minimum"
	PropMaximum = Namespace + "maximum"

	// PropScalePoint links a port to a labeled value marker.
	PropScalePoint = Namespace + "scalePoint"

	// PropDesignation assigns a standard meaning to a port's value.
	PropDesignation = Namespace + "designation"

	// PropPortProperty attaches a port property class to a port.
	PropPortProperty = Namespace + "portProperty"

	// PropRequiredFeature and PropOptionalFeature declare host features; the
	// two sets must be disjoint for a given plugin.
	PropRequiredFeature = Namespace + "requiredFeature"
	PropOptionalFeature = Namespace + "optionalFeature"

	// PropExtensionData lists extension interfaces the plugin binary
	// provides.
	PropExtensionData = Namespace + "extensionData"

	// PropProject links a plugin to its doap project description.
	PropProject = Namespace + "project"

	// PropDocumentation carries embedded XHTML documentation.
	PropDocumentation = Namespace + "documentation"

	// PropMinorVersion and PropMicroVersion carry the resource version. An
	// even minor/micro pair marks a stable release; minor 0 marks a
	// pre-release.
	PropMinorVersion = Namespace + "minorVersion"
	PropMicroVersion = Namespace + "microVersion"
)

// Core port property IRIs (objects of PropPortProperty).
const (
	PropertyConnectionOptional = Namespace + "connectionOptional"
	PropertyReportsLatency     = Namespace + "reportsLatency"
	PropertyToggled            = Namespace + "toggled"
	PropertyEnumeration        = Namespace + "enumeration"
	PropertyInteger            = Namespace + "integer"
	PropertySampleRate         = Namespace + "sampleRate"
)

// Core feature IRIs (objects of PropRequiredFeature / PropOptionalFeature).
const (
	FeatureHardRTCapable = Namespace + "hardRTCapable"
	FeatureInPlaceBroken = Namespace + "inPlaceBroken"
	FeatureIsLive        = Namespace + "isLive"
)

// Superclasses maps each plugin category to its direct parents within the
// category hierarchy, excluding the implicit ClassPlugin root. A category
// explicitly declared on a plugin implies all its ancestors.
var Superclasses = map[string][]string{
	ClassReverbPlugin:     {ClassDelayPlugin, ClassSimulatorPlugin},
	ClassWaveshaperPlugin: {ClassDistortionPlugin},
	ClassAmplifierPlugin:  {ClassDynamicsPlugin},
	ClassCompressorPlugin: {ClassDynamicsPlugin},
	ClassEnvelopePlugin:   {ClassDynamicsPlugin},
	ClassExpanderPlugin:   {ClassDynamicsPlugin},
	ClassGatePlugin:       {ClassDynamicsPlugin},
	ClassLimiterPlugin:    {ClassDynamicsPlugin},
	ClassAllpassPlugin:    {ClassFilterPlugin},
	ClassBandpassPlugin:   {ClassFilterPlugin},
	ClassCombPlugin:       {ClassFilterPlugin},
	ClassEQPlugin:         {ClassFilterPlugin},
	ClassMultiEQPlugin:    {ClassEQPlugin},
	ClassParaEQPlugin:     {ClassEQPlugin},
	ClassHighpassPlugin:   {ClassFilterPlugin},
	ClassLowpassPlugin:    {ClassFilterPlugin},
	ClassConstantPlugin:   {ClassGeneratorPlugin},
	ClassInstrumentPlugin: {ClassGeneratorPlugin},
	ClassOscillatorPlugin: {ClassGeneratorPlugin},
	ClassChorusPlugin:     {ClassModulatorPlugin},
	ClassFlangerPlugin:    {ClassModulatorPlugin},
	ClassPhaserPlugin:     {ClassModulatorPlugin},
	ClassPitchPlugin:      {ClassSpectralPlugin},
	ClassAnalyserPlugin:   {ClassUtilityPlugin},
	ClassConverterPlugin:  {ClassUtilityPlugin},
	ClassFunctionPlugin:   {ClassUtilityPlugin},
	ClassMixerPlugin:      {ClassUtilityPlugin},
}

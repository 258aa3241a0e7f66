// Package atom defines IRI constants for the LV2 atom extension
// (http://lv2plug.in/ns/ext/atom), plus the midi:MidiEvent class commonly
// used as an atom sequence payload type.
package atom

// Namespace is the base IRI prefix for the atom extension.
const Namespace = "http://lv2plug.in/ns/ext/atom#"

// Prefix is the conventional prefix label.
const Prefix = "atom"

// MIDINamespace is the base IRI for the midi extension; only its event
// class is needed here.
const (
	MIDINamespace  = "http://lv2plug.in/ns/ext/midi#"
	ClassMIDIEvent = MIDINamespace + "MidiEvent"
)

// ClassAtomPort marks a port that reads or writes atoms.
const ClassAtomPort = Namespace + "AtomPort"

// Predicates.
const (
	// PropBufferType declares the atom type of an atom port's buffer,
	// typically atom:Sequence.
	PropBufferType = Namespace + "bufferType"

	// PropSupports lists the payload types the port understands.
	PropSupports = Namespace + "supports"
)

// Atom type class IRIs.
const (
	ClassAtom     = Namespace + "Atom"
	ClassBool     = Namespace + "Bool"
	ClassChunk    = Namespace + "Chunk"
	ClassDouble   = Namespace + "Double"
	ClassFloat    = Namespace + "Float"
	ClassInt      = Namespace + "Int"
	ClassLiteral  = Namespace + "Literal"
	ClassLong     = Namespace + "Long"
	ClassNumber   = Namespace + "Number"
	ClassObject   = Namespace + "Object"
	ClassPath     = Namespace + "Path"
	ClassProperty = Namespace + "Property"
	ClassSequence = Namespace + "Sequence"
	ClassSound    = Namespace + "Sound"
	ClassString   = Namespace + "String"
	ClassTuple    = Namespace + "Tuple"
	ClassURI      = Namespace + "URI"
	ClassURID     = Namespace + "URID"
	ClassVector   = Namespace + "Vector"
)

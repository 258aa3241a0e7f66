// Package dman defines IRI constants for the LV2 dynamic manifest
// extension (http://lv2plug.in/ns/ext/dynmanifest).
package dman

// Namespace is the base IRI prefix for the dynamic manifest extension.
const Namespace = "http://lv2plug.in/ns/ext/dynmanifest#"

// Prefix is the conventional prefix label.
const Prefix = "dman"

// ClassDynManifest marks a manifest entry whose plugin descriptions are
// generated at load time by a shared library rather than stored as Turtle.
const ClassDynManifest = Namespace + "DynManifest"

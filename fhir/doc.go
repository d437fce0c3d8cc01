// Package fhir contains a small set of domain model types in the shape
// produced by the model generator: each type embeds the type it derives from
// and implements the [model.Node] contract for its own fields.
//
// Primitive types (String, Boolean, Code, URI) and complex data types embed
// Element.  Patient embeds Resource.  Children are enumerated in schema
// order, inherited children first.
//
// Matches treats unset fields of the pattern as unconstrained.
package fhir

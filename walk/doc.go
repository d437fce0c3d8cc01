// Package walk provides traversal of node trees built from [model.Node]
// values, using only Children and NamedChildren.
//
// Paths name a node by the field names leading to it from the root, e.g.
//
//	Patient.name[1].given[0]
//
// An index is present on a step only when the parent yields more than one
// child under that name.
package walk

// Package model provides the base contract shared by every generated domain
// model type.
//
// # Overview
//
// Domain model types, such as the resource and data types of a clinical
// standard, are generated in large numbers.  Generic algorithms (copying,
// comparison, validation, display, diffing) are written once against the
// [Node] interface and never need to know the concrete type they operate on.
//
// Every concrete type embeds [Base] by value.  Base supplies
//
//   - an annotation store, a lazily created ordered bag of side channel
//     objects which are not part of the modeled value,
//   - the deprecated UserData map,
//   - property change notification,
//   - [Base.CopyTo], which copies the side channel onto a copy,
//   - default, empty, Children, NamedChildren and Validate.
//
// The concrete type supplies TypeName, DeepCopy, IsExactly, Matches and, if
// it has any child nodes, Children and NamedChildren.
//
// # Copying
//
// A concrete type implements CopyTo by first calling the CopyTo of the type it
// embeds and then copying its own fields; DeepCopy calls CopyTo on a fresh
// value:
//
//	func (c *Coding) DeepCopy() (model.Node, error) {
//		return c.CopyTo(&Coding{})
//	}
//
// The chain ends at [Base.CopyTo], which copies annotations (only if the
// store was ever created) and UserData.  Subscriptions to property change
// notification are never copied.
//
// # Children
//
// Children and NamedChildren enumerate immediate child nodes in schema order:
// children of the embedded type first, then the type's own fields.  The
// enumerations are lazy, restartable and deterministic and never yield nil.
// The helpers [YieldNode], [YieldList], [YieldNamed] and [YieldNamedList]
// make this short to write.
//
// # Annotations
//
// Annotations are queried by Go type with [AnnotationsOf], [FirstAnnotation]
// and [RemoveAnnotationsOf].  A value matches type T when the type assertion
// v.(T) succeeds, so querying by an interface type finds every implementing
// value.  Annotations never take part in IsExactly or Matches.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.  This includes the annotation store,
// UserData and the subscriber list.  Synchronize access externally or copy
// nodes for each goroutine.
package model

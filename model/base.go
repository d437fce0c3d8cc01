package model

import (
	"iter"
	"maps"

	"github.com/signadot/nodebase/debug"
)

// Base is embedded by value in every Node implementation.  The zero value is
// ready to use.
type Base struct {
	annotations *Annotations
	userData    map[string]any

	handlers []handlerEntry
	nextID   uint64
}

func (b *Base) nodeBase() *Base {
	return b
}

// CopyTo copies the side channel of b onto dst and returns dst.  Annotations
// are appended to those of dst, but only if b ever created its store.
// UserData of dst is replaced by a shallow copy of b's.  Property change
// subscriptions are not copied.
//
// Concrete types override CopyTo to copy their own fields, calling the CopyTo
// of the type they embed first.  dst must be a Node; otherwise a
// *ContractMismatchError is returned and dst is untouched.
func (b *Base) CopyTo(dst any) (Node, error) {
	n, ok := dst.(Node)
	if !ok || IsNil(dst) {
		return nil, &ContractMismatchError{Op: "CopyTo", Want: "Node", Got: typeNameOf(dst)}
	}
	db := n.nodeBase()
	if db == b {
		return n, nil
	}
	if b.annotations != nil {
		if debug.Copy() {
			debug.Logf("copy %d annotations to %s\n", b.annotations.Len(), n)
		}
		db.annotationStore().addAll(b.annotations.items)
	}
	db.userData = maps.Clone(b.userData)
	return n, nil
}

// Children returns the empty sequence.
func (b *Base) Children() iter.Seq[Node] {
	return Empty[Node]()
}

// NamedChildren returns the empty sequence.
func (b *Base) NamedChildren() iter.Seq[ElementValue] {
	return Empty[ElementValue]()
}

// Validate returns the empty sequence.
func (b *Base) Validate(ctx *ValidationContext) iter.Seq[ValidationIssue] {
	return Empty[ValidationIssue]()
}

// UserData returns the mutable user data map, which is never nil.
//
// Deprecated: use annotations, which are typed.  UserData is kept for
// compatibility and is copied along with the node.
func (b *Base) UserData() map[string]any {
	if b.userData == nil {
		b.userData = map[string]any{}
	}
	return b.userData
}

package model

import (
	"iter"
	"reflect"
)

// Node is implemented by every domain model type.  Implementations embed
// [Base], which is the only way to satisfy the unexported part of the
// interface.
type Node interface {
	// TypeName names the concrete type, e.g. "Coding".
	TypeName() string

	// DeepCopy returns an independent copy of the node and its subtree,
	// including annotations and UserData.
	DeepCopy() (Node, error)
	// CopyTo copies the node onto dst, which must be of a compatible type,
	// and returns dst.
	CopyTo(dst any) (Node, error)

	// IsExactly reports whether other is structurally identical.
	IsExactly(other Node) bool
	// Matches reports whether the node matches pattern, where pattern
	// constrains only the fields it sets.
	Matches(pattern Node) bool

	Children() iter.Seq[Node]
	NamedChildren() iter.Seq[ElementValue]

	Validate(ctx *ValidationContext) iter.Seq[ValidationIssue]

	AddAnnotation(a any)
	Annotations(match func(any) bool) iter.Seq[any]
	RemoveAnnotations(match func(any) bool)
	AnnotationsCreated() bool

	UserData() map[string]any

	OnPropertyChanged(h PropertyChangedHandler) *Subscription

	nodeBase() *Base
}

// ElementValue is a child node together with the name of the field holding
// it.
type ElementValue struct {
	ElementName string
	Value       Node
}

// Primitive is implemented by nodes holding a single primitive value.
type Primitive interface {
	Node
	// ObjectValue returns the value, or nil if there is none.
	ObjectValue() any
}

// IsNil reports whether n is nil or a nil pointer held by the interface.
func IsNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func typeNameOf(v any) string {
	if IsNil(v) {
		return "nil"
	}
	if n, ok := v.(Node); ok {
		return n.TypeName()
	}
	return reflect.TypeOf(v).String()
}

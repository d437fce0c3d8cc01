package model

import "iter"

// Annotations is an ordered collection of side channel values attached to a
// node.  Values are kept in insertion order and duplicates are retained.
type Annotations struct {
	items []any
}

func (a *Annotations) Add(v any) {
	a.items = append(a.items, v)
}

func (a *Annotations) addAll(vs []any) {
	a.items = append(a.items, vs...)
}

func (a *Annotations) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Filter returns the values for which match returns true, in insertion
// order.  A nil match selects every value.
func (a *Annotations) Filter(match func(any) bool) iter.Seq[any] {
	if a == nil {
		return Empty[any]()
	}
	return func(yield func(any) bool) {
		for _, v := range a.items {
			if match != nil && !match(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Remove removes the values for which match returns true and returns how
// many were removed.
func (a *Annotations) Remove(match func(any) bool) int {
	if a == nil || len(a.items) == 0 {
		return 0
	}
	kept := make([]any, 0, len(a.items))
	for _, v := range a.items {
		if match != nil && !match(v) {
			kept = append(kept, v)
		}
	}
	n := len(a.items) - len(kept)
	a.items = kept
	return n
}

func (b *Base) annotationStore() *Annotations {
	if b.annotations == nil {
		b.annotations = &Annotations{}
	}
	return b.annotations
}

// AddAnnotation appends v to the annotations of the node, creating the store
// if needed.
func (b *Base) AddAnnotation(v any) {
	b.annotationStore().Add(v)
}

// Annotations returns the annotations for which match returns true.  It does
// not create the store.
func (b *Base) Annotations(match func(any) bool) iter.Seq[any] {
	return func(yield func(any) bool) {
		b.annotations.Filter(match)(yield)
	}
}

// RemoveAnnotations removes the annotations for which match returns true.
// It does not create the store.
func (b *Base) RemoveAnnotations(match func(any) bool) {
	b.annotations.Remove(match)
}

// AnnotationsCreated reports whether the annotation store was ever created.
func (b *Base) AnnotationsCreated() bool {
	return b.annotations != nil
}

// OfType returns a match function selecting values of type T.
func OfType[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

// AnnotationsOf returns the annotations of n having type T, in insertion
// order.
func AnnotationsOf[T any](n Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range n.Annotations(nil) {
			t, ok := v.(T)
			if !ok {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FirstAnnotation returns the first annotation of n having type T.
func FirstAnnotation[T any](n Node) (T, bool) {
	for t := range AnnotationsOf[T](n) {
		return t, true
	}
	var zero T
	return zero, false
}

// RemoveAnnotationsOf removes the annotations of n having type T.
func RemoveAnnotationsOf[T any](n Node) {
	n.RemoveAnnotations(OfType[T]())
}

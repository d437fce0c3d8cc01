package model

import "iter"

// Empty returns the empty sequence.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Copy deep copies n, checking that the copy has the same type.
func Copy[T Node](n T) (T, error) {
	var zero T
	if IsNil(n) {
		return zero, nil
	}
	c, err := n.DeepCopy()
	if err != nil {
		return zero, err
	}
	t, ok := c.(T)
	if !ok {
		return zero, Mismatch("DeepCopy", n, c)
	}
	return t, nil
}

// CopyList deep copies each element of ns.  A nil slice stays nil.
func CopyList[T Node](ns []T) ([]T, error) {
	if ns == nil {
		return nil, nil
	}
	res := make([]T, len(ns))
	for i, n := range ns {
		c, err := Copy(n)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// Exactly reports whether a and b are both nil or a.IsExactly(b).
func Exactly[T Node](a, b T) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil == bNil
	}
	return a.IsExactly(b)
}

// ExactlyList compares ns and others element by element.  Nil and empty slices
// are equal.
func ExactlyList[T Node](ns, others []T) bool {
	if len(ns) != len(others) {
		return false
	}
	for i := range ns {
		if !Exactly(ns[i], others[i]) {
			return false
		}
	}
	return true
}

// Matches reports whether n matches pattern.  A nil pattern matches
// anything.
func Matches[T Node](n, pattern T) bool {
	if IsNil(pattern) {
		return true
	}
	if IsNil(n) {
		return false
	}
	return n.Matches(pattern)
}

// MatchesList reports whether ns matches pattern element by element.  An
// empty pattern matches anything, otherwise the lengths must agree.
func MatchesList[T Node](ns, pattern []T) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(ns) != len(pattern) {
		return false
	}
	for i := range pattern {
		if !Matches(ns[i], pattern[i]) {
			return false
		}
	}
	return true
}

// YieldNode yields n unless it is nil and reports whether to continue.
func YieldNode[T Node](yield func(Node) bool, n T) bool {
	if IsNil(n) {
		return true
	}
	return yield(n)
}

func YieldList[T Node](yield func(Node) bool, ns []T) bool {
	for _, n := range ns {
		if !YieldNode(yield, n) {
			return false
		}
	}
	return true
}

// YieldNamed yields n under name unless it is nil and reports whether to
// continue.
func YieldNamed[T Node](yield func(ElementValue) bool, name string, n T) bool {
	if IsNil(n) {
		return true
	}
	return yield(ElementValue{ElementName: name, Value: n})
}

func YieldNamedList[T Node](yield func(ElementValue) bool, name string, ns []T) bool {
	for _, n := range ns {
		if !YieldNamed(yield, name, n) {
			return false
		}
	}
	return true
}

// ChildrenOf derives a Children sequence from a NamedChildren sequence.
func ChildrenOf(named iter.Seq[ElementValue]) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for ev := range named {
			if !yield(ev.Value) {
				return
			}
		}
	}
}

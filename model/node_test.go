package model_test

import (
	"errors"
	"iter"

	"github.com/signadot/nodebase/model"
)

type leaf struct {
	model.Base

	Value string
}

func (l *leaf) TypeName() string { return "Leaf" }

func (l *leaf) SetValue(v string) {
	if l.Value == v {
		return
	}
	l.Value = v
	l.NotifyPropertyChanged(l, "Value")
}

func (l *leaf) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*leaf)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", l, other)
	}
	if _, err := l.Base.CopyTo(dst); err != nil {
		return nil, err
	}
	dst.Value = l.Value
	return dst, nil
}

func (l *leaf) DeepCopy() (model.Node, error) {
	return l.CopyTo(&leaf{})
}

func (l *leaf) IsExactly(other model.Node) bool {
	o, ok := other.(*leaf)
	return ok && o != nil && l.Value == o.Value
}

func (l *leaf) Matches(pattern model.Node) bool {
	p, ok := pattern.(*leaf)
	return ok && p != nil && (p.Value == "" || p.Value == l.Value)
}

type branch struct {
	model.Base

	Name string
	One  *leaf
	Kids []*leaf
}

func (b *branch) TypeName() string { return "Branch" }

func (b *branch) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*branch)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", b, other)
	}
	if _, err := b.Base.CopyTo(dst); err != nil {
		return nil, err
	}
	var err error
	if dst.One, err = model.Copy(b.One); err != nil {
		return nil, err
	}
	if dst.Kids, err = model.CopyList(b.Kids); err != nil {
		return nil, err
	}
	dst.Name = b.Name
	return dst, nil
}

func (b *branch) DeepCopy() (model.Node, error) {
	return b.CopyTo(&branch{})
}

func (b *branch) IsExactly(other model.Node) bool {
	o, ok := other.(*branch)
	return ok && o != nil &&
		b.Name == o.Name &&
		model.Exactly(b.One, o.One) &&
		model.ExactlyList(b.Kids, o.Kids)
}

func (b *branch) Matches(pattern model.Node) bool {
	p, ok := pattern.(*branch)
	return ok && p != nil &&
		(p.Name == "" || p.Name == b.Name) &&
		model.Matches(b.One, p.One) &&
		model.MatchesList(b.Kids, p.Kids)
}

func (b *branch) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(b.NamedChildren())
}

func (b *branch) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		_ = model.YieldNamed(yield, "one", b.One) &&
			model.YieldNamedList(yield, "kids", b.Kids)
	}
}

var errBroken = errors.New("broken")

// broken fails to copy.
type broken struct {
	leaf
}

func (b *broken) TypeName() string { return "Broken" }

func (b *broken) DeepCopy() (model.Node, error) {
	return nil, errBroken
}

// liar copies into another type.
type liar struct {
	leaf
}

func (l *liar) TypeName() string { return "Liar" }

func (l *liar) DeepCopy() (model.Node, error) {
	return l.leaf.DeepCopy()
}

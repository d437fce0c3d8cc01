package fhir

import (
	"iter"

	"github.com/signadot/nodebase/model"
)

// Element is the base of all data types.
type Element struct {
	model.Base

	ID        string
	Extension []*Extension
}

func (e *Element) TypeName() string { return "Element" }

func (e *Element) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Element)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", e, other)
	}
	if _, err := e.Base.CopyTo(dst); err != nil {
		return nil, err
	}
	ext, err := model.CopyList(e.Extension)
	if err != nil {
		return nil, err
	}
	dst.ID = e.ID
	dst.Extension = ext
	return dst, nil
}

func (e *Element) DeepCopy() (model.Node, error) {
	return e.CopyTo(&Element{})
}

func (e *Element) IsExactly(other model.Node) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.ID == o.ID && model.ExactlyList(e.Extension, o.Extension)
}

// ShallowExactly is IsExactly restricted to the fields which are not child
// nodes.
func (e *Element) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.ID == o.ID
}

func (e *Element) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Element)
	if !ok || p == nil {
		return false
	}
	if p.ID != "" && e.ID != p.ID {
		return false
	}
	return model.MatchesList(e.Extension, p.Extension)
}

func (e *Element) Children() iter.Seq[model.Node] {
	return func(yield func(model.Node) bool) {
		model.YieldList(yield, e.Extension)
	}
}

func (e *Element) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		model.YieldNamedList(yield, "extension", e.Extension)
	}
}

// Extension carries additional content defined outside the base types.
type Extension struct {
	Element

	URL   string
	Value model.Node
}

func (e *Extension) TypeName() string { return "Extension" }

func (e *Extension) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Extension)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", e, other)
	}
	if _, err := e.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	val, err := model.Copy(e.Value)
	if err != nil {
		return nil, err
	}
	dst.URL = e.URL
	dst.Value = val
	return dst, nil
}

func (e *Extension) DeepCopy() (model.Node, error) {
	return e.CopyTo(&Extension{})
}

func (e *Extension) IsExactly(other model.Node) bool {
	o, ok := other.(*Extension)
	if !ok || o == nil {
		return false
	}
	return e.Element.IsExactly(&o.Element) &&
		e.URL == o.URL &&
		model.Exactly(e.Value, o.Value)
}

func (e *Extension) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Extension)
	if !ok || o == nil {
		return false
	}
	return e.Element.ShallowExactly(&o.Element) && e.URL == o.URL
}

func (e *Extension) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Extension)
	if !ok || p == nil {
		return false
	}
	if !e.Element.Matches(&p.Element) {
		return false
	}
	if p.URL != "" && e.URL != p.URL {
		return false
	}
	return model.Matches(e.Value, p.Value)
}

func (e *Extension) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(e.NamedChildren())
}

func (e *Extension) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range e.Element.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		model.YieldNamed(yield, "value", e.Value)
	}
}

func (e *Extension) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if e.URL == "" {
			yield(model.Issue("extension must have a url", "url"))
		}
	}
}

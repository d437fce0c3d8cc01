package fhir

import (
	"iter"

	"github.com/signadot/nodebase/model"
)

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	Element

	System       *URI
	Version      *String
	Code         *Code
	Display      *String
	UserSelected *Boolean
}

func (c *Coding) TypeName() string { return "Coding" }

func (c *Coding) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Coding)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", c, other)
	}
	if _, err := c.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	var err error
	if dst.System, err = model.Copy(c.System); err != nil {
		return nil, err
	}
	if dst.Version, err = model.Copy(c.Version); err != nil {
		return nil, err
	}
	if dst.Code, err = model.Copy(c.Code); err != nil {
		return nil, err
	}
	if dst.Display, err = model.Copy(c.Display); err != nil {
		return nil, err
	}
	if dst.UserSelected, err = model.Copy(c.UserSelected); err != nil {
		return nil, err
	}
	return dst, nil
}

func (c *Coding) DeepCopy() (model.Node, error) {
	return c.CopyTo(&Coding{})
}

func (c *Coding) IsExactly(other model.Node) bool {
	o, ok := other.(*Coding)
	if !ok || o == nil {
		return false
	}
	return c.Element.IsExactly(&o.Element) &&
		model.Exactly(c.System, o.System) &&
		model.Exactly(c.Version, o.Version) &&
		model.Exactly(c.Code, o.Code) &&
		model.Exactly(c.Display, o.Display) &&
		model.Exactly(c.UserSelected, o.UserSelected)
}

func (c *Coding) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Coding)
	if !ok || o == nil {
		return false
	}
	return c.Element.ShallowExactly(&o.Element)
}

func (c *Coding) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Coding)
	if !ok || p == nil {
		return false
	}
	return c.Element.Matches(&p.Element) &&
		model.Matches(c.System, p.System) &&
		model.Matches(c.Version, p.Version) &&
		model.Matches(c.Code, p.Code) &&
		model.Matches(c.Display, p.Display) &&
		model.Matches(c.UserSelected, p.UserSelected)
}

func (c *Coding) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(c.NamedChildren())
}

func (c *Coding) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range c.Element.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		_ = model.YieldNamed(yield, "system", c.System) &&
			model.YieldNamed(yield, "version", c.Version) &&
			model.YieldNamed(yield, "code", c.Code) &&
			model.YieldNamed(yield, "display", c.Display) &&
			model.YieldNamed(yield, "userSelected", c.UserSelected)
	}
}

func (c *Coding) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if c.Code != nil && c.System == nil {
			if !yield(model.Issue("coding with a code should have a system", "system")) {
				return
			}
		}
		if c.Display != nil && c.Code == nil {
			yield(model.Issue("coding with a display must have a code", "code"))
		}
	}
}

// CodeableConcept is a concept given by one or more codings and/or text.
type CodeableConcept struct {
	Element

	Coding []*Coding
	Text   *String
}

func (c *CodeableConcept) TypeName() string { return "CodeableConcept" }

func (c *CodeableConcept) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*CodeableConcept)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", c, other)
	}
	if _, err := c.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	var err error
	if dst.Coding, err = model.CopyList(c.Coding); err != nil {
		return nil, err
	}
	if dst.Text, err = model.Copy(c.Text); err != nil {
		return nil, err
	}
	return dst, nil
}

func (c *CodeableConcept) DeepCopy() (model.Node, error) {
	return c.CopyTo(&CodeableConcept{})
}

func (c *CodeableConcept) IsExactly(other model.Node) bool {
	o, ok := other.(*CodeableConcept)
	if !ok || o == nil {
		return false
	}
	return c.Element.IsExactly(&o.Element) &&
		model.ExactlyList(c.Coding, o.Coding) &&
		model.Exactly(c.Text, o.Text)
}

func (c *CodeableConcept) ShallowExactly(other model.Node) bool {
	o, ok := other.(*CodeableConcept)
	if !ok || o == nil {
		return false
	}
	return c.Element.ShallowExactly(&o.Element)
}

func (c *CodeableConcept) Matches(pattern model.Node) bool {
	p, ok := pattern.(*CodeableConcept)
	if !ok || p == nil {
		return false
	}
	return c.Element.Matches(&p.Element) &&
		model.MatchesList(c.Coding, p.Coding) &&
		model.Matches(c.Text, p.Text)
}

func (c *CodeableConcept) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(c.NamedChildren())
}

func (c *CodeableConcept) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range c.Element.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		_ = model.YieldNamedList(yield, "coding", c.Coding) &&
			model.YieldNamed(yield, "text", c.Text)
	}
}

// HumanName is a name of a human with text, parts and usage information.
type HumanName struct {
	Element

	Use    *Code
	Text   *String
	Family *String
	Given  []*String
}

func (h *HumanName) TypeName() string { return "HumanName" }

func (h *HumanName) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*HumanName)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", h, other)
	}
	if _, err := h.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	var err error
	if dst.Use, err = model.Copy(h.Use); err != nil {
		return nil, err
	}
	if dst.Text, err = model.Copy(h.Text); err != nil {
		return nil, err
	}
	if dst.Family, err = model.Copy(h.Family); err != nil {
		return nil, err
	}
	if dst.Given, err = model.CopyList(h.Given); err != nil {
		return nil, err
	}
	return dst, nil
}

func (h *HumanName) DeepCopy() (model.Node, error) {
	return h.CopyTo(&HumanName{})
}

func (h *HumanName) IsExactly(other model.Node) bool {
	o, ok := other.(*HumanName)
	if !ok || o == nil {
		return false
	}
	return h.Element.IsExactly(&o.Element) &&
		model.Exactly(h.Use, o.Use) &&
		model.Exactly(h.Text, o.Text) &&
		model.Exactly(h.Family, o.Family) &&
		model.ExactlyList(h.Given, o.Given)
}

func (h *HumanName) ShallowExactly(other model.Node) bool {
	o, ok := other.(*HumanName)
	if !ok || o == nil {
		return false
	}
	return h.Element.ShallowExactly(&o.Element)
}

func (h *HumanName) Matches(pattern model.Node) bool {
	p, ok := pattern.(*HumanName)
	if !ok || p == nil {
		return false
	}
	return h.Element.Matches(&p.Element) &&
		model.Matches(h.Use, p.Use) &&
		model.Matches(h.Text, p.Text) &&
		model.Matches(h.Family, p.Family) &&
		model.MatchesList(h.Given, p.Given)
}

func (h *HumanName) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(h.NamedChildren())
}

func (h *HumanName) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range h.Element.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		_ = model.YieldNamed(yield, "use", h.Use) &&
			model.YieldNamed(yield, "text", h.Text) &&
			model.YieldNamed(yield, "family", h.Family) &&
			model.YieldNamedList(yield, "given", h.Given)
	}
}

// Identifier is a business identifier assigned by some system.
type Identifier struct {
	Element

	Use    *Code
	System *URI
	Value  *String
}

func (i *Identifier) TypeName() string { return "Identifier" }

func (i *Identifier) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Identifier)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", i, other)
	}
	if _, err := i.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	var err error
	if dst.Use, err = model.Copy(i.Use); err != nil {
		return nil, err
	}
	if dst.System, err = model.Copy(i.System); err != nil {
		return nil, err
	}
	if dst.Value, err = model.Copy(i.Value); err != nil {
		return nil, err
	}
	return dst, nil
}

func (i *Identifier) DeepCopy() (model.Node, error) {
	return i.CopyTo(&Identifier{})
}

func (i *Identifier) IsExactly(other model.Node) bool {
	o, ok := other.(*Identifier)
	if !ok || o == nil {
		return false
	}
	return i.Element.IsExactly(&o.Element) &&
		model.Exactly(i.Use, o.Use) &&
		model.Exactly(i.System, o.System) &&
		model.Exactly(i.Value, o.Value)
}

func (i *Identifier) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Identifier)
	if !ok || o == nil {
		return false
	}
	return i.Element.ShallowExactly(&o.Element)
}

func (i *Identifier) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Identifier)
	if !ok || p == nil {
		return false
	}
	return i.Element.Matches(&p.Element) &&
		model.Matches(i.Use, p.Use) &&
		model.Matches(i.System, p.System) &&
		model.Matches(i.Value, p.Value)
}

func (i *Identifier) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(i.NamedChildren())
}

func (i *Identifier) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range i.Element.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		_ = model.YieldNamed(yield, "use", i.Use) &&
			model.YieldNamed(yield, "system", i.System) &&
			model.YieldNamed(yield, "value", i.Value)
	}
}

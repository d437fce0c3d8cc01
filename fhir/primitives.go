package fhir

import (
	"iter"
	"strings"

	"github.com/signadot/nodebase/model"
)

// String is a sequence of Unicode characters.
type String struct {
	Element

	Value *string
}

func NewString(v string) *String {
	return &String{Value: &v}
}

func (s *String) TypeName() string { return "string" }

func (s *String) ObjectValue() any {
	if s.Value == nil {
		return nil
	}
	return *s.Value
}

// SetValue sets the value and notifies subscribers of "Value" if it changed.
func (s *String) SetValue(v string) {
	if s.Value != nil && *s.Value == v {
		return
	}
	s.Value = &v
	s.NotifyPropertyChanged(s, "Value")
}

func (s *String) ClearValue() {
	if s.Value == nil {
		return
	}
	s.Value = nil
	s.NotifyPropertyChanged(s, "Value")
}

func (s *String) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*String)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", s, other)
	}
	if _, err := s.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	dst.Value = copyPtr(s.Value)
	return dst, nil
}

func (s *String) DeepCopy() (model.Node, error) {
	return s.CopyTo(&String{})
}

func (s *String) IsExactly(other model.Node) bool {
	o, ok := other.(*String)
	if !ok || o == nil {
		return false
	}
	return s.Element.IsExactly(&o.Element) && equalPtr(s.Value, o.Value)
}

func (s *String) ShallowExactly(other model.Node) bool {
	o, ok := other.(*String)
	if !ok || o == nil {
		return false
	}
	return s.Element.ShallowExactly(&o.Element) && equalPtr(s.Value, o.Value)
}

func (s *String) Matches(pattern model.Node) bool {
	p, ok := pattern.(*String)
	if !ok || p == nil {
		return false
	}
	return s.Element.Matches(&p.Element) && matchPtr(s.Value, p.Value)
}

// Boolean is true or false.
type Boolean struct {
	Element

	Value *bool
}

func NewBoolean(v bool) *Boolean {
	return &Boolean{Value: &v}
}

func (b *Boolean) TypeName() string { return "boolean" }

func (b *Boolean) ObjectValue() any {
	if b.Value == nil {
		return nil
	}
	return *b.Value
}

// SetValue sets the value and notifies subscribers of "Value" if it changed.
func (b *Boolean) SetValue(v bool) {
	if b.Value != nil && *b.Value == v {
		return
	}
	b.Value = &v
	b.NotifyPropertyChanged(b, "Value")
}

func (b *Boolean) ClearValue() {
	if b.Value == nil {
		return
	}
	b.Value = nil
	b.NotifyPropertyChanged(b, "Value")
}

func (b *Boolean) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Boolean)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", b, other)
	}
	if _, err := b.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	dst.Value = copyPtr(b.Value)
	return dst, nil
}

func (b *Boolean) DeepCopy() (model.Node, error) {
	return b.CopyTo(&Boolean{})
}

func (b *Boolean) IsExactly(other model.Node) bool {
	o, ok := other.(*Boolean)
	if !ok || o == nil {
		return false
	}
	return b.Element.IsExactly(&o.Element) && equalPtr(b.Value, o.Value)
}

func (b *Boolean) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Boolean)
	if !ok || o == nil {
		return false
	}
	return b.Element.ShallowExactly(&o.Element) && equalPtr(b.Value, o.Value)
}

func (b *Boolean) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Boolean)
	if !ok || p == nil {
		return false
	}
	return b.Element.Matches(&p.Element) && matchPtr(b.Value, p.Value)
}

// Code is a string drawn from a defined set of codes.
type Code struct {
	Element

	Value *string
}

func NewCode(v string) *Code {
	return &Code{Value: &v}
}

func (c *Code) TypeName() string { return "code" }

func (c *Code) ObjectValue() any {
	if c.Value == nil {
		return nil
	}
	return *c.Value
}

// SetValue sets the value and notifies subscribers of "Value" if it changed.
func (c *Code) SetValue(v string) {
	if c.Value != nil && *c.Value == v {
		return
	}
	c.Value = &v
	c.NotifyPropertyChanged(c, "Value")
}

func (c *Code) ClearValue() {
	if c.Value == nil {
		return
	}
	c.Value = nil
	c.NotifyPropertyChanged(c, "Value")
}

func (c *Code) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Code)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", c, other)
	}
	if _, err := c.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	dst.Value = copyPtr(c.Value)
	return dst, nil
}

func (c *Code) DeepCopy() (model.Node, error) {
	return c.CopyTo(&Code{})
}

func (c *Code) IsExactly(other model.Node) bool {
	o, ok := other.(*Code)
	if !ok || o == nil {
		return false
	}
	return c.Element.IsExactly(&o.Element) && equalPtr(c.Value, o.Value)
}

func (c *Code) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Code)
	if !ok || o == nil {
		return false
	}
	return c.Element.ShallowExactly(&o.Element) && equalPtr(c.Value, o.Value)
}

func (c *Code) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Code)
	if !ok || p == nil {
		return false
	}
	return c.Element.Matches(&p.Element) && matchPtr(c.Value, p.Value)
}

func (c *Code) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if c.Value == nil {
			return
		}
		v := *c.Value
		if strings.TrimSpace(v) != v || v == "" {
			yield(model.Issue("code must be non-empty without leading or trailing whitespace", memberName(ctx)))
		}
	}
}

// URI is a uniform resource identifier.
type URI struct {
	Element

	Value *string
}

func NewURI(v string) *URI {
	return &URI{Value: &v}
}

func (u *URI) TypeName() string { return "uri" }

func (u *URI) ObjectValue() any {
	if u.Value == nil {
		return nil
	}
	return *u.Value
}

// SetValue sets the value and notifies subscribers of "Value" if it changed.
func (u *URI) SetValue(v string) {
	if u.Value != nil && *u.Value == v {
		return
	}
	u.Value = &v
	u.NotifyPropertyChanged(u, "Value")
}

func (u *URI) ClearValue() {
	if u.Value == nil {
		return
	}
	u.Value = nil
	u.NotifyPropertyChanged(u, "Value")
}

func (u *URI) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*URI)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", u, other)
	}
	if _, err := u.Element.CopyTo(&dst.Element); err != nil {
		return nil, err
	}
	dst.Value = copyPtr(u.Value)
	return dst, nil
}

func (u *URI) DeepCopy() (model.Node, error) {
	return u.CopyTo(&URI{})
}

func (u *URI) IsExactly(other model.Node) bool {
	o, ok := other.(*URI)
	if !ok || o == nil {
		return false
	}
	return u.Element.IsExactly(&o.Element) && equalPtr(u.Value, o.Value)
}

func (u *URI) ShallowExactly(other model.Node) bool {
	o, ok := other.(*URI)
	if !ok || o == nil {
		return false
	}
	return u.Element.ShallowExactly(&o.Element) && equalPtr(u.Value, o.Value)
}

func (u *URI) Matches(pattern model.Node) bool {
	p, ok := pattern.(*URI)
	if !ok || p == nil {
		return false
	}
	return u.Element.Matches(&p.Element) && matchPtr(u.Value, p.Value)
}

func (u *URI) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if u.Value == nil {
			return
		}
		if strings.ContainsAny(*u.Value, " \t\n") {
			yield(model.Issue("uri must not contain whitespace", memberName(ctx)))
		}
	}
}

func memberName(ctx *model.ValidationContext) string {
	if ctx == nil {
		return ""
	}
	return ctx.MemberName
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func matchPtr[T comparable](v, pattern *T) bool {
	if pattern == nil {
		return true
	}
	return v != nil && *v == *pattern
}

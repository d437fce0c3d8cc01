package fhir

import (
	"iter"

	"github.com/signadot/nodebase/model"
)

// Resource is the base of all resources.
type Resource struct {
	model.Base

	ID *String
}

func (r *Resource) TypeName() string { return "Resource" }

func (r *Resource) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Resource)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", r, other)
	}
	if _, err := r.Base.CopyTo(dst); err != nil {
		return nil, err
	}
	id, err := model.Copy(r.ID)
	if err != nil {
		return nil, err
	}
	dst.ID = id
	return dst, nil
}

func (r *Resource) DeepCopy() (model.Node, error) {
	return r.CopyTo(&Resource{})
}

func (r *Resource) IsExactly(other model.Node) bool {
	o, ok := other.(*Resource)
	if !ok || o == nil {
		return false
	}
	return model.Exactly(r.ID, o.ID)
}

// ShallowExactly reports whether other is a Resource.  Resource has no fields
// besides its children.
func (r *Resource) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Resource)
	return ok && o != nil
}

func (r *Resource) Matches(pattern model.Node) bool {
	p, ok := pattern.(*Resource)
	if !ok || p == nil {
		return false
	}
	return model.Matches(r.ID, p.ID)
}

func (r *Resource) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(r.NamedChildren())
}

func (r *Resource) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		model.YieldNamed(yield, "id", r.ID)
	}
}

// Patient holds demographics of a person receiving care.
type Patient struct {
	Resource

	Identifier []*Identifier
	Active     *Boolean
	Name       []*HumanName
	Gender     *Code
	BirthDate  *String
}

func (p *Patient) TypeName() string { return "Patient" }

// SetActive replaces the active flag and notifies subscribers of "Active".
func (p *Patient) SetActive(v *Boolean) {
	if p.Active == v {
		return
	}
	p.Active = v
	p.NotifyPropertyChanged(p, "Active")
}

// SetGender replaces the gender and notifies subscribers of "Gender".
func (p *Patient) SetGender(v *Code) {
	if p.Gender == v {
		return
	}
	p.Gender = v
	p.NotifyPropertyChanged(p, "Gender")
}

func (p *Patient) CopyTo(other any) (model.Node, error) {
	dst, ok := other.(*Patient)
	if !ok || dst == nil {
		return nil, model.Mismatch("CopyTo", p, other)
	}
	if _, err := p.Resource.CopyTo(&dst.Resource); err != nil {
		return nil, err
	}
	var err error
	if dst.Identifier, err = model.CopyList(p.Identifier); err != nil {
		return nil, err
	}
	if dst.Active, err = model.Copy(p.Active); err != nil {
		return nil, err
	}
	if dst.Name, err = model.CopyList(p.Name); err != nil {
		return nil, err
	}
	if dst.Gender, err = model.Copy(p.Gender); err != nil {
		return nil, err
	}
	if dst.BirthDate, err = model.Copy(p.BirthDate); err != nil {
		return nil, err
	}
	return dst, nil
}

func (p *Patient) DeepCopy() (model.Node, error) {
	return p.CopyTo(&Patient{})
}

func (p *Patient) IsExactly(other model.Node) bool {
	o, ok := other.(*Patient)
	if !ok || o == nil {
		return false
	}
	return p.Resource.IsExactly(&o.Resource) &&
		model.ExactlyList(p.Identifier, o.Identifier) &&
		model.Exactly(p.Active, o.Active) &&
		model.ExactlyList(p.Name, o.Name) &&
		model.Exactly(p.Gender, o.Gender) &&
		model.Exactly(p.BirthDate, o.BirthDate)
}

func (p *Patient) ShallowExactly(other model.Node) bool {
	o, ok := other.(*Patient)
	if !ok || o == nil {
		return false
	}
	return p.Resource.ShallowExactly(&o.Resource)
}

func (p *Patient) Matches(pattern model.Node) bool {
	pp, ok := pattern.(*Patient)
	if !ok || pp == nil {
		return false
	}
	return p.Resource.Matches(&pp.Resource) &&
		model.MatchesList(p.Identifier, pp.Identifier) &&
		model.Matches(p.Active, pp.Active) &&
		model.MatchesList(p.Name, pp.Name) &&
		model.Matches(p.Gender, pp.Gender) &&
		model.Matches(p.BirthDate, pp.BirthDate)
}

func (p *Patient) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(p.NamedChildren())
}

func (p *Patient) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		for ev := range p.Resource.NamedChildren() {
			if !yield(ev) {
				return
			}
		}
		_ = model.YieldNamedList(yield, "identifier", p.Identifier) &&
			model.YieldNamed(yield, "active", p.Active) &&
			model.YieldNamedList(yield, "name", p.Name) &&
			model.YieldNamed(yield, "gender", p.Gender) &&
			model.YieldNamed(yield, "birthDate", p.BirthDate)
	}
}

var genders = map[string]bool{
	"male":    true,
	"female":  true,
	"other":   true,
	"unknown": true,
}

func (p *Patient) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if len(p.Name) == 0 && len(p.Identifier) == 0 {
			if !yield(model.Issue("patient should have a name or an identifier", "name", "identifier")) {
				return
			}
		}
		if p.Gender != nil && p.Gender.Value != nil && !genders[*p.Gender.Value] {
			yield(model.Issue("gender must be one of male, female, other, unknown", "gender"))
		}
	}
}

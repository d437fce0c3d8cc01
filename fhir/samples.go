package fhir

import (
	"maps"
	"slices"

	"github.com/signadot/nodebase/model"
)

var samples = map[string]func() model.Node{
	"patient-example":       patientExample,
	"patient-modified":      patientModified,
	"patient-minimal":       patientMinimal,
	"coding-loinc":          codingLOINC,
	"extension-missing-url": extensionMissingURL,
}

// SampleNames returns the names of the sample instances, sorted.
func SampleNames() []string {
	return slices.Sorted(maps.Keys(samples))
}

// Sample returns a freshly built sample instance.
func Sample(name string) (model.Node, bool) {
	f, ok := samples[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

func patientExample() model.Node {
	return &Patient{
		Resource: Resource{ID: NewString("example")},
		Identifier: []*Identifier{{
			Use:    NewCode("usual"),
			System: NewURI("urn:oid:1.2.36.146.595.217.0.1"),
			Value:  NewString("12345"),
		}},
		Active: NewBoolean(true),
		Name: []*HumanName{
			{
				Use:    NewCode("official"),
				Family: NewString("Chalmers"),
				Given:  []*String{NewString("Peter"), NewString("James")},
			},
			{
				Use:   NewCode("usual"),
				Given: []*String{NewString("Jim")},
			},
		},
		Gender:    NewCode("male"),
		BirthDate: NewString("1974-12-25"),
	}
}

func patientModified() model.Node {
	p := patientExample().(*Patient)
	p.Name[0].Given = p.Name[0].Given[:1]
	p.Name = append(p.Name, &HumanName{
		Use:    NewCode("maiden"),
		Family: NewString("Windsor"),
	})
	p.Active = NewBoolean(false)
	p.BirthDate = nil
	return p
}

func patientMinimal() model.Node {
	return &Patient{Gender: NewCode("robot")}
}

func codingLOINC() model.Node {
	return &Coding{
		System:  NewURI("http://loinc.org"),
		Code:    NewCode("8867-4"),
		Display: NewString("Heart rate"),
	}
}

func extensionMissingURL() model.Node {
	return &Extension{Value: NewString("orphan")}
}

package nodediff

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nodebase/fhir"
	"github.com/signadot/nodebase/model"
)

func sample(t *testing.T, name string) model.Node {
	t.Helper()
	n, ok := fhir.Sample(name)
	if !ok {
		t.Fatalf("no sample %s", name)
	}
	return n
}

func changeStrings(cs []Change) []string {
	var res []string
	for _, c := range cs {
		res = append(res, c.String())
	}
	return res
}

func TestDiffIdentical(t *testing.T) {
	a, b := sample(t, "patient-example"), sample(t, "patient-example")
	if cs := Diff(a, b); len(cs) != 0 {
		t.Errorf("Diff() = %v, want none", changeStrings(cs))
	}
	if txt := Text(a, b); txt != "" {
		t.Errorf("Text() = %q, want empty", txt)
	}
}

func TestDiff(t *testing.T) {
	from, to := sample(t, "patient-example"), sample(t, "patient-modified")
	want := []string{
		"~ Patient.active: boolean",
		"- Patient.name[0].given[1]: string",
		"+ Patient.name[2]: HumanName",
		"- Patient.birthDate: string",
	}
	if diff := cmp.Diff(want, changeStrings(Diff(from, to))); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffOwnFields(t *testing.T) {
	from := &fhir.Extension{URL: "http://a", Value: fhir.NewString("v")}
	to := &fhir.Extension{URL: "http://b", Value: fhir.NewString("v")}
	cs := Diff(from, to)
	if diff := cmp.Diff([]string{"~ Extension: Extension"}, changeStrings(cs)); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
	if cs[0].From != from || cs[0].To != to {
		t.Error("change does not carry the nodes")
	}
}

func TestDiffOwnAndChildFields(t *testing.T) {
	from := &fhir.Extension{URL: "http://a", Value: fhir.NewString("v")}
	to := &fhir.Extension{URL: "http://b", Value: fhir.NewString("w")}
	want := []string{"~ Extension: Extension", "~ Extension.value: string"}
	if diff := cmp.Diff(want, changeStrings(Diff(from, to))); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
	// only the child changed
	to.URL = "http://a"
	want = []string{"~ Extension.value: string"}
	if diff := cmp.Diff(want, changeStrings(Diff(from, to))); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

// wrapper does not implement Shallow.
type wrapper struct {
	model.Base
	Tag string
	Kid model.Node
}

func (w *wrapper) TypeName() string { return "Wrapper" }

func (w *wrapper) DeepCopy() (model.Node, error) {
	kid, err := model.Copy(w.Kid)
	if err != nil {
		return nil, err
	}
	return w.CopyTo(&wrapper{Tag: w.Tag, Kid: kid})
}

func (w *wrapper) IsExactly(other model.Node) bool {
	o, ok := other.(*wrapper)
	return ok && o != nil && w.Tag == o.Tag && model.Exactly(w.Kid, o.Kid)
}

func (w *wrapper) Matches(pattern model.Node) bool {
	return w.IsExactly(pattern)
}

func (w *wrapper) Children() iter.Seq[model.Node] {
	return model.ChildrenOf(w.NamedChildren())
}

func (w *wrapper) NamedChildren() iter.Seq[model.ElementValue] {
	return func(yield func(model.ElementValue) bool) {
		model.YieldNamed(yield, "kid", w.Kid)
	}
}

func TestDiffWithoutShallow(t *testing.T) {
	from := &wrapper{Tag: "a", Kid: fhir.NewString("v")}
	tests := []struct {
		name string
		to   *wrapper
		want []string
	}{
		{"same", &wrapper{Tag: "a", Kid: fhir.NewString("v")}, nil},
		{"own", &wrapper{Tag: "b", Kid: fhir.NewString("v")}, []string{"~ Wrapper: Wrapper"}},
		{"child", &wrapper{Tag: "a", Kid: fhir.NewString("w")}, []string{"~ Wrapper: Wrapper", "~ Wrapper.kid: string"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, changeStrings(Diff(from, tt.to))); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffTypeChange(t *testing.T) {
	from := &fhir.Extension{URL: "http://a", Value: fhir.NewString("v")}
	to := &fhir.Extension{URL: "http://a", Value: fhir.NewBoolean(true)}
	want := []string{"- Extension.value: string", "+ Extension.value: boolean"}
	if diff := cmp.Diff(want, changeStrings(Diff(from, to))); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
	want = []string{"~ Identifier: Identifier"}
	if diff := cmp.Diff(want, changeStrings(Diff(&fhir.Coding{}, &fhir.Identifier{}))); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffNil(t *testing.T) {
	c := &fhir.Coding{}
	if cs := Diff(nil, nil); cs != nil {
		t.Errorf("Diff(nil, nil) = %v", cs)
	}
	if diff := cmp.Diff([]string{"+ Coding: Coding"}, changeStrings(Diff(nil, c))); diff != "" {
		t.Errorf("Diff(nil, c) mismatch (-want +got):\n%s", diff)
	}
	var nilCoding *fhir.Coding
	if diff := cmp.Diff([]string{"- Coding: Coding"}, changeStrings(Diff(c, nilCoding))); diff != "" {
		t.Errorf("Diff(c, nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestExactlyMatches(t *testing.T) {
	var nilCoding *fhir.Coding
	a := &fhir.Coding{Code: fhir.NewCode("x"), System: fhir.NewURI("s")}
	tests := []struct {
		name         string
		a, b         model.Node
		exact, match bool
	}{
		{"nil nil", nil, nil, true, true},
		{"typed nil", nilCoding, nil, true, true},
		{"nil pattern", a, nil, false, true},
		{"nil node", nil, a, false, false},
		{"same", a, &fhir.Coding{Code: fhir.NewCode("x"), System: fhir.NewURI("s")}, true, true},
		{"partial pattern", a, &fhir.Coding{Code: fhir.NewCode("x")}, false, true},
		{"other type", a, &fhir.Identifier{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exactly(tt.a, tt.b); got != tt.exact {
				t.Errorf("Exactly() = %v, want %v", got, tt.exact)
			}
			if got := Matches(tt.a, tt.b); got != tt.match {
				t.Errorf("Matches() = %v, want %v", got, tt.match)
			}
		})
	}
}

func TestText(t *testing.T) {
	from := &fhir.HumanName{
		Family: fhir.NewString("Chalmers"),
		Given:  []*fhir.String{fhir.NewString("Peter")},
	}
	to := &fhir.HumanName{
		Family: fhir.NewString("Windsor"),
		Given:  []*fhir.String{fhir.NewString("Peter")},
	}
	want := "" +
		"  HumanName\n" +
		"-   family: string = \"Chalmers\"\n" +
		"+   family: string = \"Windsor\"\n" +
		"    given: string = \"Peter\"\n"
	if diff := cmp.Diff(want, Text(from, to)); diff != "" {
		t.Errorf("Text() mismatch (-want +got):\n%s", diff)
	}
}

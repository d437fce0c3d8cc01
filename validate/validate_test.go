package validate

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nodebase/fhir"
	"github.com/signadot/nodebase/model"
)

func issueStrings(issues []Issue) []string {
	var res []string
	for _, i := range issues {
		res = append(res, i.String())
	}
	return res
}

func sampleTree() model.Node {
	return &fhir.Patient{
		Gender: fhir.NewCode("robot"),
		Name: []*fhir.HumanName{{
			Use: fhir.NewCode(" official"),
			Element: fhir.Element{Extension: []*fhir.Extension{
				{Value: &fhir.Coding{Display: fhir.NewString("x")}},
			}},
		}},
	}
}

func TestTree(t *testing.T) {
	issues, err := Tree(context.Background(), sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Patient (Patient): gender: gender must be one of male, female, other, unknown",
		"Patient.name.extension (Extension): url: extension must have a url",
		"Patient.name.extension.value (Coding): code: coding with a display must have a code",
		"Patient.name.use (code): use: code must be non-empty without leading or trailing whitespace",
	}
	if diff := cmp.Diff(want, issueStrings(issues)); diff != "" {
		t.Errorf("Tree() mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeOptions(t *testing.T) {
	issues, err := Tree(context.Background(), sampleTree(), MaxIssues(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 2 {
		t.Errorf("MaxIssues(2) gave %d issues", len(issues))
	}
	issues, err = Tree(context.Background(), sampleTree(), SkipTypes("Extension"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Patient (Patient): gender: gender must be one of male, female, other, unknown",
		"Patient.name.use (code): use: code must be non-empty without leading or trailing whitespace",
	}
	if diff := cmp.Diff(want, issueStrings(issues)); diff != "" {
		t.Errorf("SkipTypes mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	issues, err := Tree(ctx, sampleTree())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Tree() error = %v, want canceled", err)
	}
	if len(issues) != 0 {
		t.Errorf("got %d issues", len(issues))
	}
}

type itemsChecker struct {
	fhir.Element
}

func (c *itemsChecker) TypeName() string { return "ItemsChecker" }

func (c *itemsChecker) Validate(ctx *model.ValidationContext) iter.Seq[model.ValidationIssue] {
	return func(yield func(model.ValidationIssue) bool) {
		if ctx.Items["strict"] == true {
			yield(model.Issue("strict"))
		}
	}
}

func TestItems(t *testing.T) {
	n := &itemsChecker{}
	issues, err := Tree(context.Background(), n, Items(map[string]any{"strict": true}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ItemsChecker (ItemsChecker): strict"}, issueStrings(issues)); diff != "" {
		t.Errorf("Tree() mismatch (-want +got):\n%s", diff)
	}
}

func TestValid(t *testing.T) {
	p, _ := fhir.Sample("patient-example")
	ok, err := Valid(context.Background(), p)
	if err != nil || !ok {
		t.Errorf("Valid(patient-example) = %v, %v", ok, err)
	}
	ok, err = Valid(context.Background(), sampleTree())
	if err != nil || ok {
		t.Errorf("Valid(invalid) = %v, %v", ok, err)
	}
}

func TestTreeNilContext(t *testing.T) {
	//lint:ignore SA1012 nil is accepted
	issues, err := Tree(nil, sampleTree(), MaxIssues(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 1 {
		t.Errorf("Tree(nil) gave %d issues, want 1", len(issues))
	}
}

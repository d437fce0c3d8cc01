package model

import (
	"context"
	"strings"
)

// ValidationContext is passed to Validate.
type ValidationContext struct {
	Context context.Context
	// Items carries caller supplied state shared across a validation run.
	Items map[string]any
	// MemberName is the name of the field holding the node being validated,
	// empty for the root.
	MemberName string
}

func NewValidationContext(ctx context.Context) *ValidationContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ValidationContext{Context: ctx, Items: map[string]any{}}
}

// WithMember returns a copy of c for the member name.  Items is shared.
func (c *ValidationContext) WithMember(name string) *ValidationContext {
	res := *c
	res.MemberName = name
	return &res
}

// ValidationIssue is a finding reported by Validate.
type ValidationIssue struct {
	Message     string
	MemberNames []string
}

func Issue(msg string, members ...string) ValidationIssue {
	return ValidationIssue{Message: msg, MemberNames: members}
}

func (v ValidationIssue) Error() string {
	if len(v.MemberNames) == 0 {
		return v.Message
	}
	return strings.Join(v.MemberNames, ",") + ": " + v.Message
}

// Package validate runs the Validate hook of every node in a tree and
// collects the issues.
package validate

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/nodebase/debug"
	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/walk"
)

// Issue is a validation issue located in a tree.
type Issue struct {
	Path     string
	TypeName string
	model.ValidationIssue
}

func (i Issue) String() string {
	return fmt.Sprintf("%s (%s): %s", i.Path, i.TypeName, i.ValidationIssue.Error())
}

type config struct {
	maxIssues int
	skip      []string
	items     map[string]any
}

type Option func(*config)

// MaxIssues stops validation after n issues.  n <= 0 means no limit.
func MaxIssues(n int) Option {
	return func(c *config) { c.maxIssues = n }
}

// SkipTypes does not validate nodes with the given type names, nor their
// subtrees.
func SkipTypes(names ...string) Option {
	return func(c *config) { c.skip = append(c.skip, names...) }
}

// Items sets the ValidationContext items shared by all nodes.
func Items(items map[string]any) Option {
	return func(c *config) { c.items = items }
}

var errStop = errors.New("stop")

// Tree validates every node of the tree rooted at n in pre-order.  If ctx is
// done the issues found so far are returned along with ctx.Err().  A nil ctx
// is taken as context.Background().
func Tree(ctx context.Context, n model.Node, opts ...Option) ([]Issue, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	vc := model.NewValidationContext(ctx)
	if cfg.items != nil {
		vc.Items = cfg.items
	}
	var res []Issue
	err := walk.Visit(n, func(c model.Node, p walk.Path, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if slices.Contains(cfg.skip, c.TypeName()) {
			return false, nil
		}
		ps := p.String()
		for issue := range c.Validate(vc.WithMember(p.Name())) {
			if debug.Validate() {
				debug.Logf("%s: %s\n", ps, issue.Message)
			}
			res = append(res, Issue{Path: ps, TypeName: c.TypeName(), ValidationIssue: issue})
			if cfg.maxIssues > 0 && len(res) >= cfg.maxIssues {
				return false, errStop
			}
		}
		return true, nil
	})
	if errors.Is(err, errStop) {
		err = nil
	}
	return res, err
}

// Valid reports whether the tree rooted at n has no issues.
func Valid(ctx context.Context, n model.Node) (bool, error) {
	issues, err := Tree(ctx, n, MaxIssues(1))
	if err != nil {
		return false, err
	}
	return len(issues) == 0, nil
}

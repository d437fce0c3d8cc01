package walk

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nodebase/model"
)

// Env is the environment a selection expression is evaluated against, once
// per node.
type Env struct {
	TypeName string
	// Name is the field name holding the node, empty for the root.
	Name  string
	Path  string
	Depth int
	// Value is the primitive value, or nil if the node is not a
	// model.Primitive or has no value.
	Value       any
	Annotations int
	Children    int
}

// Match is a node selected by a Query.
type Match struct {
	Path Path
	Node model.Node
}

// Query is a compiled selection expression.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles a boolean expression over Env, for example
//
//	TypeName == "HumanName" && Depth == 1
//	Name == "given" && Value startsWith "J"
//
// Value is nil for nodes which are not primitives and may hold a bool, so
// string operators on Value need a guard such as the Name test above.  An
// expression failing at run time on any node fails the whole Select.
func Compile(expression string) (*Query, error) {
	prg, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", expression, err)
	}
	return &Query{src: expression, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Test evaluates q on n at p.
func (q *Query) Test(n model.Node, p Path) (bool, error) {
	res, err := expr.Run(q.prg, NewEnv(n, p))
	if err != nil {
		return false, fmt.Errorf("evaluating %q at %s: %w", q.src, p, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %q at %s: got %T, want bool", q.src, p, res)
	}
	return b, nil
}

// Select returns the nodes of the tree rooted at n for which q holds, in
// pre-order.
func (q *Query) Select(n model.Node) ([]Match, error) {
	var res []Match
	for p, c := range Walk(n) {
		ok, err := q.Test(c, p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, Match{Path: p, Node: c})
		}
	}
	return res, nil
}

// Select compiles expression and selects from n.
func Select(n model.Node, expression string) ([]Match, error) {
	q, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return q.Select(n)
}

func NewEnv(n model.Node, p Path) Env {
	env := Env{
		TypeName: n.TypeName(),
		Name:     p.Name(),
		Path:     p.String(),
		Depth:    p.Depth(),
	}
	if prim, ok := n.(model.Primitive); ok {
		env.Value = prim.ObjectValue()
	}
	for range n.Annotations(nil) {
		env.Annotations++
	}
	for range n.Children() {
		env.Children++
	}
	return env
}

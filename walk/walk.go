package walk

import (
	"iter"

	"github.com/signadot/nodebase/debug"
	"github.com/signadot/nodebase/model"
)

// VisitFunc is called before (isPost false) and after (isPost true) the
// children of n are visited.  Children are visited only if the pre call
// returns true.
type VisitFunc func(n model.Node, p Path, isPost bool) (bool, error)

// Visit walks the tree rooted at n depth first.  The first error returned by
// f stops the walk and is returned as is.
func Visit(n model.Node, f VisitFunc) error {
	return visit(n, Root(n), f)
}

func visit(n model.Node, p Path, f VisitFunc) error {
	if debug.Walk() {
		debug.Logf("visit %s at %s\n", n, p)
	}
	dive, err := f(n, p, false)
	if err != nil {
		return err
	}
	if dive {
		for cp, c := range ChildPaths(n, p) {
			if err := visit(c, cp, f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, p, true); err != nil {
		return err
	}
	return nil
}

// Walk returns the nodes of the tree rooted at n in pre-order.
func Walk(n model.Node) iter.Seq2[Path, model.Node] {
	return func(yield func(Path, model.Node) bool) {
		walk(n, Root(n), yield)
	}
}

func walk(n model.Node, p Path, yield func(Path, model.Node) bool) bool {
	if !yield(p, n) {
		return false
	}
	for cp, c := range ChildPaths(n, p) {
		if !walk(c, cp, yield) {
			return false
		}
	}
	return true
}

// ChildPaths returns the immediate children of n with their paths below p.
func ChildPaths(n model.Node, p Path) iter.Seq2[Path, model.Node] {
	return func(yield func(Path, model.Node) bool) {
		counts := map[string]int{}
		for ev := range n.NamedChildren() {
			counts[ev.ElementName]++
		}
		occ := make(map[string]int, len(counts))
		for ev := range n.NamedChildren() {
			s := Step{
				Name:     ev.ElementName,
				Index:    occ[ev.ElementName],
				Repeated: counts[ev.ElementName] > 1,
			}
			occ[ev.ElementName]++
			if !yield(p.Child(s), ev.Value) {
				return
			}
		}
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n model.Node) int {
	res := 0
	for range Walk(n) {
		res++
	}
	return res
}

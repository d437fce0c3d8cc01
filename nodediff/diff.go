package nodediff

import (
	"fmt"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nodebase/debug"
	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/walk"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Modify
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Modify:
		return "modify"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Change is a difference at Path.  From is nil for inserts and To is nil for
// deletes.
type Change struct {
	Kind Kind
	Path string
	From model.Node
	To   model.Node
}

func (c Change) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, c.To.TypeName())
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, c.From.TypeName())
	}
	return fmt.Sprintf("~ %s: %s", c.Path, c.To.TypeName())
}

// Exactly reports whether a and b are both nil or structurally identical.
func Exactly(a, b model.Node) bool {
	if model.IsNil(a) || model.IsNil(b) {
		return model.IsNil(a) == model.IsNil(b)
	}
	if a.TypeName() != b.TypeName() {
		return false
	}
	return a.IsExactly(b)
}

// Matches reports whether n matches pattern.  A nil pattern matches
// anything.
func Matches(n, pattern model.Node) bool {
	if model.IsNil(pattern) {
		return true
	}
	if model.IsNil(n) || n.TypeName() != pattern.TypeName() {
		return false
	}
	return n.Matches(pattern)
}

// Diff returns the changes turning from into to, in pre-order of the paths
// involved.  Identical trees give no changes.
func Diff(from, to model.Node) []Change {
	switch {
	case model.IsNil(from) && model.IsNil(to):
		return nil
	case model.IsNil(from):
		return []Change{{Kind: Insert, Path: walk.Root(to).String(), To: to}}
	case model.IsNil(to):
		return []Change{{Kind: Delete, Path: walk.Root(from).String(), From: from}}
	}
	var res []Change
	diffNode(from, to, walk.Root(from), walk.Root(to), &res)
	return res
}

type keyed struct {
	path walk.Path
	node model.Node
}

func diffNode(from, to model.Node, fromPath, toPath walk.Path, res *[]Change) {
	if from.TypeName() != to.TypeName() {
		*res = append(*res, Change{Kind: Modify, Path: toPath.String(), From: from, To: to})
		return
	}
	runeMap := map[string]rune{}
	fromKids, fromRunes := mapChildren(runeMap, from, fromPath)
	toKids, toRunes := mapChildren(runeMap, to, toPath)

	before := len(*res)
	// placeholder for a modify of the node itself, ahead of the changes in
	// its children.
	*res = append(*res, Change{})

	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				k := fromKids[fi]
				*res = append(*res, Change{Kind: Delete, Path: k.path.String(), From: k.node})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				k := toKids[ti]
				*res = append(*res, Change{Kind: Insert, Path: k.path.String(), To: k.node})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				diffNode(fromKids[fi].node, toKids[ti].node, fromKids[fi].path, toKids[ti].path, res)
				fi++
				ti++
			}
		}
	}
	if ownDiffers(from, to) {
		(*res)[before] = Change{Kind: Modify, Path: toPath.String(), From: from, To: to}
		if debug.Diff() {
			debug.Logf("modify %s at %s\n", to, toPath)
		}
		return
	}
	*res = append((*res)[:before], (*res)[before+1:]...)
}

// Shallow is implemented by nodes which can compare their fields other than
// child nodes.
type Shallow interface {
	ShallowExactly(other model.Node) bool
}

// ownDiffers reports whether from and to differ in fields other than their
// children.  Without Shallow it falls back to IsExactly, which also fails
// when only children changed.
func ownDiffers(from, to model.Node) bool {
	if s, ok := from.(Shallow); ok {
		return !s.ShallowExactly(to)
	}
	return !from.IsExactly(to)
}

// mapChildren interns the name and occurrence of each child of n, so that
// children are aligned by field and position within the field.
func mapChildren(m map[string]rune, n model.Node, p walk.Path) ([]keyed, []rune) {
	var kids []keyed
	var rs []rune
	for cp, c := range walk.ChildPaths(n, p) {
		s := cp[len(cp)-1]
		key := s.Name + "#" + strconv.Itoa(s.Index) + "#" + c.TypeName()
		r, ok := m[key]
		if !ok {
			r = rune(len(m))
			m[key] = r
		}
		kids = append(kids, keyed{path: cp, node: c})
		rs = append(rs, r)
	}
	return kids, rs
}

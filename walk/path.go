package walk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nodebase/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrBadPath  = errors.New("bad path")
)

// Step is one element of a Path.
type Step struct {
	Name string
	// Index is the occurrence of Name among the parent's children.
	Index int
	// Repeated is set when the parent has more than one child named Name.
	Repeated bool
}

// Path locates a node relative to a root.  The first step names the root by
// its type name.
type Path []Step

func Root(n model.Node) Path {
	return Path{{Name: n.TypeName()}}
}

func (p Path) Child(s Step) Path {
	return append(p[:len(p):len(p)], s)
}

// Depth is the number of steps below the root.
func (p Path) Depth() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Name is the field name of the last step, empty for the root.
func (p Path) Name() string {
	if len(p) < 2 {
		return ""
	}
	return p[len(p)-1].Name
}

func (p Path) String() string {
	buf := &strings.Builder{}
	for i, s := range p {
		if i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s.Name)
		if i > 0 && s.Repeated {
			fmt.Fprintf(buf, "[%d]", s.Index)
		}
	}
	return buf.String()
}

// ParsePath parses the form produced by Path.String.  Steps without an index
// have index 0.
func ParsePath(v string) (Path, error) {
	if v == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadPath)
	}
	parts := strings.Split(v, ".")
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		s := Step{Name: part}
		if j := strings.IndexByte(part, '['); j != -1 {
			if i == 0 || !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("%w: %q", ErrBadPath, v)
			}
			idx, err := strconv.Atoi(part[j+1 : len(part)-1])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index in %q", ErrBadPath, part)
			}
			s.Name = part[:j]
			s.Index = idx
			s.Repeated = true
		}
		if s.Name == "" {
			return nil, fmt.Errorf("%w: empty step in %q", ErrBadPath, v)
		}
		res = append(res, s)
	}
	return res, nil
}

// Find returns the node of root at path.
func Find(root model.Node, path string) (model.Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if p[0].Name != root.TypeName() {
		return nil, fmt.Errorf("%w: root %s is not %s", ErrNotFound, root.TypeName(), p[0].Name)
	}
	n := root
	for i := 1; i < len(p); i++ {
		c := child(n, p[i])
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p[:i+1])
		}
		n = c
	}
	return n, nil
}

func child(n model.Node, s Step) model.Node {
	occ := 0
	for ev := range n.NamedChildren() {
		if ev.ElementName != s.Name {
			continue
		}
		if occ == s.Index {
			return ev.Value
		}
		occ++
	}
	return nil
}

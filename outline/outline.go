// Package outline renders node trees as indented text, one node per line.
//
//	Patient
//	  id: string = "example"
//	  name[0]: HumanName
//	    family: string = "Chalmers"
package outline

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/walk"
)

type options struct {
	colors      *Colors
	annotations bool
	indent      string
}

type Option func(*options)

// WithColors colors the output.
func WithColors(c *Colors) Option {
	return func(o *options) { o.colors = c }
}

// Annotations appends the annotation count to nodes which have any.
func Annotations(v bool) Option {
	return func(o *options) { o.annotations = v }
}

// Indent sets the indentation per level, two spaces by default.
func Indent(v string) Option {
	return func(o *options) { o.indent = v }
}

func Encode(n model.Node, w io.Writer, opts ...Option) error {
	o := &options{indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	bw := bufio.NewWriter(w)
	err := walk.Visit(n, func(c model.Node, p walk.Path, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		_, err := io.WriteString(bw, line(c, p, o))
		return err == nil, err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func String(n model.Node, opts ...Option) string {
	buf := &strings.Builder{}
	// strings.Builder does not fail
	_ = Encode(n, buf, opts...)
	return buf.String()
}

func line(n model.Node, p walk.Path, o *options) string {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(o.indent, p.Depth()))
	if p.Depth() > 0 {
		s := p[len(p)-1]
		name := s.Name
		if s.Repeated {
			name = fmt.Sprintf("%s[%d]", s.Name, s.Index)
		}
		buf.WriteString(o.colors.Color(NameColor, "%s", name))
		buf.WriteString(o.colors.Color(SepColor, ": "))
	}
	buf.WriteString(o.colors.Color(TypeColor, "%s", n.TypeName()))
	if prim, ok := n.(model.Primitive); ok {
		if v := prim.ObjectValue(); v != nil {
			buf.WriteString(o.colors.Color(SepColor, " = "))
			buf.WriteString(o.colors.Color(ValueColor, "%s", formatValue(v)))
		}
	}
	if o.annotations {
		count := 0
		for range n.Annotations(nil) {
			count++
		}
		if count > 0 {
			buf.WriteString(o.colors.Color(MetaColor, " (%d annotations)", count))
		}
	}
	buf.WriteByte('\n')
	return buf.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

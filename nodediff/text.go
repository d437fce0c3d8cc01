package nodediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/outline"
)

// Text returns a line diff of the outlines of from and to.  Lines only in
// from are prefixed with "- ", lines only in to with "+ " and common lines
// with "  ".  Identical trees give the empty string.
func Text(from, to model.Node, opts ...outline.Option) string {
	a, b := "", ""
	if !model.IsNil(from) {
		a = outline.String(from, opts...)
	}
	if !model.IsNil(to) {
		b = outline.String(to, opts...)
	}
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}

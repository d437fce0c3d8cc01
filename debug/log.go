package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Out is where Logf writes.
var Out io.Writer = os.Stderr

type typeNamer interface {
	TypeName() string
}

// Logf formats its arguments like fmt.Fprintf to Out.  Nodes are shown by
// their type name and maps and slices of any are shown as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case typeNamer:
			args[i] = x.TypeName()
		}
	}
	fmt.Fprintf(Out, msg, args...)
}

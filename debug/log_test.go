package debug

import (
	"bytes"
	"testing"
)

type named struct{}

func (named) TypeName() string { return "Coding" }

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := Out
	Out = buf
	defer func() { Out = old }()

	tests := []struct {
		name string
		msg  string
		args []any
		want string
	}{
		{"plain", "x=%d\n", []any{3}, "x=3\n"},
		{"scalars", "%v %s %g\n", []any{true, "s", 1.5}, "true s 1.5\n"},
		{"node", "copy %s\n", []any{named{}}, "copy Coding\n"},
		{"map", "%s", []any{map[string]any{"a": 1}}, "{\n   |  \"a\": 1\n   |}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			Logf(tt.msg, tt.args...)
			if got := buf.String(); got != tt.want {
				t.Errorf("Logf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("NODEBASE_DEBUG_TEST", "true")
	if !boolEnv("NODEBASE_DEBUG_TEST") {
		t.Error("expected true")
	}
	t.Setenv("NODEBASE_DEBUG_TEST", "nope")
	if boolEnv("NODEBASE_DEBUG_TEST") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("NODEBASE_DEBUG_UNSET_FOR_TEST") {
		t.Error("expected false for unset")
	}
}

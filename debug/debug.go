package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Copy     bool
	Walk     bool
	Notify   bool
	Validate bool
	Diff     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Copy = boolEnv("NODEBASE_DEBUG_COPY")
	d.Walk = boolEnv("NODEBASE_DEBUG_WALK")
	d.Notify = boolEnv("NODEBASE_DEBUG_NOTIFY")
	d.Validate = boolEnv("NODEBASE_DEBUG_VALIDATE")
	d.Diff = boolEnv("NODEBASE_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Copy() bool {
	return d.Copy
}
func Walk() bool {
	return d.Walk
}
func Notify() bool {
	return d.Notify
}
func Validate() bool {
	return d.Validate
}
func Diff() bool {
	return d.Diff
}

package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pointer bool
	Op      bool
	Patch   bool
	Merge   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pointer = boolEnv("JPATCH_DEBUG_POINTER")
	d.Op = boolEnv("JPATCH_DEBUG_OP")
	d.Patch = boolEnv("JPATCH_DEBUG_PATCH")
	d.Merge = boolEnv("JPATCH_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pointer() bool {
	return d.Pointer
}
func Op() bool {
	return d.Op
}
func Patch() bool {
	return d.Patch
}
func Merge() bool {
	return d.Merge
}

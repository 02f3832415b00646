package debug

import (
	"fmt"
	"os"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
)

// Logf writes a debug message to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// JSON renders node as compact JSON for Logf arguments.
func JSON(node *ir.Node) (s string) {
	if node == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("[raw *ir.Node] %v", *node)
		}
	}()
	return encode.MustString(node)
}

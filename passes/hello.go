// Package passes provides the built-in function passes.
package passes

import (
	"fmt"
	"io"

	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// Hello writes the name of each function it visits to Out. It never
// mutates the function.
type Hello struct {
	Out io.Writer
}

// Name implements [pass.Pass].
func (Hello) Name() string { return "hello" }

// Run implements [pass.Pass].
func (h Hello) Run(fn *ir.Function, _ *pass.AnalysisManager) (pass.Preserved, error) {
	if _, err := fmt.Fprintln(h.Out, fn.Name); err != nil {
		return pass.PreservedAll(), err
	}
	return pass.PreservedAll(), nil
}

package passes

import (
	"fmt"
	"io"

	"github.com/tinyopt/tinyopt/analyses"
	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// PrintOpcodes fetches the opcode listing for the current function from
// the analysis cache and writes it to Out under a header naming the
// function. It performs no mutation, so it always preserves all
// results.
//
// The [analyses.Opcodes] analysis must be registered with the manager
// before this pass runs.
type PrintOpcodes struct {
	Out io.Writer
}

// Name implements [pass.Pass].
func (PrintOpcodes) Name() string { return "print-opcodes" }

// Run implements [pass.Pass].
func (p PrintOpcodes) Run(fn *ir.Function, am *pass.AnalysisManager) (pass.Preserved, error) {
	listing, err := pass.ResultFor[string](am, analyses.OpcodesKey, fn)
	if err != nil {
		return pass.PreservedAll(), err
	}
	if _, err := fmt.Fprintf(p.Out, "opcodes for %s:\n%s", fn.Name, listing); err != nil {
		return pass.PreservedAll(), err
	}
	return pass.PreservedAll(), nil
}

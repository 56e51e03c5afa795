package passes

import (
	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// StripNops removes every nop instruction from the function. When it
// removed nothing the function is untouched and all cached results
// survive; otherwise it preserves none.
type StripNops struct{}

// Name implements [pass.Pass].
func (StripNops) Name() string { return "strip-nops" }

// Run implements [pass.Pass].
func (StripNops) Run(fn *ir.Function, _ *pass.AnalysisManager) (pass.Preserved, error) {
	removed := false
	for _, b := range fn.Blocks {
		kept := b.Instrs[:0]
		for _, in := range b.Instrs {
			if in.Op == ir.Nop {
				removed = true
				continue
			}
			kept = append(kept, in)
		}
		b.Instrs = kept
	}
	if !removed {
		return pass.PreservedAll(), nil
	}
	return pass.PreservedNone(), nil
}

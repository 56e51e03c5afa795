package analyses

import (
	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// InstCountKey is the cache key of the [InstCount] analysis.
const InstCountKey pass.Key = "instcount"

// InstCountResult is the result type of [InstCount].
type InstCountResult struct {
	Total    int
	ByOpcode map[ir.Opcode]int
}

// InstCount counts instructions per opcode across the function.
type InstCount struct{}

// Key implements [pass.Analysis].
func (InstCount) Key() pass.Key { return InstCountKey }

// Run implements [pass.Analysis].
func (InstCount) Run(fn *ir.Function, _ *pass.AnalysisManager) (any, error) {
	res := InstCountResult{ByOpcode: make(map[ir.Opcode]int)}
	for _, b := range fn.Blocks {
		for _, in := range b.Instrs {
			res.Total++
			res.ByOpcode[in.Op]++
		}
	}
	return res, nil
}

// RegisterAll registers every built-in analysis with the manager.
func RegisterAll(am *pass.AnalysisManager) error {
	for _, a := range []pass.Analysis{Opcodes{}, InstCount{}} {
		if err := am.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// Package analyses provides the built-in analyses.
package analyses

import (
	"strings"

	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// OpcodesKey is the cache key of the [Opcodes] analysis.
const OpcodesKey pass.Key = "opcodes"

// Opcodes lists the opcode of every instruction in the function, one
// per line, blocks in order and instructions in program order within
// each block. The result is a string with one newline-terminated line
// per instruction.
type Opcodes struct{}

// Key implements [pass.Analysis].
func (Opcodes) Key() pass.Key { return OpcodesKey }

// Run implements [pass.Analysis].
func (Opcodes) Run(fn *ir.Function, _ *pass.AnalysisManager) (any, error) {
	var sb strings.Builder
	for _, b := range fn.Blocks {
		for _, in := range b.Instrs {
			sb.WriteString(string(in.Op))
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

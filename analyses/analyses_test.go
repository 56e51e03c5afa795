package analyses_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyopt/tinyopt/analyses"
	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

func singleBlockFunc(name string, ops ...ir.Opcode) *ir.Function {
	blk := &ir.Block{Label: "entry"}
	for _, op := range ops {
		blk.Instrs = append(blk.Instrs, ir.Instr{Op: op})
	}
	return &ir.Function{Name: name, Blocks: []*ir.Block{blk}}
}

func TestOpcodes_SingleBlock(t *testing.T) {
	fn := singleBlockFunc("main", ir.Add, ir.Add, ir.Ret)

	res, err := analyses.Opcodes{}.Run(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, "add\nadd\nret\n", res)
}

func TestOpcodes_BlockThenIntraBlockOrder(t *testing.T) {
	fn := &ir.Function{
		Name: "main",
		Blocks: []*ir.Block{
			{Label: "entry", Instrs: []ir.Instr{
				{Op: ir.Load, Args: []string{"a"}},
				{Op: ir.Brif, Args: []string{"a", "body", "done"}},
			}},
			{Label: "body", Instrs: []ir.Instr{
				{Op: ir.Mul, Args: []string{"a", "a"}},
				{Op: ir.Br, Args: []string{"done"}},
			}},
			{Label: "done", Instrs: []ir.Instr{{Op: ir.Ret}}},
		},
	}

	res, err := analyses.Opcodes{}.Run(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, "load\nbrif\nmul\nbr\nret\n", res)
}

func TestOpcodes_OneLinePerInstruction(t *testing.T) {
	fn := singleBlockFunc("main", ir.Load, ir.Add, ir.Store, ir.Nop, ir.Ret)

	res, err := analyses.Opcodes{}.Run(fn, nil)
	require.NoError(t, err)

	listing, ok := res.(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(listing, "\n"))
	assert.Equal(t, fn.NumInstrs(), strings.Count(listing, "\n"))
}

func TestOpcodes_EmptyFunction(t *testing.T) {
	res, err := analyses.Opcodes{}.Run(&ir.Function{Name: "empty"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", res)
}

func TestInstCount(t *testing.T) {
	fn := singleBlockFunc("main", ir.Add, ir.Add, ir.Nop, ir.Ret)

	res, err := analyses.InstCount{}.Run(fn, nil)
	require.NoError(t, err)

	counts, ok := res.(analyses.InstCountResult)
	require.True(t, ok)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, map[ir.Opcode]int{ir.Add: 2, ir.Nop: 1, ir.Ret: 1}, counts.ByOpcode)
}

func TestRegisterAll(t *testing.T) {
	am := pass.NewAnalysisManager()
	require.NoError(t, analyses.RegisterAll(am))

	fn := singleBlockFunc("main", ir.Ret)

	listing, err := pass.ResultFor[string](am, analyses.OpcodesKey, fn)
	require.NoError(t, err)
	assert.Equal(t, "ret\n", listing)

	counts, err := pass.ResultFor[analyses.InstCountResult](am, analyses.InstCountKey, fn)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Total)

	require.ErrorIs(t, analyses.RegisterAll(am), pass.ErrDuplicateAnalysis)
}

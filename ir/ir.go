// Package ir defines a small instruction-level intermediate representation:
// modules contain functions, functions contain labeled basic blocks, and
// blocks contain instructions. Functions are the unit of work the pass
// pipeline operates on.
package ir

// Opcode names an instruction operation.
type Opcode string

// The opcode vocabulary. The parser rejects anything outside this set.
const (
	Add   Opcode = "add"
	Sub   Opcode = "sub"
	Mul   Opcode = "mul"
	Div   Opcode = "div"
	Load  Opcode = "load"
	Store Opcode = "store"
	Phi   Opcode = "phi"
	Call  Opcode = "call"
	Br    Opcode = "br"
	Brif  Opcode = "brif"
	Nop   Opcode = "nop"
	Ret   Opcode = "ret"
)

var opcodes = map[Opcode]bool{
	Add:   true,
	Sub:   true,
	Mul:   true,
	Div:   true,
	Load:  true,
	Store: true,
	Phi:   true,
	Call:  true,
	Br:    true,
	Brif:  true,
	Nop:   true,
	Ret:   true,
}

// LookupOpcode resolves a textual opcode name.
// The second result is false if the name is not part of the vocabulary.
func LookupOpcode(name string) (Opcode, bool) {
	op := Opcode(name)
	return op, opcodes[op]
}

// IsTerminator reports whether the opcode ends a basic block.
func (o Opcode) IsTerminator() bool {
	switch o {
	case Br, Brif, Ret:
		return true
	}
	return false
}

// Instr is a single instruction: an opcode plus its textual operands.
type Instr struct {
	Op   Opcode
	Args []string
}

// Block is a labeled basic block holding instructions in program order.
type Block struct {
	Label  string
	Instrs []Instr
}

// RemoveInstr deletes the instruction at index i, shifting the rest down.
// Out-of-range indexes are ignored.
func (b *Block) RemoveInstr(i int) {
	if i < 0 || i >= len(b.Instrs) {
		return
	}
	b.Instrs = append(b.Instrs[:i], b.Instrs[i+1:]...)
}

// Function is a named sequence of basic blocks.
//
// Skip marks functions excluded from pipeline runs via a
// tinyopt:skip directive in the source text.
type Function struct {
	Name   string
	Blocks []*Block
	Skip   bool
}

// NumInstrs counts instructions across all blocks.
func (f *Function) NumInstrs() int {
	n := 0
	for _, b := range f.Blocks {
		n += len(b.Instrs)
	}
	return n
}

// Module is a named collection of functions in declaration order.
type Module struct {
	Name  string
	Funcs []*Function
}

// Func returns the named function, or nil if the module has none.
func (m *Module) Func(name string) *Function {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

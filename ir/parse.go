package ir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// skipDirective marks the next function as excluded from pipeline runs.
const skipDirective = ";tinyopt:skip"

// Parse reads a module in the textual IR format.
//
// The format is line oriented:
//
//	module NAME          optional, at most once, before any function
//	func NAME {          begins a function
//	LABEL:               begins a basic block
//	OP ARG ARG ...       one instruction per line
//	}                    ends a function
//
// A ';' starts a comment running to the end of the line. An instruction
// appearing before any label opens an implicit "entry" block. A
// ";tinyopt:skip" directive on its own line marks the next function as
// skipped by the pipeline.
func Parse(r io.Reader) (*Module, error) {
	m := &Module{}

	var (
		fn      *Function
		blk     *Block
		skip    bool
		sawFunc bool
	)

	sc := bufio.NewScanner(r)
	lineno := 0

	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())

		if strings.HasPrefix(line, ";") {
			if strings.TrimSpace(line) == skipDirective {
				skip = true
			}
			continue
		}

		// Strip trailing comments
		if i := strings.Index(line, ";"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		switch {
		case fields[0] == "module":
			if sawFunc || fn != nil {
				return nil, fmt.Errorf("line %d: module declaration must precede functions", lineno)
			}
			if m.Name != "" {
				return nil, fmt.Errorf("line %d: duplicate module declaration", lineno)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: module declaration wants exactly one name", lineno)
			}
			m.Name = fields[1]

		case fields[0] == "func":
			if fn != nil {
				return nil, fmt.Errorf("line %d: nested function declaration", lineno)
			}
			if len(fields) != 3 || fields[2] != "{" {
				return nil, fmt.Errorf("line %d: malformed function declaration, want \"func NAME {\"", lineno)
			}
			fn = &Function{Name: fields[1], Skip: skip}
			skip = false
			sawFunc = true

		case fields[0] == "}":
			if fn == nil {
				return nil, fmt.Errorf("line %d: unmatched \"}\"", lineno)
			}
			m.Funcs = append(m.Funcs, fn)
			fn, blk = nil, nil

		case strings.HasSuffix(fields[0], ":"):
			if fn == nil {
				return nil, fmt.Errorf("line %d: label outside function", lineno)
			}
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: trailing tokens after label", lineno)
			}
			blk = &Block{Label: strings.TrimSuffix(fields[0], ":")}
			fn.Blocks = append(fn.Blocks, blk)

		default:
			if fn == nil {
				return nil, fmt.Errorf("line %d: instruction outside function", lineno)
			}
			op, ok := LookupOpcode(fields[0])
			if !ok {
				return nil, fmt.Errorf("line %d: unknown opcode %q", lineno, fields[0])
			}
			if blk == nil {
				blk = &Block{Label: "entry"}
				fn.Blocks = append(fn.Blocks, blk)
			}
			var args []string
			if len(fields) > 1 {
				args = fields[1:]
			}
			blk.Instrs = append(blk.Instrs, Instr{Op: op, Args: args})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if fn != nil {
		return nil, fmt.Errorf("unexpected end of input: function %q not closed", fn.Name)
	}

	return m, nil
}

// ParseFile reads a module from the named file.
func ParseFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

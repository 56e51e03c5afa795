package ir

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the module in the textual IR format accepted by Parse.
func Fprint(w io.Writer, m *Module) error {
	if m.Name != "" {
		if _, err := fmt.Fprintf(w, "module %s\n\n", m.Name); err != nil {
			return err
		}
	}

	for i, fn := range m.Funcs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if fn.Skip {
			if _, err := fmt.Fprintf(w, "%s\n", skipDirective); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "func %s {\n", fn.Name); err != nil {
			return err
		}
		for _, b := range fn.Blocks {
			if _, err := fmt.Fprintf(w, "%s:\n", b.Label); err != nil {
				return err
			}
			for _, in := range b.Instrs {
				line := string(in.Op)
				if len(in.Args) > 0 {
					line += " " + strings.Join(in.Args, " ")
				}
				if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}

	return nil
}

// String renders the module in the textual IR format.
func (m *Module) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, m)
	return sb.String()
}

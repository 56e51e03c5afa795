// Package tinyopt wires the built-in passes and analyses into a
// runnable pipeline over the textual IR defined in the ir package.
package tinyopt

import (
	"io"

	"github.com/tinyopt/tinyopt/analyses"
	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
	"github.com/tinyopt/tinyopt/passes"
)

// DefaultRegistry returns a registry with every built-in pass
// registered under its pipeline name.
func DefaultRegistry() *pass.Registry {
	reg := pass.NewRegistry()
	reg.Register("hello", "1", func(o pass.Options) pass.Pass {
		return passes.Hello{Out: o.Out}
	})
	reg.Register("print-opcodes", "1", func(o pass.Options) pass.Pass {
		return passes.PrintOpcodes{Out: o.Out}
	})
	reg.Register("strip-nops", "1", func(pass.Options) pass.Pass {
		return passes.StripNops{}
	})
	return reg
}

// NewAnalysisManager returns a manager with every built-in analysis
// registered.
func NewAnalysisManager() (*pass.AnalysisManager, error) {
	am := pass.NewAnalysisManager()
	if err := analyses.RegisterAll(am); err != nil {
		return nil, err
	}
	return am, nil
}

// Run resolves the pipeline description against the default registry
// plus any extra registrants, then executes it over every function of
// the module. Passes that print write to out.
//
// Extra registrants are consulted before the built-ins, so callers can
// shadow or extend the default pass set.
func Run(m *ir.Module, pipeline string, out io.Writer, extra ...pass.Registrant) error {
	registrants := append(
		append([]pass.Registrant{}, extra...),
		DefaultRegistry().Registrant(pass.Options{Out: out}),
	)

	pm, err := pass.ParsePipeline(pipeline, registrants...)
	if err != nil {
		return err
	}

	am, err := NewAnalysisManager()
	if err != nil {
		return err
	}

	return pm.RunModule(m, am)
}

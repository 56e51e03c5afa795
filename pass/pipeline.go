package pass

import (
	"fmt"

	"github.com/tinyopt/tinyopt/ir"
)

// Manager holds an ordered pass pipeline and runs it over functions,
// one at a time, applying cache invalidation after each pass.
type Manager struct {
	passes []Pass
}

// NewManager creates an empty pipeline.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends passes to the pipeline in execution order.
func (pm *Manager) Add(passes ...Pass) {
	pm.passes = append(pm.passes, passes...)
}

// Passes returns the pipeline contents in execution order.
func (pm *Manager) Passes() []Pass {
	return pm.passes
}

// Run executes the pipeline over a single function. After each pass,
// cached analysis results the pass did not preserve are dropped.
func (pm *Manager) Run(fn *ir.Function, am *AnalysisManager) error {
	for _, p := range pm.passes {
		preserved, err := p.Run(fn, am)
		if err != nil {
			return fmt.Errorf("pass %q on %s: %w", p.Name(), fn.Name, err)
		}
		am.Invalidate(fn, preserved)
	}
	return nil
}

// RunModule executes the pipeline over each function of the module in
// declaration order. Functions marked skipped are passed over.
func (pm *Manager) RunModule(m *ir.Module, am *AnalysisManager) error {
	for _, fn := range m.Funcs {
		if fn.Skip {
			continue
		}
		if err := pm.Run(fn, am); err != nil {
			return err
		}
	}
	return nil
}

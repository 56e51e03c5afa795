package pass

import (
	"github.com/tinyopt/tinyopt/ir"
)

// Pass is a unit of work invoked once per function.
//
// Run may mutate the function. The returned marker must list exactly
// the analysis results that remain valid after the run; returning
// "all preserved" after a mutation is a contract violation the
// pipeline cannot detect, only trust.
type Pass interface {
	// Name returns the identity the pass is registered and reported under.
	Name() string

	// Run executes the pass on fn. Analysis results are requested
	// through am and are borrowed for the duration of this call only.
	Run(fn *ir.Function, am *AnalysisManager) (Preserved, error)
}

// Key is the process-wide unique identity of an analysis, used as the
// cache index and for invalidation.
type Key string

// Analysis is a read-only computation over a function.
//
// Run must not mutate fn: the result is cached under Key and may be
// served to any number of passes without re-invocation. Purity is a
// caller-trusted contract, not enforced.
type Analysis interface {
	Key() Key
	Run(fn *ir.Function, am *AnalysisManager) (any, error)
}

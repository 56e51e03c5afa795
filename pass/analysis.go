package pass

import (
	"errors"
	"fmt"

	"github.com/tinyopt/tinyopt/ir"
)

var (
	// ErrNoAnalysis is returned when a result is requested under a key
	// no registered analysis owns.
	ErrNoAnalysis = errors.New("no analysis registered")

	// ErrDuplicateAnalysis is returned when two analyses claim one key.
	ErrDuplicateAnalysis = errors.New("analysis key already registered")
)

// AnalysisManager owns the analysis dispatch table and the per-function
// result cache. Analyses must be registered before any pass requests
// their result.
type AnalysisManager struct {
	analyses map[Key]Analysis
	cache    map[*ir.Function]map[Key]any
}

// NewAnalysisManager creates an empty manager.
func NewAnalysisManager() *AnalysisManager {
	return &AnalysisManager{
		analyses: make(map[Key]Analysis),
		cache:    make(map[*ir.Function]map[Key]any),
	}
}

// Register adds an analysis to the dispatch table.
func (am *AnalysisManager) Register(a Analysis) error {
	k := a.Key()
	if _, ok := am.analyses[k]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAnalysis, k)
	}
	am.analyses[k] = a
	return nil
}

// Result returns the analysis result for fn under k, computing it on
// first demand and serving the cached value thereafter.
//
// The result is borrowed from the cache: it is valid only until the
// next invalidation and must not be retained beyond the calling pass's
// invocation.
func (am *AnalysisManager) Result(k Key, fn *ir.Function) (any, error) {
	if res, ok := am.Cached(k, fn); ok {
		return res, nil
	}

	a, ok := am.analyses[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoAnalysis, k)
	}

	res, err := a.Run(fn, am)
	if err != nil {
		return nil, fmt.Errorf("analysis %q on %s: %w", k, fn.Name, err)
	}

	fnCache, ok := am.cache[fn]
	if !ok {
		fnCache = make(map[Key]any)
		am.cache[fn] = fnCache
	}
	fnCache[k] = res

	return res, nil
}

// Cached returns the cached result for fn under k without computing.
func (am *AnalysisManager) Cached(k Key, fn *ir.Function) (any, bool) {
	res, ok := am.cache[fn][k]
	return res, ok
}

// Invalidate drops every cached result for fn whose key p does not
// preserve.
func (am *AnalysisManager) Invalidate(fn *ir.Function, p Preserved) {
	if p.All() {
		return
	}
	for k := range am.cache[fn] {
		if !p.Preserves(k) {
			delete(am.cache[fn], k)
		}
	}
}

// Clear drops every cached result for fn.
func (am *AnalysisManager) Clear(fn *ir.Function) {
	delete(am.cache, fn)
}

// ResultFor is a typed wrapper around [AnalysisManager.Result].
func ResultFor[T any](am *AnalysisManager, k Key, fn *ir.Function) (T, error) {
	var zero T
	res, err := am.Result(k, fn)
	if err != nil {
		return zero, err
	}
	typed, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("analysis %q on %s: result is %T, want %T", k, fn.Name, res, zero)
	}
	return typed, nil
}

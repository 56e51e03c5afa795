package pass_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyopt/tinyopt/ir"
	"github.com/tinyopt/tinyopt/pass"
)

// markerPass records its invocations and returns a fixed marker.
type markerPass struct {
	name string
	log  *[]string
	mark pass.Preserved
	err  error
}

func (p markerPass) Name() string { return p.name }

func (p markerPass) Run(fn *ir.Function, _ *pass.AnalysisManager) (pass.Preserved, error) {
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+fn.Name)
	}
	return p.mark, p.err
}

func TestManager_RunModule_Order(t *testing.T) {
	var log []string
	pm := pass.NewManager()
	pm.Add(
		markerPass{name: "first", log: &log, mark: pass.PreservedAll()},
		markerPass{name: "second", log: &log, mark: pass.PreservedAll()},
	)

	m := &ir.Module{Funcs: []*ir.Function{newFunc("a"), newFunc("b")}}
	require.NoError(t, pm.RunModule(m, pass.NewAnalysisManager()))

	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, log)
}

func TestManager_RunModule_SkipsMarkedFunctions(t *testing.T) {
	var log []string
	pm := pass.NewManager()
	pm.Add(markerPass{name: "only", log: &log, mark: pass.PreservedAll()})

	skipped := newFunc("skipped")
	skipped.Skip = true
	m := &ir.Module{Funcs: []*ir.Function{skipped, newFunc("kept")}}

	require.NoError(t, pm.RunModule(m, pass.NewAnalysisManager()))
	assert.Equal(t, []string{"only:kept"}, log)
}

func TestManager_Run_InvalidatesAfterEachPass(t *testing.T) {
	am := pass.NewAnalysisManager()
	runs := 0
	require.NoError(t, am.Register(countingAnalysis{key: "counting", runs: &runs}))

	fn := newFunc("main")
	_, err := am.Result("counting", fn)
	require.NoError(t, err)

	pm := pass.NewManager()
	pm.Add(markerPass{name: "mutator", mark: pass.PreservedNone()})
	require.NoError(t, pm.Run(fn, am))

	_, ok := am.Cached("counting", fn)
	assert.False(t, ok)
}

func TestManager_Run_PreservingPassKeepsCache(t *testing.T) {
	am := pass.NewAnalysisManager()
	runs := 0
	require.NoError(t, am.Register(countingAnalysis{key: "counting", runs: &runs}))

	fn := newFunc("main")
	_, err := am.Result("counting", fn)
	require.NoError(t, err)

	pm := pass.NewManager()
	pm.Add(markerPass{name: "reader", mark: pass.PreservedAll()})
	require.NoError(t, pm.Run(fn, am))

	_, ok := am.Cached("counting", fn)
	assert.True(t, ok)
}

func TestManager_Run_PassError(t *testing.T) {
	boom := errors.New("boom")
	pm := pass.NewManager()
	pm.Add(markerPass{name: "exploder", mark: pass.PreservedAll(), err: boom})

	err := pm.Run(newFunc("main"), pass.NewAnalysisManager())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `pass "exploder" on main`)
}

func TestPreserved_ZeroValuePreservesNothing(t *testing.T) {
	var p pass.Preserved
	assert.False(t, p.All())
	assert.False(t, p.Preserves("anything"))
}

func TestPreserved_WithOnAllStaysAll(t *testing.T) {
	p := pass.PreservedAll().With("extra")
	assert.True(t, p.All())
	assert.True(t, p.Preserves("unrelated"))
}

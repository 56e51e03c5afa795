// Package pass implements the pass and analysis infrastructure the
// pipeline is built from.
//
// # Overview
//
// A [Pass] is a named unit of work invoked once per function. It may
// mutate the function and must report, via a [Preserved] marker, which
// cached analysis results remain valid afterwards.
//
// An [Analysis] is a read-only computation over a function. Its result
// is cached by the [AnalysisManager] under the analysis's [Key] and
// served from the cache until a pass invalidates it.
//
// # Running a pipeline
//
//	am := pass.NewAnalysisManager()
//	_ = am.Register(analyses.Opcodes{})
//
//	pm := pass.NewManager()
//	pm.Add(passes.PrintOpcodes{Out: os.Stdout})
//
//	err := pm.RunModule(mod, am)
//
// After each pass the manager drops every cached result the pass did
// not preserve. An analysis result obtained from the manager is
// borrowed: it is valid only until the next invalidation and must not
// be retained across pass invocations.
//
// # Registration
//
// Pass names resolve to constructors through a chain of [Registrant]
// callbacks. A registrant either recognizes a name and appends the
// built pass to the manager, or declines by returning false so the
// next registrant can try. [ParsePipeline] drives the chain over a
// comma-separated pipeline description:
//
//	pm, err := pass.ParsePipeline("hello,print-opcodes", reg.Registrant(opts))
//
// [Registry] is the table-backed registrant used for the built-in
// passes; custom registrants can be chained before or after it.
package pass

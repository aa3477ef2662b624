// Package judge runs a solver against in-memory test cases and reports one
// rop.Result[Verdict] per case.
//
// Common usage:
// - New: build a Judge, optionally WithLogger
// - Run: evaluate cases in order, stopping early on context cancellation or,
//   when WithStopOnFailure is set on the context, on the first failing case
// - Summarize: count passed, failed and errored cases
// - StandardCases: canonical maximum-subarray cases
//
// A solver that panics produces a failed Result wrapping ErrSolverPanic; a
// solver that returns a wrong answer produces a successful Result whose
// Verdict is not Passed.
package judge

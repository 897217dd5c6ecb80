// Package sema implements the semantic analysis of a uC program: six
// ordered passes over the syntax tree followed by a well-formedness
// validator. Each pass runs exactly once over the whole tree; user-facing
// problems are reported and replaced with fallback values so analysis
// always completes.
package sema

import (
	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/symbols"
	"ucc/internal/types"
)

// Result is the outcome of analyzing one program.
type Result struct {
	Global *symbols.Global
	Errors int
}

// checker is the shared phase context threaded through every pass: the
// current phase, the environments, and pass-scoped state. Scope-introducing
// nodes save and restore the previous scope on all exit paths.
type checker struct {
	phase  diag.Phase
	rep    diag.Reporter
	global *symbols.Global

	scope  *symbols.Scope
	inLoop bool
	fn     types.Function
}

// countReporter forwards to an underlying reporter while keeping its own
// error count, so Analyze can report a total independent of how the caller
// stores diagnostics.
type countReporter struct {
	next   diag.Reporter
	errors int
}

func (c *countReporter) Report(phase diag.Phase, pos source.Position, msg string) {
	c.errors++
	c.next.Report(phase, pos, msg)
}

// Analyze runs the six analysis passes and the validator over prog, in
// order, reporting through rep. It returns the populated global
// environment and the number of errors found.
func Analyze(prog *ast.Program, rep diag.Reporter) Result {
	counter := &countReporter{next: rep}
	c := &checker{rep: counter, global: symbols.NewGlobal(counter)}

	c.phase = diag.PhaseDeclare
	c.declare(prog)
	c.phase = diag.PhaseResolveTypes
	c.resolveTypes(prog)
	c.phase = diag.PhaseResolveCalls
	c.resolveCalls(prog)
	c.phase = diag.PhaseCheckNames
	c.checkNames(prog)
	c.phase = diag.PhaseControl
	c.control(prog)
	c.phase = diag.PhaseTypeCheck
	c.typeCheck(prog)
	c.phase = diag.PhaseValidate
	c.validate(prog)

	return Result{Global: c.global, Errors: counter.errors}
}

func (c *checker) report(pos source.Position, format string, args ...any) {
	diag.Reportf(c.rep, c.phase, pos, format, args...)
}

// pushScope enters a fresh scope chained to the current one and returns a
// restore function for the caller to defer.
func (c *checker) pushScope() func() {
	parent := c.scope
	c.scope = symbols.NewScope(parent, c.global)
	return func() { c.scope = parent }
}

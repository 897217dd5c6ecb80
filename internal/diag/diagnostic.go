package diag

import (
	"ucc/internal/source"
)

// Phase identifies the stage of the frontend that produced a diagnostic.
type Phase uint8

const (
	PhaseSyntax       Phase = iota // lexing and parsing
	PhaseDeclare                   // declaration collection
	PhaseResolveTypes              // type-name resolution
	PhaseResolveCalls              // call resolution
	PhaseCheckNames                // name and scope checking
	PhaseControl                   // basic control-flow checks
	PhaseTypeCheck                 // full type checking
	PhaseValidate                  // post-pass internal consistency sweep
)

func (p Phase) String() string {
	switch p {
	case PhaseSyntax:
		return "syntax"
	case PhaseDeclare:
		return "declare"
	case PhaseResolveTypes:
		return "resolve-types"
	case PhaseResolveCalls:
		return "resolve-calls"
	case PhaseCheckNames:
		return "check-names"
	case PhaseControl:
		return "control"
	case PhaseTypeCheck:
		return "type-check"
	case PhaseValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// Severity ranks diagnostics; only errors affect the exit status.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single recorded problem.
type Diagnostic struct {
	Phase    Phase
	Severity Severity
	File     source.FileID
	Pos      source.Position
	Message  string
}

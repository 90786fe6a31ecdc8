// Where: internal/domain/credential/result.go
// What: Outcome classes of a credential check.
// Why: Let callers branch on failure class without parsing printed text.
package credential

import "fmt"

// Outcome is the terminal state of a single check run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeMissingCredentials
	OutcomeClientError
	// OutcomeDependencyUnavailable means no trading client implementation was wired.
	OutcomeDependencyUnavailable
)

// Process exit codes.
const (
	ExitSuccess            = 0
	ExitClientError        = 1
	ExitMissingCredentials = 2
)

// ExitCode maps the outcome onto the process exit code.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess:
		return ExitSuccess
	case OutcomeMissingCredentials:
		return ExitMissingCredentials
	default:
		return ExitClientError
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMissingCredentials:
		return "missing-credentials"
	case OutcomeClientError:
		return "client-error"
	case OutcomeDependencyUnavailable:
		return "dependency-unavailable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is what a check run returns. Account is set only on success and
// Err only on the two error outcomes.
type Result struct {
	Outcome  Outcome
	Settings Settings
	Account  fmt.Stringer
	Err      error
}

// ExitCode is shorthand for r.Outcome.ExitCode().
func (r Result) ExitCode() int {
	return r.Outcome.ExitCode()
}

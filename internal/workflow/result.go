package workflow

import (
	"github.com/samzong/commitx/internal/ui"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeFailed
	OutcomeTerminated
	OutcomeCancelled
	OutcomeDryRun
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeFailed:
		return "failed"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Result is the value a session ends with. Messages explain a termination.
type Result struct {
	Outcome  Outcome
	Messages []string
}

func terminated(messages ...string) Result {
	return Result{Outcome: OutcomeTerminated, Messages: messages}
}

const (
	msgSuccess    = "Success"
	msgFailure    = "Failure"
	msgDryRun     = "Dry run mode, no actual commit"
	msgTerminated = "Operation terminated"
	msgCancelled  = "Operation cancelled"
)

// Report prints the closing lines for r: termination messages with the first
// one marked as an error, then exactly one outro.
func Report(p *ui.Printer, r Result) {
	switch r.Outcome {
	case OutcomeCommitted:
		p.OutroSuccess(msgSuccess)
	case OutcomeFailed:
		p.OutroFailure(msgFailure)
	case OutcomeDryRun:
		p.Outro(msgDryRun)
	case OutcomeCancelled:
		p.Cancel(msgCancelled)
	default:
		for i, msg := range r.Messages {
			if i == 0 {
				p.Error(msg)
				continue
			}
			p.ErrorDetail(msg)
		}
		p.OutroFailure(msgTerminated)
	}
}

// ReportFault prints an unexpected failure with its cleaned stack trace.
func ReportFault(p *ui.Printer, err error) {
	lines := ui.PrettyError(err)
	p.Error(lines[0])
	p.Dim(lines[1:]...)
	p.OutroFailure(msgTerminated)
}

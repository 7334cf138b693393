package model

import "github.com/intrueder/npm-publish/pkg/domain/types"

// OutcomeStatus classifies how a run ended
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeNeutral OutcomeStatus = "neutral"
	OutcomeFailure OutcomeStatus = "failure"
)

// Outcome is the result of a release run. A neutral outcome means the work was
// intentionally skipped (e.g. the tag already exists), which is not a failure.
type Outcome struct {
	Status OutcomeStatus
	Reason string
	Err    error

	Published bool
	TagName   string
	// TagWarning is set when tagging failed after a successful publish. It does not fail the run.
	TagWarning error
}

// Success creates a successful outcome
func Success(reason string) *Outcome {
	return &Outcome{Status: OutcomeSuccess, Reason: reason}
}

// Neutral creates a neutral outcome
func Neutral(reason string) *Outcome {
	return &Outcome{Status: OutcomeNeutral, Reason: reason}
}

// Failure creates a failed outcome carrying err
func Failure(err error) *Outcome {
	o := &Outcome{Status: OutcomeFailure, Err: err}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// ExitCode maps the outcome to a process exit status
func (o *Outcome) ExitCode() int {
	switch o.Status {
	case OutcomeSuccess:
		return types.ExitSuccess
	case OutcomeNeutral:
		return types.ExitNeutral
	default:
		return types.ExitFailure
	}
}

package model_test

import (
	"errors"
	"testing"

	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

func TestOutcome_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *model.Outcome
		expected int
	}{
		{
			name:     "Success",
			outcome:  model.Success("released"),
			expected: types.ExitSuccess,
		},
		{
			name:     "Not a release commit is success",
			outcome:  model.Success("not a release commit"),
			expected: types.ExitSuccess,
		},
		{
			name:     "Neutral",
			outcome:  model.Neutral("tag already exists"),
			expected: types.ExitNeutral,
		},
		{
			name:     "Failure",
			outcome:  model.Failure(errors.New("boom")),
			expected: types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFailure_Reason(t *testing.T) {
	o := model.Failure(errors.New("missing version field"))
	if o.Reason != "missing version field" {
		t.Errorf("Reason = %q", o.Reason)
	}
	if o.Status != model.OutcomeFailure {
		t.Errorf("Status = %q", o.Status)
	}
}

package cli

import (
	"context"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/sethvargo/go-githubactions"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	neutralColor = color.New(color.FgYellow, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// outputFileEnv names the step output file. It is only set inside an Actions step.
const outputFileEnv = "GITHUB_OUTPUT"

// report publishes the outcome as step outputs and annotations, prints a one-line
// summary to stderr and returns the error Run should end with.
func report(ctx context.Context, gha *githubactions.Action, o *options, outcome *model.Outcome) error {
	published := strconv.FormatBool(outcome.Published)
	if o.getenv(outputFileEnv) != "" {
		gha.SetOutput("published", published)
		gha.SetOutput("tag", outcome.TagName)
	} else {
		ctxlog.From(ctx).Info("Step outputs",
			"published", published,
			"tag", outcome.TagName,
		)
	}

	if outcome.TagWarning != nil {
		gha.Warningf("package was published but the tag was not created: %s", outcome.TagWarning.Error())
	}

	switch outcome.Status {
	case model.OutcomeSuccess:
		_, _ = successColor.Fprintf(o.stderr, "success: %s\n", outcome.Reason)
		if outcome.TagWarning != nil {
			_, _ = warningColor.Fprintf(o.stderr, "warning: %s\n", outcome.TagWarning.Error())
		}
	case model.OutcomeNeutral:
		_, _ = neutralColor.Fprintf(o.stderr, "neutral: %s\n", outcome.Reason)
	default:
		gha.Errorf("%s", outcome.Reason)
		_, _ = failureColor.Fprintf(o.stderr, "failure: %s\n", outcome.Reason)
	}

	return outcomeError(outcome)
}

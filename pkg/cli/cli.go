package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"

	"github.com/intrueder/npm-publish/pkg/cli/config"
	githubcontroller "github.com/intrueder/npm-publish/pkg/controller/github"
	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
	"github.com/intrueder/npm-publish/pkg/infra/command"
	"github.com/intrueder/npm-publish/pkg/infra/git"
	"github.com/intrueder/npm-publish/pkg/infra/manifest"
	"github.com/intrueder/npm-publish/pkg/infra/npm"
	"github.com/intrueder/npm-publish/pkg/usecase"
)

type options struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// Option is a functional option for Run
type Option func(*options)

// WithOutput sets where workflow commands, subprocess output and the summary are written
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithGetenv sets the environment lookup used for workflow files such as GITHUB_OUTPUT
func WithGetenv(getenv func(string) string) Option {
	return func(o *options) {
		o.getenv = getenv
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(o)
	}

	var (
		loggerCfg config.Logger
		actionCfg config.Action
		npmCfg    config.NPM
		tagCfg    config.Tag
		fileCfg   config.File
		logger    *slog.Logger
	)

	var flags []cli.Flag
	flags = append(flags, actionCfg.Flags()...)
	flags = append(flags, npmCfg.Flags()...)
	flags = append(flags, tagCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)
	flags = append(flags, loggerCfg.Flags()...)

	app := &cli.Command{
		Name:    "npm-publish",
		Usage:   "Publish to npm and tag the version when a push contains the release commit",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		// Exit codes are decided by the caller through ExitCode
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, c *cli.Command) error {
			gha := githubactions.New(
				githubactions.WithWriter(o.stdout),
				githubactions.WithGetenv(o.getenv),
			)

			settings, err := fileCfg.Load()
			if err != nil {
				return report(ctx, gha, o, model.Failure(err))
			}
			settings.Apply(c, &actionCfg, &tagCfg, &npmCfg)

			if npmCfg.Token != "" {
				gha.AddMask(npmCfg.Token)
			}

			outcome := runRelease(ctx, gha, o, &actionCfg, &npmCfg, &tagCfg)
			return report(ctx, gha, o, outcome)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		if ExitCode(err) == types.ExitNeutral {
			logger.Info("Finished with neutral status", slog.Any("reason", err))
		} else {
			logger.Error("CLI execution failed", slog.Any("error", err))
		}
		return err
	}

	return nil
}

func runRelease(ctx context.Context, gha *githubactions.Action, o *options, actionCfg *config.Action, npmCfg *config.NPM, tagCfg *config.Tag) *model.Outcome {
	event, err := githubcontroller.LoadPushEvent(ctx, actionCfg.EventPath)
	if err != nil {
		return model.Failure(err)
	}

	runner := command.New(command.WithOutput(o.stdout))
	releaseUC := usecase.NewRelease(
		manifest.NewReader(),
		usecase.NewCommitMatcher(),
		usecase.NewPublisher(npm.NewClient(runner, actionCfg.Workspace)),
		usecase.NewTagger(git.NewClient(runner, actionCfg.Workspace)),
		usecase.WithStepGroup(func(title string) func() {
			gha.Group(title)
			return gha.EndGroup
		}),
	)

	return releaseUC.Run(ctx, &model.ReleaseInput{
		WorkspaceDir:         actionCfg.Workspace,
		Event:                event,
		CommitMessagePattern: actionCfg.CommitMessagePattern,
		TagName:              tagCfg.Name,
		TagMessage:           tagCfg.Message,
		GitUserName:          actionCfg.GitUserName,
		GitUserEmail:         actionCfg.GitUserEmail,
		TagCheckRemote:       tagCfg.CheckRemote,
		DryRun:               actionCfg.DryRun,
		Publish:              npmCfg.Settings(),
	})
}

// ExitCode maps an error returned by Run to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return types.ExitSuccess
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}
	return types.ExitFailure
}

func outcomeError(outcome *model.Outcome) error {
	switch outcome.Status {
	case model.OutcomeSuccess:
		return nil
	case model.OutcomeNeutral:
		return cli.Exit(outcome.Reason, types.ExitNeutral)
	default:
		if outcome.Err != nil {
			return outcome.Err
		}
		return goerr.New(outcome.Reason)
	}
}

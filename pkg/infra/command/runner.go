// Package command runs external programs such as npm and git.
package command

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// ExitCodeNotStarted is set in CommandResult when the program could not be started
const ExitCodeNotStarted = -1

type runner struct {
	output io.Writer
}

// Option is a functional option for the runner
type Option func(*runner)

// WithOutput mirrors the child's stdout and stderr to w while it runs
func WithOutput(w io.Writer) Option {
	return func(r *runner) {
		r.output = w
	}
}

// New creates a CommandRunner backed by os/exec
func New(opts ...Option) interfaces.CommandRunner {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args in dir and waits for it to exit
func (r *runner) Run(ctx context.Context, dir, name string, args ...string) (*model.CommandResult, error) {
	logger := ctxlog.From(ctx)

	// #nosec G204 -- program names are fixed by callers
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	if r.output != nil {
		cmd.Stdout = io.MultiWriter(&stdout, r.output)
		cmd.Stderr = io.MultiWriter(&stderr, r.output)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	logger.Debug("Running command",
		"name", name,
		"args", args,
		"dir", dir,
	)

	err := cmd.Run()
	result := &model.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, goerr.Wrap(err, "command exited with non-zero status",
				goerr.V("command", name),
				goerr.V("args", args),
				goerr.V("exit_code", result.ExitCode),
				goerr.V("stderr", strings.TrimSpace(result.Stderr)),
			)
		}

		result.ExitCode = ExitCodeNotStarted
		return result, goerr.Wrap(err, "failed to run command",
			goerr.V("command", name),
			goerr.V("args", args),
		)
	}

	return result, nil
}

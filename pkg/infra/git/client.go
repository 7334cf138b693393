// Package git implements VersionControlClient by invoking the git CLI.
package git

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

const binary = "git"

type client struct {
	runner interfaces.CommandRunner
	dir    string
}

// NewClient creates a git client operating on the working tree at dir
func NewClient(runner interfaces.CommandRunner, dir string) interfaces.VersionControlClient {
	return &client{
		runner: runner,
		dir:    dir,
	}
}

func tagRef(name string) string {
	return "refs/tags/" + name
}

// TagExists uses `git rev-parse -q --verify`, which exits non-zero when the ref is absent.
// Only a failure to run git at all is reported as an error.
func (c *client) TagExists(ctx context.Context, name string) (bool, error) {
	result, err := c.runner.Run(ctx, c.dir, binary, "rev-parse", "-q", "--verify", tagRef(name))
	if err != nil {
		if result != nil && result.ExitCode > 0 {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check tag existence",
			goerr.T(types.ErrTagTag),
			goerr.V("tag", name),
		)
	}
	return true, nil
}

// RemoteTagExists lists the tag ref on the remote; empty output means it does not exist
func (c *client) RemoteTagExists(ctx context.Context, remote, name string) (bool, error) {
	result, err := c.runner.Run(ctx, c.dir, binary, "ls-remote", "--tags", remote, tagRef(name))
	if err != nil {
		return false, goerr.Wrap(err, "failed to list remote tags",
			goerr.T(types.ErrTagTag),
			goerr.V("remote", remote),
			goerr.V("tag", name),
		)
	}
	return strings.TrimSpace(result.Stdout) != "", nil
}

// SetIdentity runs `git config --local` for user.name and user.email
func (c *client) SetIdentity(ctx context.Context, name, email string) error {
	settings := [][2]string{
		{"user.name", name},
		{"user.email", email},
	}
	for _, kv := range settings {
		if _, err := c.runner.Run(ctx, c.dir, binary, "config", "--local", kv[0], kv[1]); err != nil {
			return goerr.Wrap(err, "failed to set git identity",
				goerr.T(types.ErrTagTag),
				goerr.V("key", kv[0]),
			)
		}
	}
	return nil
}

// CreateAnnotatedTag runs `git tag -a -m <message> <name>`
func (c *client) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	if _, err := c.runner.Run(ctx, c.dir, binary, "tag", "-a", "-m", message, name); err != nil {
		return goerr.Wrap(err, "failed to create tag",
			goerr.T(types.ErrTagTag),
			goerr.V("tag", name),
		)
	}
	return nil
}

// PushTag runs `git push <remote> refs/tags/<name>`
func (c *client) PushTag(ctx context.Context, remote, name string) error {
	if _, err := c.runner.Run(ctx, c.dir, binary, "push", remote, tagRef(name)); err != nil {
		return goerr.Wrap(err, "failed to push tag",
			goerr.T(types.ErrTagTag),
			goerr.V("remote", remote),
			goerr.V("tag", name),
		)
	}
	return nil
}

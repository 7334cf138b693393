// Package npm implements PackageRegistryClient on top of the npm CLI.
package npm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

const (
	binary = "npm"

	// CredentialsFile is written into the workspace root
	CredentialsFile = ".npmrc"
)

type client struct {
	runner interfaces.CommandRunner
	dir    string
}

// NewClient creates a npm client bound to the workspace directory
func NewClient(runner interfaces.CommandRunner, workspaceDir string) interfaces.PackageRegistryClient {
	return &client{
		runner: runner,
		dir:    workspaceDir,
	}
}

// WriteCredentials overwrites <workspace>/.npmrc with an auth token line for host
func (c *client) WriteCredentials(ctx context.Context, host, token string) error {
	path := filepath.Join(c.dir, CredentialsFile)
	line := fmt.Sprintf("//%s/:_authToken=%s\n", host, token)

	if err := os.WriteFile(path, []byte(line), 0600); err != nil {
		return goerr.Wrap(err, "failed to write npm credentials",
			goerr.T(types.ErrTagRegistry),
			goerr.V("path", path),
		)
	}
	return nil
}

// SetRegistry runs `npm config set registry <url>`
func (c *client) SetRegistry(ctx context.Context, url string) error {
	if _, err := c.runner.Run(ctx, c.dir, binary, "config", "set", "registry", url); err != nil {
		return goerr.Wrap(err, "failed to set npm registry",
			goerr.T(types.ErrTagRegistry),
			goerr.V("url", url),
		)
	}
	return nil
}

// Publish runs `npm publish --access <access>`
func (c *client) Publish(ctx context.Context, access string, dryRun bool) error {
	args := []string{"publish", "--access", access}
	if dryRun {
		args = append(args, "--dry-run")
	}

	if _, err := c.runner.Run(ctx, c.dir, binary, args...); err != nil {
		return goerr.Wrap(err, "npm publish failed",
			goerr.T(types.ErrTagRegistry),
			goerr.V("access", access),
		)
	}
	return nil
}

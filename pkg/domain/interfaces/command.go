package interfaces

import (
	"context"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// CommandRunner runs an external program and waits for it to exit
type CommandRunner interface {
	// Run executes name with args in dir. A non-zero exit status is returned as an error
	// together with the captured result.
	Run(ctx context.Context, dir, name string, args ...string) (*model.CommandResult, error)
}

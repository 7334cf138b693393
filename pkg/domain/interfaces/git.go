package interfaces

import "context"

// VersionControlClient defines git operations needed to tag a release.
// Implementations are bound to a single working tree.
type VersionControlClient interface {
	// TagExists reports whether refs/tags/<name> resolves in the local repository
	TagExists(ctx context.Context, name string) (bool, error)

	// RemoteTagExists reports whether refs/tags/<name> exists on the remote
	RemoteTagExists(ctx context.Context, remote, name string) (bool, error)

	// SetIdentity sets the local committer name and email
	SetIdentity(ctx context.Context, name, email string) error

	// CreateAnnotatedTag creates an annotated tag pointing at HEAD
	CreateAnnotatedTag(ctx context.Context, name, message string) error

	// PushTag pushes refs/tags/<name> to the remote
	PushTag(ctx context.Context, remote, name string) error
}

package interfaces

import "context"

// PackageRegistryClient defines operations of the package manager CLI used for publishing.
// Implementations are bound to a single workspace directory.
type PackageRegistryClient interface {
	// WriteCredentials stores the auth token for the registry host in the workspace .npmrc
	WriteCredentials(ctx context.Context, host, token string) error

	// SetRegistry points the client at the registry URL
	SetRegistry(ctx context.Context, url string) error

	// Publish publishes the package in the workspace with the given access level
	Publish(ctx context.Context, access string, dryRun bool) error
}

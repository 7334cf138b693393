package interfaces

import (
	"context"
	"regexp"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// ReleaseUseCase runs one release decision for a push event
type ReleaseUseCase interface {
	// Run never returns nil. Errors are carried in the outcome.
	Run(ctx context.Context, input *model.ReleaseInput) *model.Outcome
}

// ManifestReader loads the project manifest from a workspace
type ManifestReader interface {
	Read(ctx context.Context, workspaceDir string) (*model.Manifest, error)
}

// CommitMatcher decides whether a push contains the release commit for a version
type CommitMatcher interface {
	Match(ctx context.Context, pattern *regexp.Regexp, version string, commits []model.CommitRecord) bool
}

// PublisherUseCase publishes a package version to the registry
type PublisherUseCase interface {
	Publish(ctx context.Context, opts *model.PublishOptions) error
}

// TaggerUseCase creates the release tag
type TaggerUseCase interface {
	CreateTag(ctx context.Context, cfg *model.ReleaseConfig, opts *model.TagOptions) (*model.TagResult, error)
}

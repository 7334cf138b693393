package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

type publisher struct {
	client interfaces.PackageRegistryClient
}

// NewPublisher creates a PublisherUseCase on top of a registry client
func NewPublisher(client interfaces.PackageRegistryClient) interfaces.PublisherUseCase {
	return &publisher{
		client: client,
	}
}

// Publish writes credentials, points the client at the registry and publishes.
// Failures are not retried: publishing the same version twice is rejected by the registry.
func (uc *publisher) Publish(ctx context.Context, opts *model.PublishOptions) error {
	logger := ctxlog.From(ctx)

	registry := opts.Registry
	if registry == "" {
		registry = model.DefaultRegistry
	}
	access := opts.Access
	if access == "" {
		access = model.DefaultAccess
	}

	switch {
	case opts.Token != "":
		if err := uc.client.WriteCredentials(ctx, registry, opts.Token); err != nil {
			return goerr.Wrap(err, "failed to configure registry credentials", goerr.V("registry", registry))
		}
	case opts.DryRun:
		logger.Warn("npm token is not set, dry run continues without credentials")
	default:
		return goerr.New("npm token is required to publish", goerr.T(types.ErrTagConfig))
	}

	if err := uc.client.SetRegistry(ctx, "https://"+registry); err != nil {
		return goerr.Wrap(err, "failed to configure registry", goerr.V("registry", registry))
	}

	logger.Info("Publishing package",
		"version", opts.Version,
		"registry", registry,
		"access", access,
		"dry_run", opts.DryRun,
	)

	if err := uc.client.Publish(ctx, access, opts.DryRun); err != nil {
		return goerr.Wrap(err, "failed to publish package", goerr.V("version", opts.Version))
	}

	return nil
}

package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// DefaultRemote is the remote tags are checked against and pushed to
const DefaultRemote = "origin"

type tagger struct {
	git interfaces.VersionControlClient
}

// NewTagger creates a TaggerUseCase on top of a git client
func NewTagger(git interfaces.VersionControlClient) interfaces.TaggerUseCase {
	return &tagger{
		git: git,
	}
}

// CreateTag creates and pushes an annotated tag for cfg.Version.
// An existing tag is never overwritten: the result has AlreadyExists set and no
// identity, tag or push command is run.
func (uc *tagger) CreateTag(ctx context.Context, cfg *model.ReleaseConfig, opts *model.TagOptions) (*model.TagResult, error) {
	logger := ctxlog.From(ctx)

	name := cfg.ResolvedTagName()
	message := cfg.ResolvedTagMessage()

	exists, err := uc.git.TagExists(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check local tag", goerr.V("tag", name))
	}
	if !exists && opts.CheckRemote {
		exists, err = uc.git.RemoteTagExists(ctx, DefaultRemote, name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to check remote tag", goerr.V("tag", name))
		}
	}

	if exists {
		logger.Warn("Tag already exists", "tag", name)
		return &model.TagResult{Name: name, AlreadyExists: true}, nil
	}

	if opts.DryRun {
		logger.Info("Dry run, tag is not created", "tag", name, "message", message)
		return &model.TagResult{Name: name}, nil
	}

	if err := uc.git.SetIdentity(ctx, cfg.TagAuthor.Name, cfg.TagAuthor.Email); err != nil {
		return nil, goerr.Wrap(err, "failed to configure tag author", goerr.V("tag", name))
	}

	if err := uc.git.CreateAnnotatedTag(ctx, name, message); err != nil {
		return nil, goerr.Wrap(err, "failed to create annotated tag", goerr.V("tag", name))
	}

	if err := uc.git.PushTag(ctx, DefaultRemote, name); err != nil {
		return nil, goerr.Wrap(err, "failed to push tag", goerr.V("tag", name))
	}

	return &model.TagResult{Name: name}, nil
}

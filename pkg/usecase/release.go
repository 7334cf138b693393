package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

// Outcome reasons
const (
	ReasonNotReleaseCommit = "not a release commit"
	ReasonReleased         = "released"
)

// StepGroup starts a collapsible log section and returns the function that closes it
type StepGroup func(title string) (end func())

func noopStepGroup(string) func() { return func() {} }

type releaseUseCase struct {
	manifest  interfaces.ManifestReader
	matcher   interfaces.CommitMatcher
	publisher interfaces.PublisherUseCase
	tagger    interfaces.TaggerUseCase
	stepGroup StepGroup
}

// ReleaseOption is a functional option for the release use case
type ReleaseOption func(*releaseUseCase)

// WithStepGroup sets how log sections are opened around long steps
func WithStepGroup(g StepGroup) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.stepGroup = g
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(
	manifest interfaces.ManifestReader,
	matcher interfaces.CommitMatcher,
	publisher interfaces.PublisherUseCase,
	tagger interfaces.TaggerUseCase,
	opts ...ReleaseOption,
) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		manifest:  manifest,
		matcher:   matcher,
		publisher: publisher,
		tagger:    tagger,
		stepGroup: noopStepGroup,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run loads the manifest, decides whether the push holds the release commit and,
// if so, publishes the package and tags the version.
//
// Publishing failures fail the run. Tagging failures after a successful publish are
// logged and kept in Outcome.TagWarning. An existing tag yields a neutral outcome.
func (uc *releaseUseCase) Run(ctx context.Context, input *model.ReleaseInput) *model.Outcome {
	logger := ctxlog.From(ctx)

	if input.WorkspaceDir == "" {
		return model.Failure(goerr.New("workspace directory is not set", goerr.T(types.ErrTagConfig)))
	}
	if input.Event == nil {
		return model.Failure(goerr.New("push event is not loaded", goerr.T(types.ErrTagEvent)))
	}

	logger.Info("Starting release check", "workspace", input.WorkspaceDir, "ref", input.Event.Ref)

	manifest, err := uc.manifest.Read(ctx, input.WorkspaceDir)
	if err != nil {
		return model.Failure(goerr.Wrap(err, "failed to load manifest"))
	}

	cfg, pattern, err := buildReleaseConfig(manifest, input)
	if err != nil {
		return model.Failure(err)
	}

	logger.Info("Release config", slog.Any("config", cfg))

	if !uc.matcher.Match(ctx, pattern, cfg.Version, input.Event.Commits) {
		logger.Info("Not a release commit. Exiting.")
		return model.Success(ReasonNotReleaseCommit)
	}

	end := uc.stepGroup("Publishing to npm")
	err = uc.publisher.Publish(ctx, &model.PublishOptions{
		Version:  cfg.Version,
		Token:    input.Publish.Token,
		Registry: input.Publish.Registry,
		Access:   input.Publish.Access,
		DryRun:   input.DryRun,
	})
	end()
	if err != nil {
		return model.Failure(goerr.Wrap(err, "failed to publish", goerr.V("version", cfg.Version)))
	}
	logger.Info("Package published", "version", cfg.Version)

	result, err := uc.tagger.CreateTag(ctx, cfg, &model.TagOptions{
		CheckRemote: input.TagCheckRemote,
		DryRun:      input.DryRun,
	})
	if err != nil {
		logger.Error("Failed to create a tag", "error", err)
		outcome := model.Success(ReasonReleased)
		outcome.Published = true
		outcome.TagWarning = err
		return outcome
	}

	if result.AlreadyExists {
		logger.Error("Tag already exists", "tag", result.Name)
		outcome := model.Neutral(fmt.Sprintf("tag %s already exists", result.Name))
		outcome.Published = true
		outcome.TagName = result.Name
		return outcome
	}

	logger.Info("Tag created", "tag", result.Name)
	outcome := model.Success(ReasonReleased)
	outcome.Published = true
	outcome.TagName = result.Name
	return outcome
}

func buildReleaseConfig(manifest *model.Manifest, input *model.ReleaseInput) (*model.ReleaseConfig, *regexp.Regexp, error) {
	if manifest.Version == "" {
		return nil, nil, goerr.New("missing version field", goerr.T(types.ErrTagMissingVersion))
	}

	pattern, err := CompilePattern(input.CommitMessagePattern)
	if err != nil {
		return nil, nil, err
	}

	tagName := input.TagName
	if tagName == "" {
		tagName = model.DefaultTagName
	}
	tagMessage := input.TagMessage
	if tagMessage == "" {
		tagMessage = model.DefaultTagMessage
	}

	owner := input.Event.Owner
	author := model.TagAuthor{
		Name:  owner.Name,
		Email: owner.Email,
	}
	if author.Name == "" {
		author.Name = owner.Login
	}
	if input.GitUserName != "" {
		author.Name = input.GitUserName
	}
	if input.GitUserEmail != "" {
		author.Email = input.GitUserEmail
	}

	return &model.ReleaseConfig{
		Version:              manifest.Version,
		CommitMessagePattern: input.CommitMessagePattern,
		TagName:              tagName,
		TagMessage:           tagMessage,
		TagAuthor:            author,
	}, pattern, nil
}

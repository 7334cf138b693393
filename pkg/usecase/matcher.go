package usecase

import (
	"context"
	"regexp"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

// CompilePattern compiles the commit message pattern. The first capture group
// must hold the version, so a pattern without any group is rejected.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, goerr.New("commit message pattern is required", goerr.T(types.ErrTagConfig))
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid commit message pattern",
			goerr.T(types.ErrTagConfig),
			goerr.V("pattern", pattern),
		)
	}

	if re.NumSubexp() < 1 {
		return nil, goerr.New("commit message pattern must have a capture group for the version",
			goerr.T(types.ErrTagConfig),
			goerr.V("pattern", pattern),
		)
	}

	return re, nil
}

type commitMatcher struct{}

// NewCommitMatcher creates a new CommitMatcher
func NewCommitMatcher() interfaces.CommitMatcher {
	return &commitMatcher{}
}

// Match reports whether any commit message matches pattern with the first group equal to version.
// The comparison is exact. Scanning stops at the first hit.
func (m *commitMatcher) Match(ctx context.Context, pattern *regexp.Regexp, version string, commits []model.CommitRecord) bool {
	logger := ctxlog.From(ctx)

	logger.Info("Looking for release commit",
		"version", version,
		"pattern", pattern.String(),
		"commit_count", len(commits),
	)

	for _, commit := range commits {
		logger.Debug("Checking commit", "id", commit.ID, "message", commit.Message)

		match := pattern.FindStringSubmatch(commit.Message)
		if len(match) > 1 && match[1] == version {
			logger.Info("Release commit found", "id", commit.ID)
			return true
		}
	}

	return false
}

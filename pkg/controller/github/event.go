package github

import (
	"context"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

// PushEventType is the X-GitHub-Event name of the payload handled here
const PushEventType = "push"

// LoadPushEvent reads the event payload file written by the Actions runner (GITHUB_EVENT_PATH)
func LoadPushEvent(ctx context.Context, path string) (*model.PushEvent, error) {
	if path == "" {
		return nil, goerr.New("event path is not set", goerr.T(types.ErrTagEvent))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload",
			goerr.V("path", path),
			goerr.T(types.ErrTagEvent),
		)
	}

	event, err := ParsePushEvent(ctx, data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load push event", goerr.V("path", path))
	}
	return event, nil
}

// ParsePushEvent converts a push webhook payload into model.PushEvent
func ParsePushEvent(ctx context.Context, data []byte) (*model.PushEvent, error) {
	logger := ctxlog.From(ctx)

	payload, err := github.ParseWebHook(PushEventType, data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid push event payload", goerr.T(types.ErrTagEvent))
	}

	push, ok := payload.(*github.PushEvent)
	if !ok {
		return nil, goerr.New("payload is not a push event", goerr.T(types.ErrTagEvent))
	}

	// Use Get*() helper methods for nil-safe field access
	owner := push.GetRepo().GetOwner()
	if push.GetRepo() == nil {
		logger.Warn("Push event has no repository information, tag author falls back to inputs")
	}

	event := &model.PushEvent{
		Ref:   push.GetRef(),
		After: push.GetAfter(),
		Owner: model.RepositoryOwner{
			Name:  owner.GetName(),
			Email: owner.GetEmail(),
			Login: owner.GetLogin(),
		},
		Commits: make([]model.CommitRecord, 0, len(push.Commits)),
	}

	for _, c := range push.Commits {
		if c == nil {
			continue
		}
		event.Commits = append(event.Commits, model.CommitRecord{
			ID:      c.GetID(),
			Message: c.GetMessage(),
		})
	}

	logger.Debug("Push event loaded",
		"ref", event.Ref,
		"after", event.After,
		"owner", event.Owner.Login,
		"commits", len(event.Commits),
	)

	return event, nil
}

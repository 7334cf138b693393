package github_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	githubcontroller "github.com/intrueder/npm-publish/pkg/controller/github"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

func TestLoadPushEvent(t *testing.T) {
	ctx := context.Background()

	event, err := githubcontroller.LoadPushEvent(ctx, "testdata/push.json")
	gt.NoError(t, err)

	gt.Equal(t, event.Ref, "refs/heads/main")
	gt.Equal(t, event.After, "0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c")
	gt.Equal(t, event.Owner.Name, "Octo Cat")
	gt.Equal(t, event.Owner.Email, "octocat@users.noreply.github.com")
	gt.Equal(t, event.Owner.Login, "octocat")

	// Commit order is preserved
	gt.Number(t, len(event.Commits)).Equal(2)
	gt.Equal(t, event.Commits[0].Message, "fix: handle empty config")
	gt.Equal(t, event.Commits[1].Message, "release: 2.0.0")
	gt.Equal(t, event.Commits[1].ID, "0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c")
}

func TestLoadPushEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		_, err := githubcontroller.LoadPushEvent(ctx, "")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagEvent))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := githubcontroller.LoadPushEvent(ctx, filepath.Join(t.TempDir(), "event.json"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagEvent))
	})

	t.Run("broken payload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "event.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"commits": [`), 0644))

		_, err := githubcontroller.LoadPushEvent(ctx, path)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagEvent))
	})
}

func TestParsePushEvent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		payload     string
		wantCommits []string
		wantOwner   string
	}{
		{
			name:        "no commits",
			payload:     `{"ref": "refs/tags/v1.0.0", "commits": []}`,
			wantCommits: []string{},
		},
		{
			name:        "commits field absent",
			payload:     `{"ref": "refs/heads/main"}`,
			wantCommits: []string{},
		},
		{
			name:        "owner without name",
			payload:     `{"repository": {"owner": {"login": "octocat"}}, "commits": [{"message": "release: 1.0.0"}]}`,
			wantCommits: []string{"release: 1.0.0"},
			wantOwner:   "",
		},
		{
			name:        "multi-line messages are kept intact",
			payload:     `{"commits": [{"message": "release: 1.0.0\n\nbody"}]}`,
			wantCommits: []string{"release: 1.0.0\n\nbody"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := githubcontroller.ParsePushEvent(ctx, []byte(tc.payload))
			gt.NoError(t, err)

			messages := make([]string, 0, len(event.Commits))
			for _, c := range event.Commits {
				messages = append(messages, c.Message)
			}
			gt.Equal(t, messages, tc.wantCommits)
			gt.Equal(t, event.Owner.Name, tc.wantOwner)
		})
	}
}

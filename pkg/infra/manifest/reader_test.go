package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/intrueder/npm-publish/pkg/domain/types"
	"github.com/intrueder/npm-publish/pkg/infra/manifest"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0644))
	return dir
}

func TestReader_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("reads name and version", func(t *testing.T) {
		dir := writeManifest(t, `{"name": "@scope/pkg", "version": "2.0.0", "private": false}`)

		m, err := manifest.NewReader().Read(ctx, dir)
		gt.NoError(t, err)
		gt.Equal(t, m.Name, "@scope/pkg")
		gt.Equal(t, m.Version, "2.0.0")
	})

	t.Run("keeps version verbatim", func(t *testing.T) {
		dir := writeManifest(t, `{"version": "1.0.0-beta.1+build.5"}`)

		m, err := manifest.NewReader().Read(ctx, dir)
		gt.NoError(t, err)
		gt.Equal(t, m.Version, "1.0.0-beta.1+build.5")
		gt.Equal(t, m.Name, "")
	})
}

func TestReader_Read_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content *string
		wantErr func(err error) bool
	}{
		{
			name:    "File does not exist",
			content: nil,
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagManifestNotFound) },
		},
		{
			name:    "Invalid JSON",
			content: ptr(`{"version": "1.0.0",`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagManifestParse) },
		},
		{
			name:    "Not an object",
			content: ptr(`["1.0.0"]`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagManifestParse) },
		},
		{
			name:    "Missing version",
			content: ptr(`{"name": "pkg"}`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagMissingVersion) },
		},
		{
			name:    "Empty version",
			content: ptr(`{"name": "pkg", "version": ""}`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagMissingVersion) },
		},
		{
			name:    "Version is not a string",
			content: ptr(`{"name": "pkg", "version": 1}`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagMissingVersion) },
		},
		{
			name:    "Version is null",
			content: ptr(`{"version": null}`),
			wantErr: func(err error) bool { return goerr.HasTag(err, types.ErrTagMissingVersion) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				dir = writeManifest(t, *tt.content)
			}

			m, err := manifest.NewReader().Read(ctx, dir)
			gt.Error(t, err)
			gt.Value(t, m).Nil()
			gt.True(t, tt.wantErr(err))
		})
	}
}

func ptr(s string) *string {
	return &s
}

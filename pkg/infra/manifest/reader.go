// Package manifest reads the project manifest (package.json) from a workspace.
package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"

	"github.com/intrueder/npm-publish/pkg/domain/interfaces"
	"github.com/intrueder/npm-publish/pkg/domain/model"
	"github.com/intrueder/npm-publish/pkg/domain/types"
)

// FileName is the manifest file name relative to the workspace root
const FileName = "package.json"

type reader struct{}

// NewReader creates a ManifestReader for package.json
func NewReader() interfaces.ManifestReader {
	return &reader{}
}

// Read loads <workspaceDir>/package.json. The version field must be a non-empty string.
func (r *reader) Read(ctx context.Context, workspaceDir string) (*model.Manifest, error) {
	logger := ctxlog.From(ctx)
	path := filepath.Join(workspaceDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "manifest not found",
				goerr.T(types.ErrTagManifestNotFound),
				goerr.V("path", path),
			)
		}
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
	}

	if !gjson.ValidBytes(data) {
		return nil, goerr.New("manifest is not valid JSON",
			goerr.T(types.ErrTagManifestParse),
			goerr.V("path", path),
		)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, goerr.New("manifest must be a JSON object",
			goerr.T(types.ErrTagManifestParse),
			goerr.V("path", path),
		)
	}

	version := root.Get("version")
	if !version.Exists() || version.Type != gjson.String || version.String() == "" {
		return nil, goerr.New("missing version field",
			goerr.T(types.ErrTagMissingVersion),
			goerr.V("path", path),
			goerr.V("raw", version.Raw),
		)
	}

	m := &model.Manifest{
		Name:    root.Get("name").String(),
		Version: version.String(),
	}

	logger.Debug("Loaded manifest",
		"path", path,
		"name", m.Name,
		"version", m.Version,
	)

	return m, nil
}

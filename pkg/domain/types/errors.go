package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures by stage. Callers check them with goerr.HasTag.
var (
	ErrTagManifestNotFound = goerr.NewTag("manifest_not_found")
	ErrTagManifestParse    = goerr.NewTag("manifest_parse")
	ErrTagMissingVersion   = goerr.NewTag("missing_version")
	ErrTagConfig           = goerr.NewTag("config")
	ErrTagEvent            = goerr.NewTag("event")
	ErrTagRegistry         = goerr.NewTag("registry")
	ErrTagTag              = goerr.NewTag("tag")
)

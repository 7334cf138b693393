package model

import "strings"

// VersionPlaceholder is substituted with the manifest version in tag templates
const VersionPlaceholder = "%s"

// Default tag templates
const (
	DefaultTagName    = "v%s"
	DefaultTagMessage = "v%s"
)

// Registry defaults
const (
	DefaultRegistry = "registry.npmjs.org"
	DefaultAccess   = "public"
)

// TagAuthor is the identity recorded on the annotated tag
type TagAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReleaseConfig holds the values resolved once per run from the manifest and the inputs.
// It is not modified after construction.
type ReleaseConfig struct {
	Version              string    `json:"version"`
	CommitMessagePattern string    `json:"commit_message_pattern"`
	TagName              string    `json:"tag_name"`
	TagMessage           string    `json:"tag_message"`
	TagAuthor            TagAuthor `json:"tag_author"`
}

// ResolvedTagName returns the tag name template with every placeholder replaced by the version
func (c *ReleaseConfig) ResolvedTagName() string {
	return RenderTemplate(c.TagName, c.Version)
}

// ResolvedTagMessage returns the tag message template with every placeholder replaced by the version
func (c *ReleaseConfig) ResolvedTagMessage() string {
	return RenderTemplate(c.TagMessage, c.Version)
}

// RenderTemplate replaces all occurrences of VersionPlaceholder, not only the first one.
func RenderTemplate(tmpl, version string) string {
	return strings.ReplaceAll(tmpl, VersionPlaceholder, version)
}

// PublishSettings holds registry related inputs
type PublishSettings struct {
	Token    string `masq:"secret"`
	Registry string // Registry host without scheme, e.g. registry.npmjs.org
	Access   string // Value passed to `npm publish --access`
}

// ReleaseInput is everything a single run needs
type ReleaseInput struct {
	WorkspaceDir         string
	Event                *PushEvent
	CommitMessagePattern string
	TagName              string
	TagMessage           string
	GitUserName          string // Overrides the repository owner's name when set
	GitUserEmail         string // Overrides the repository owner's email when set
	TagCheckRemote       bool
	DryRun               bool
	Publish              PublishSettings
}

// PublishOptions is passed to the registry publisher
type PublishOptions struct {
	Version  string
	Token    string `masq:"secret"`
	Registry string
	Access   string
	DryRun   bool
}

// TagOptions controls how a tag is created
type TagOptions struct {
	CheckRemote bool
	DryRun      bool
}

// TagResult reports what CreateTag did
type TagResult struct {
	Name string
	// AlreadyExists is true when the tag was found and nothing was created
	AlreadyExists bool
}

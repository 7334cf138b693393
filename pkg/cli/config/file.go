package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/intrueder/npm-publish/pkg/domain/types"
)

// File holds the location of the optional settings file
type File struct {
	Path string
}

// Flags returns CLI flags for the settings file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML settings file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("NPM_PUBLISH_CONFIG"),
		},
	}
}

// Settings is the content of the settings file
type Settings struct {
	CommitMessagePattern string      `toml:"commit_message_pattern"`
	Tag                  TagSettings `toml:"tag"`
	NPM                  NPMSettings `toml:"npm"`
}

// TagSettings is the [tag] table of the settings file
type TagSettings struct {
	Name        string `toml:"name"`
	Message     string `toml:"message"`
	CheckRemote *bool  `toml:"check_remote"`
}

// NPMSettings is the [npm] table of the settings file. The token is never read from the file.
type NPMSettings struct {
	Registry string `toml:"registry"`
	Access   string `toml:"access"`
}

// FlagChecker reports whether a flag was given explicitly (command line or environment)
type FlagChecker interface {
	IsSet(name string) bool
}

// Load reads the settings file. It returns nil without error when no path is configured.
func (c *File) Load() (*Settings, error) {
	if c.Path == "" {
		return nil, nil
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open settings file",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagConfig),
		)
	}
	defer f.Close()

	var settings Settings
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse settings file",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagConfig),
		)
	}

	return &settings, nil
}

// Apply copies file values into the flag-backed configs. Flags that were set
// explicitly keep their values; file values replace defaults.
func (s *Settings) Apply(flags FlagChecker, action *Action, tag *Tag, npm *NPM) {
	if s == nil {
		return
	}

	setString := func(name string, dst *string, v string) {
		if v != "" && !flags.IsSet(name) {
			*dst = v
		}
	}

	setString("commit-message-pattern", &action.CommitMessagePattern, s.CommitMessagePattern)
	setString("tag-name", &tag.Name, s.Tag.Name)
	setString("tag-message", &tag.Message, s.Tag.Message)
	setString("npm-registry", &npm.Registry, s.NPM.Registry)
	setString("npm-access", &npm.Access, s.NPM.Access)

	if s.Tag.CheckRemote != nil && !flags.IsSet("tag-check-remote") {
		tag.CheckRemote = *s.Tag.CheckRemote
	}
}

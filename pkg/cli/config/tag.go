package config

import (
	"github.com/urfave/cli/v3"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// Tag holds git tag configuration
type Tag struct {
	Name        string
	Message     string
	CheckRemote bool
}

// Flags returns CLI flags for tag configuration
func (c *Tag) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tag-name",
			Usage:       "Tag name template, every %s is replaced by the version",
			Value:       model.DefaultTagName,
			Destination: &c.Name,
			Sources:     cli.EnvVars("INPUT_TAG_NAME"),
		},
		&cli.StringFlag{
			Name:        "tag-message",
			Usage:       "Tag message template, every %s is replaced by the version",
			Value:       model.DefaultTagMessage,
			Destination: &c.Message,
			Sources:     cli.EnvVars("INPUT_TAG_MESSAGE"),
		},
		&cli.BoolFlag{
			Name:        "tag-check-remote",
			Usage:       "Also look for the tag on origin before creating it (shallow checkouts carry no tags)",
			Value:       true,
			Destination: &c.CheckRemote,
			Sources:     cli.EnvVars("INPUT_TAG_CHECK_REMOTE"),
		},
	}
}

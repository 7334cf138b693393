package config

import (
	"github.com/urfave/cli/v3"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// NPM holds registry configuration
type NPM struct {
	Token    string `masq:"secret"`
	Registry string
	Access   string
}

// Flags returns CLI flags for registry configuration
func (c *NPM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "npm-token",
			Usage:       "npm registry auth token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_NPM_TOKEN", "NPM_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "npm-registry",
			Usage:       "npm registry host",
			Value:       model.DefaultRegistry,
			Destination: &c.Registry,
			Sources:     cli.EnvVars("INPUT_NPM_REGISTRY"),
		},
		&cli.StringFlag{
			Name:        "npm-access",
			Usage:       "Access level passed to npm publish (public, restricted)",
			Value:       model.DefaultAccess,
			Destination: &c.Access,
			Sources:     cli.EnvVars("INPUT_NPM_ACCESS"),
		},
	}
}

// Settings converts the configuration to publish settings
func (c *NPM) Settings() model.PublishSettings {
	return model.PublishSettings{
		Token:    c.Token,
		Registry: c.Registry,
		Access:   c.Access,
	}
}

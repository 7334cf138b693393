package config

import "github.com/urfave/cli/v3"

// Action holds the step inputs that describe the push and the release commit
type Action struct {
	CommitMessagePattern string
	GitUserName          string
	GitUserEmail         string
	Workspace            string
	EventPath            string
	DryRun               bool
}

// Flags returns CLI flags for action inputs
func (c *Action) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "commit-message-pattern",
			Usage:       "Regular expression for the release commit; its first group must equal the package version",
			Destination: &c.CommitMessagePattern,
			Sources:     cli.EnvVars("INPUT_COMMIT_MESSAGE_PATTERN", "NPM_PUBLISH_COMMIT_MESSAGE_PATTERN"),
		},
		&cli.StringFlag{
			Name:        "git-user-name",
			Usage:       "Tag author name (defaults to the repository owner)",
			Destination: &c.GitUserName,
			Sources:     cli.EnvVars("INPUT_GIT_USER_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-user-email",
			Usage:       "Tag author email (defaults to the repository owner)",
			Destination: &c.GitUserEmail,
			Sources:     cli.EnvVars("INPUT_GIT_USER_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Repository checkout directory",
			Destination: &c.Workspace,
			Sources:     cli.EnvVars("GITHUB_WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path of the push event payload",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Run npm publish with --dry-run and do not create the tag",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("INPUT_DRY_RUN"),
		},
	}
}

package model

// CommandResult is the captured result of a finished subprocess
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

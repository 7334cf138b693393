package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/intrueder/npm-publish/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Run(ctx, os.Args)
	stop()

	os.Exit(cli.ExitCode(err))
}

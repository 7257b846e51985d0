package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/idilsaglam/attendance/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// A second Ctrl-C gets the default behaviour and kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	// Hand the args to the CLI runner.
	code := cli.Run(ctx, os.Args, cli.Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	})
	stop()
	os.Exit(code)
}

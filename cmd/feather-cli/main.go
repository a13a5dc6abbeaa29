// Command feather-cli inspects Feather files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/feather/internal/cli"
)

// version is set with -ldflags "-X main.version=...".
var version string

func main() {
	if version != "" {
		cli.Version = version
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

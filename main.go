// Package main is the entry point for the phonectl CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alt-project/phonectl/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cmd.SetVersion(version)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

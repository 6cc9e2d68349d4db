// Package main is the entry point for the livepipe CLI.
//
// livepipe provisions a live video pipeline on AWS Elemental services: an
// RTMP input and encoding channel on MediaLive feeding a packaging channel and
// HLS origin endpoint on MediaPackage. Run with --cleanup to tear it down.
//
// For detailed usage information, run:
//
//	livepipe --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/livepipe/cmd/livepipe/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

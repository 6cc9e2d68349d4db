// Package handlers implements the business logic behind the CLI commands.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/livepipe/internal/config"
	"github.com/imamik/livepipe/internal/metrics"
	"github.com/imamik/livepipe/internal/orchestration"
	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
	"github.com/imamik/livepipe/internal/provisioning/ingest"
)

// Runner creates or tears down a pipeline - matches *orchestration.Pipeline.
type Runner interface {
	Create(ctx context.Context) (*orchestration.Result, error)
	Cleanup(ctx context.Context) error
}

// Factory function variables - can be replaced in tests.
var (
	// newMediaClient creates the AWS-backed media client.
	newMediaClient = func(ctx context.Context, cfg *config.Config, logger logr.Logger) (media.MediaManager, error) {
		return media.NewRealClient(ctx, cfg.AWS, media.WithSDKLogger(logger))
	}

	// newRunner creates the pipeline orchestrator.
	newRunner = func(cfg *config.Config, client media.MediaManager, opts ...orchestration.Option) Runner {
		return orchestration.New(cfg, client, opts...)
	}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Pipeline handles the root command.
//
// It creates the pipeline and prints the connection info, or, with cleanup
// set, tears it down. Cleanup problems are reported as warnings and do not
// fail the command.
func Pipeline(ctx context.Context, pipelineName, securityCIDR string, cleanup bool) error {
	cfg := config.New(pipelineName, securityCIDR, cleanup)
	progress := log.New(stdout, "", 0)
	logger := newLogger(progress, cfg.LogVerbosity)

	client, err := newMediaClient(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AWS clients: %w", err)
	}

	recorder := metrics.NewRecorder()
	defer writeMetrics(recorder, cfg.MetricsFile)

	runner := newRunner(cfg, client,
		orchestration.WithObserver(provisioning.NewConsoleObserverTo(stdout)),
		orchestration.WithLogger(logger),
		orchestration.WithMetrics(recorder),
	)

	if cfg.Cleanup {
		return runCleanup(ctx, runner, progress)
	}
	return runCreate(ctx, runner)
}

func runCreate(ctx context.Context, runner Runner) error {
	result, err := runner.Create(ctx)
	if err != nil {
		if errors.Is(err, ingest.ErrAccessRoleNotFound) {
			fmt.Fprintln(stderr, ingest.RoleRemediation)
		}
		return err
	}

	fmt.Fprint(stdout, renderResult(result, isTerminal()))
	return nil
}

func runCleanup(ctx context.Context, runner Runner, progress *log.Logger) error {
	progress.Println("Beginning cleanup...")

	err := runner.Cleanup(ctx)
	var cleanupErr *media.CleanupError
	switch {
	case errors.As(err, &cleanupErr):
		progress.Printf("Cleanup finished with %d warnings:", len(cleanupErr.Errors))
		for _, e := range cleanupErr.Errors {
			progress.Printf("  - %v", e)
		}
		return nil
	case err != nil:
		return fmt.Errorf("cleanup failed: %w", err)
	}

	progress.Println("Cleanup successful!")
	return nil
}

// newLogger returns a logr.Logger writing through out.
func newLogger(out *log.Logger, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			out.Printf("%s: %s", prefix, args)
			return
		}
		out.Println(args)
	}, funcr.Options{Verbosity: verbosity})
}

func writeMetrics(recorder *metrics.Recorder, path string) {
	if err := recorder.WriteTextfile(path); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
}

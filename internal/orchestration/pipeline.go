package orchestration

import (
	"context"

	"github.com/imamik/livepipe/internal/config"
	"github.com/imamik/livepipe/internal/metrics"
	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
	"github.com/imamik/livepipe/internal/provisioning/destroy"
	"github.com/imamik/livepipe/internal/provisioning/ingest"
	"github.com/imamik/livepipe/internal/provisioning/packaging"

	"github.com/go-logr/logr"
)

// Result is the operator-facing connection info of a created pipeline.
type Result struct {
	PlaybackURL        string
	IngestDestinations []media.InputDestination
}

// Pipeline orchestrates the packaging and ingest provisioners.
type Pipeline struct {
	config *config.Config
	media  media.MediaManager

	observer   provisioning.Observer
	logger     logr.Logger
	metrics    *metrics.Recorder
	ingestOpts []ingest.Option
	packaging  *packaging.Provisioner
	ingest     *ingest.Provisioner
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver sets the progress observer. Defaults to a console observer on stdout.
// Events are tagged with the pipeline name.
func WithObserver(o provisioning.Observer) Option {
	return func(p *Pipeline) {
		p.observer = o
	}
}

// WithLogger sets the logger handed to poll loops.
func WithLogger(l logr.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(p *Pipeline) {
		p.metrics = r
	}
}

// WithIngestOptions passes options to the ingest provisioner.
func WithIngestOptions(opts ...ingest.Option) Option {
	return func(p *Pipeline) {
		p.ingestOpts = append(p.ingestOpts, opts...)
	}
}

// New builds the packaging provisioner, then the ingest provisioner wired to
// its channel id.
func New(cfg *config.Config, client media.MediaManager, opts ...Option) *Pipeline {
	p := &Pipeline{
		config:   cfg,
		media:    client,
		observer: provisioning.NewConsoleObserver(),
		logger:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.packaging = packaging.NewProvisioner(cfg.PipelineName)
	p.ingest = ingest.NewProvisioner(cfg.PipelineName, p.packaging.ChannelID(), cfg.SecurityCIDR, p.ingestOpts...)
	return p
}

// Create provisions the pipeline and starts the channel.
// A failed phase stops the run; created resources stay in place.
func (p *Pipeline) Create(ctx context.Context) (*Result, error) {
	pCtx := p.newContext(ctx)

	phases := []provisioning.Phase{
		provisioning.NewValidationPhase(),
		p.packaging,
		p.ingest,
		provisioning.NewPhase("start", p.ingest.StartChannel),
	}
	if err := provisioning.RunPhases(pCtx, phases); err != nil {
		return nil, err
	}

	return &Result{
		PlaybackURL:        p.packaging.PlaybackURL(),
		IngestDestinations: p.ingest.Destinations(),
	}, nil
}

// Cleanup stops and deletes the pipeline's resources, ingest first.
// A non-nil error wraps a *media.CleanupError listing every resource left behind.
func (p *Pipeline) Cleanup(ctx context.Context) error {
	pCtx := p.newContext(ctx)
	return provisioning.RunPhases(pCtx, []provisioning.Phase{
		destroy.NewProvisioner(p.ingest, p.packaging),
	})
}

func (p *Pipeline) newContext(ctx context.Context) *provisioning.Context {
	pCtx := provisioning.NewContext(ctx, p.config, p.media)
	pCtx.Observer = p.observer.WithFields(map[string]string{"pipeline": p.config.PipelineName})
	pCtx.Logger = p.logger.WithValues("pipeline", p.config.PipelineName)
	pCtx.Metrics = p.metrics
	return pCtx
}

package provisioning

import (
	"context"
	"time"

	"github.com/imamik/livepipe/internal/config"
	"github.com/imamik/livepipe/internal/metrics"
	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/util/labels"
	"github.com/imamik/livepipe/internal/util/poll"

	"github.com/go-logr/logr"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Media    media.MediaManager
	Observer Observer
	Logger   logr.Logger
	Metrics  *metrics.Recorder
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	client media.MediaManager,
) *Context {
	timeouts := cfg.Timeouts
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Media:    client,
		Observer: NewConsoleObserver(),
		Logger:   logr.Discard(),
		Timeouts: timeouts,
	}
}

// Tags returns the tag set of the pipeline being provisioned.
func (c *Context) Tags() labels.TagSet {
	return c.Config.Tags()
}

// Poll runs a poll loop with the context's timing, logger and metrics.
// Extra options are applied last.
func (c *Context) Poll(m poll.Machine, opts ...poll.Option) error {
	base := []poll.Option{
		poll.WithLogger(c.Logger),
		poll.WithObserveHook(c.Metrics.ObservePoll),
	}
	if c.Timeouts != nil {
		base = append(base,
			poll.WithInterval(c.Timeouts.PollInterval),
			poll.WithTimeout(c.Timeouts.PollTimeout),
		)
	}

	start := time.Now()
	err := poll.Until(c, m, append(base, opts...)...)
	c.Metrics.ObservePollDuration(m.Name, time.Since(start))
	return err
}

package ingest

import (
	"context"
	"fmt"

	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
)

// Cleanup stops the channel, then deletes every tagged channel, input and
// input security group, in that order. Each step runs regardless of earlier
// failures; the returned *media.CleanupError holds every failure.
func (p *Provisioner) Cleanup(ctx *provisioning.Context) error {
	errs := &media.CleanupError{}
	logf := func(format string, args ...any) {
		ctx.Observer.Printf("[Cleanup] "+format, args...)
	}

	if err := p.StopChannel(ctx); err != nil {
		if isChannelMissing(err) {
			logf("No running channel to stop")
		} else {
			logf("Warning: Failed to stop channel: %v", err)
			errs.Add(fmt.Errorf("stop channel: %w", err))
		}
	}

	errs.Add((&media.SweepOperation{
		Kind: "channel",
		Tags: ctx.Tags(),
		List: ctx.Media.ListChannels,
		Delete: func(_ context.Context, r media.Resource) error {
			return p.deleteChannel(ctx, r.ID)
		},
		Logf:     logf,
		OnResult: ctx.Metrics.ObserveDeletion,
	}).Execute(ctx))

	errs.Add((&media.SweepOperation{
		Kind:     "input",
		Tags:     ctx.Tags(),
		List:     ctx.Media.ListInputs,
		Delete:   media.ByID(ctx.Media.DeleteInput),
		Logf:     logf,
		OnResult: ctx.Metrics.ObserveDeletion,
	}).Execute(ctx))

	errs.Add((&media.SweepOperation{
		Kind:     "input security group",
		Tags:     ctx.Tags(),
		List:     ctx.Media.ListInputSecurityGroups,
		Delete:   media.ByID(ctx.Media.DeleteInputSecurityGroup),
		Logf:     logf,
		OnResult: ctx.Metrics.ObserveDeletion,
	}).Execute(ctx))

	return errs.ErrorOrNil()
}

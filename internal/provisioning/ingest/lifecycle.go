package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
	"github.com/imamik/livepipe/internal/util/poll"
)

// MediaLive channel states.
const (
	StateCreating = "CREATING"
	StateIdle     = "IDLE"
	StateStarting = "STARTING"
	StateRunning  = "RUNNING"
	StateStopping = "STOPPING"
	StateUpdating = "UPDATING"
	StateDeleting = "DELETING"
	StateDeleted  = "DELETED"
)

// StartChannel starts the channel and returns once it reports STARTING.
func (p *Provisioner) StartChannel(ctx *provisioning.Context) error {
	id, err := p.ChannelID(ctx)
	if err != nil {
		return err
	}

	err = ctx.Poll(poll.Machine{
		Name:    "start-channel",
		Observe: observeState(ctx, id),
		Transitions: map[string]poll.Transition{
			StateIdle: poll.Act(func(c context.Context) error {
				ctx.Observer.Printf("[%s] Starting channel with ID: %s", phase, id)
				err := ctx.Metrics.ObserveAction("StartChannel", ctx.Media.StartChannel(c, id))
				if media.IsConflict(err) {
					ctx.Observer.Printf("[%s] Channel %s is busy, retrying start", phase, id)
				}
				return err
			}),
			StateCreating: poll.Await(),
			StateUpdating: poll.Await(),
			StateStarting: poll.Finish(),
		},
		OnUnknown: unknownState(ctx, id),
	}, p.pollOpts...)
	if err != nil {
		return fmt.Errorf("failed to start channel %s: %w", id, err)
	}

	ctx.Observer.Printf("[%s] Channel %s starting", phase, id)
	return nil
}

// StopChannel stops the channel and returns once it reports IDLE.
func (p *Provisioner) StopChannel(ctx *provisioning.Context) error {
	id, err := p.ChannelID(ctx)
	if err != nil {
		return err
	}

	err = ctx.Poll(poll.Machine{
		Name:    "stop-channel",
		Observe: observeState(ctx, id),
		Transitions: map[string]poll.Transition{
			StateRunning: poll.Act(func(c context.Context) error {
				ctx.Observer.Printf("[%s] Stopping channel %s", phase, id)
				err := ctx.Metrics.ObserveAction("StopChannel", ctx.Media.StopChannel(c, id))
				if media.IsConflict(err) {
					ctx.Observer.Printf("[%s] Channel %s is busy, retrying stop", phase, id)
				}
				return err
			}),
			StateStopping: poll.Await(),
			StateStarting: poll.Await(),
			StateIdle:     poll.Finish(),
		},
		OnUnknown: unknownState(ctx, id),
	}, p.pollOpts...)
	if err != nil {
		return fmt.Errorf("failed to stop channel %s: %w", id, err)
	}

	ctx.Observer.Printf("[%s] Channel %s has stopped", phase, id)
	return nil
}

// deleteChannel requests deletion and waits until the channel reports DELETED
// or is no longer found.
func (p *Provisioner) deleteChannel(ctx *provisioning.Context, id string) error {
	err := ctx.Metrics.ObserveAction("DeleteChannel", ctx.Media.DeleteChannel(ctx, id))
	if err != nil {
		return err
	}

	var last *media.ChannelStatus
	err = ctx.Poll(poll.Machine{
		Name: "delete-channel",
		Observe: func(c context.Context) (string, error) {
			status, err := ctx.Media.DescribeChannel(c, id)
			if err != nil {
				if media.IsNotFound(err) {
					return StateDeleted, nil
				}
				return "", err
			}
			last = status
			return status.State, nil
		},
		Transitions: map[string]poll.Transition{
			StateDeleting: poll.Await(),
			StateDeleted:  poll.Finish(),
		},
		OnUnknown: func(state string) {
			ctx.Observer.Printf("[Cleanup] Unknown condition STATE[%s]: %s", state, last)
		},
	}, p.pollOpts...)
	if err != nil {
		return err
	}

	if p.channelID == id {
		p.channelID = ""
	}
	provisioning.LogResourceDeleted(ctx.Observer, "Cleanup", "channel", id)
	return nil
}

func observeState(ctx *provisioning.Context, id string) func(context.Context) (string, error) {
	return func(c context.Context) (string, error) {
		status, err := ctx.Media.DescribeChannel(c, id)
		if err != nil {
			return "", err
		}
		return status.State, nil
	}
}

func unknownState(ctx *provisioning.Context, id string) func(string) {
	return func(state string) {
		ctx.Observer.Printf("[%s] Unknown condition STATE[%s] for channel %s", phase, state, id)
	}
}

// isChannelMissing reports whether err means there is no channel to act on.
func isChannelMissing(err error) bool {
	return errors.Is(err, ErrChannelNotFound) || media.IsNotFound(err)
}

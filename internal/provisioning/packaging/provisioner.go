package packaging

import (
	"fmt"

	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
	"github.com/imamik/livepipe/internal/util/naming"
)

const phase = "Packaging"

// HLS packaging parameters of the origin endpoint.
const (
	PlaylistType                   = "EVENT"
	PlaylistWindowSeconds          = 300
	ProgramDateTimeIntervalSeconds = 60
	SegmentDurationSeconds         = 4
)

// Provisioner creates and removes the packaging channel and origin endpoint.
type Provisioner struct {
	channelID   string
	endpointID  string
	playbackURL string
}

// NewProvisioner creates a packaging provisioner for a pipeline.
func NewProvisioner(pipelineName string) *Provisioner {
	return &Provisioner{
		channelID:  naming.PackageChannel(pipelineName),
		endpointID: naming.OriginEndpoint(pipelineName),
	}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "packaging"
}

// ChannelID returns the packaging channel id. It is known before Create runs.
func (p *Provisioner) ChannelID() string {
	return p.channelID
}

// PlaybackURL returns the HLS playback URL recorded by Create.
func (p *Provisioner) PlaybackURL() string {
	return p.playbackURL
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return p.Create(ctx)
}

// Create creates the packaging channel, then the origin endpoint attached to it.
func (p *Provisioner) Create(ctx *provisioning.Context) error {
	tags := ctx.Tags()

	provisioning.LogResourceCreating(ctx.Observer, phase, "package channel", p.channelID)
	err := ctx.Metrics.ObserveAction("CreatePackageChannel",
		ctx.Media.CreatePackageChannel(ctx, p.channelID, tags))
	if err != nil {
		return fmt.Errorf("failed to create package channel: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, phase, "package channel", p.channelID, p.channelID)
	ctx.State.PackageChannelID = p.channelID

	provisioning.LogResourceCreating(ctx.Observer, phase, "origin endpoint", p.endpointID)
	endpoint, err := ctx.Media.CreateOriginEndpoint(ctx, media.OriginEndpointCreateOpts{
		ID:        p.endpointID,
		ChannelID: p.channelID,
		HLS: media.HLSPackage{
			PlaylistType:                   PlaylistType,
			PlaylistWindowSeconds:          PlaylistWindowSeconds,
			ProgramDateTimeIntervalSeconds: ProgramDateTimeIntervalSeconds,
			SegmentDurationSeconds:         SegmentDurationSeconds,
		},
		Tags: tags,
	})
	ctx.Metrics.ObserveAction("CreateOriginEndpoint", err)
	if err != nil {
		return fmt.Errorf("failed to create origin endpoint: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, phase, "origin endpoint", p.endpointID, endpoint.ID)

	p.playbackURL = endpoint.URL
	ctx.State.OriginEndpointID = endpoint.ID
	ctx.State.PlaybackURL = endpoint.URL
	return nil
}

// Cleanup deletes every tagged origin endpoint, then every tagged packaging channel.
// All deletes are attempted; the returned *media.CleanupError holds every failure.
func (p *Provisioner) Cleanup(ctx *provisioning.Context) error {
	errs := &media.CleanupError{}
	logf := func(format string, args ...any) {
		ctx.Observer.Printf("[Cleanup] "+format, args...)
	}

	// Endpoints first: a channel with endpoints attached cannot be deleted.
	errs.Add((&media.SweepOperation{
		Kind:     "origin endpoint",
		Tags:     ctx.Tags(),
		List:     ctx.Media.ListOriginEndpoints,
		Delete:   media.ByID(ctx.Media.DeleteOriginEndpoint),
		Logf:     logf,
		OnResult: ctx.Metrics.ObserveDeletion,
	}).Execute(ctx))

	errs.Add((&media.SweepOperation{
		Kind:     "package channel",
		Tags:     ctx.Tags(),
		List:     ctx.Media.ListPackageChannels,
		Delete:   media.ByID(ctx.Media.DeletePackageChannel),
		Logf:     logf,
		OnResult: ctx.Metrics.ObserveDeletion,
	}).Execute(ctx))

	return errs.ErrorOrNil()
}

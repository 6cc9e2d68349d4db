package ingest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/imamik/livepipe/internal/config"
	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
	"github.com/imamik/livepipe/internal/util/labels"
	"github.com/imamik/livepipe/internal/util/naming"
	"github.com/imamik/livepipe/internal/util/poll"
)

const phase = "Ingest"

// Provisioner creates, runs and removes the MediaLive input and channel.
type Provisioner struct {
	packageChannelID string
	securityCIDR     string

	inputName     string
	channelName   string
	audioSelector string

	now      func() time.Time
	pollOpts []poll.Option

	role      *roleResult
	channelID string
	input     *media.Input
}

type roleResult struct {
	arn string
	err error
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithClock sets the time source used for the channel destination id.
func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) {
		p.now = now
	}
}

// WithPollOptions adds options to every poll loop the provisioner runs.
func WithPollOptions(opts ...poll.Option) Option {
	return func(p *Provisioner) {
		p.pollOpts = append(p.pollOpts, opts...)
	}
}

// NewProvisioner creates an ingest provisioner whose channel pushes to packageChannelID.
func NewProvisioner(pipelineName, packageChannelID, securityCIDR string, opts ...Option) *Provisioner {
	p := &Provisioner{
		packageChannelID: packageChannelID,
		securityCIDR:     securityCIDR,
		inputName:        naming.RTMPInput(pipelineName),
		channelName:      naming.LiveChannel(pipelineName),
		audioSelector:    naming.AudioSelector(pipelineName),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "ingest"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return p.Create(ctx)
}

// Destinations returns the ingest endpoints of the input created by Create.
func (p *Provisioner) Destinations() []media.InputDestination {
	if p.input == nil {
		return nil
	}
	return p.input.Destinations
}

// Create creates the input security group, the RTMP push input and the channel.
func (p *Provisioner) Create(ctx *provisioning.Context) error {
	if p.packageChannelID == "" {
		return ErrMissingPackageChannel
	}
	tags := ctx.Tags()

	provisioning.LogResourceCreating(ctx.Observer, phase, "input security group", p.securityCIDR)
	sgID, err := ctx.Media.CreateInputSecurityGroup(ctx, p.securityCIDR, tags)
	ctx.Metrics.ObserveAction("CreateInputSecurityGroup", err)
	if err != nil {
		return fmt.Errorf("failed to create input security group: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, phase, "input security group", p.securityCIDR, sgID)
	ctx.State.SecurityGroupID = sgID

	roleARN, err := p.RoleARN(ctx)
	if err != nil {
		return err
	}

	provisioning.LogResourceCreating(ctx.Observer, phase, "RTMP input", p.inputName)
	input, err := ctx.Media.CreateInput(ctx, media.InputCreateOpts{
		Name:            p.inputName,
		RoleARN:         roleARN,
		SecurityGroupID: sgID,
		StreamName:      naming.IngestStreamName,
		Tags:            tags,
	})
	ctx.Metrics.ObserveAction("CreateInput", err)
	if err != nil {
		return fmt.Errorf("failed to create RTMP input: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, phase, "RTMP input", p.inputName, input.ID)
	p.input = input
	ctx.State.InputID = input.ID
	ctx.State.InputDestinations = input.Destinations

	provisioning.LogResourceCreating(ctx.Observer, phase, "channel", p.channelName)
	channelID, err := ctx.Media.CreateChannel(ctx, media.ChannelCreateOpts{
		Name:                p.channelName,
		RoleARN:             roleARN,
		InputID:             input.ID,
		InputAttachmentName: naming.InputAttachment,
		AudioSelectorName:   p.audioSelector,
		PackageChannelID:    p.packageChannelID,
		DestinationID:       strconv.FormatInt(p.now().Unix(), 10),
		Tags:                tags,
	})
	ctx.Metrics.ObserveAction("CreateChannel", err)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, phase, "channel", p.channelName, channelID)
	p.channelID = channelID
	ctx.State.LiveChannelID = channelID
	return nil
}

// RoleARN resolves the MediaLive access role on first use.
// The outcome, success or failure, is remembered for the provisioner's lifetime.
// That includes transient IAM errors such as throttling: a later call returns
// the same error without asking IAM again.
// A missing role yields a fatal error matching ErrAccessRoleNotFound.
func (p *Provisioner) RoleARN(ctx *provisioning.Context) (string, error) {
	if p.role != nil {
		return p.role.arn, p.role.err
	}

	name := ctx.Config.AccessRoleName
	if name == "" {
		name = config.DefaultAccessRoleName
	}

	arn, err := ctx.Media.GetRoleARN(ctx, name)
	if err != nil {
		if media.IsNotFound(err) {
			err = poll.Fatal(fmt.Errorf("%w: %s", ErrAccessRoleNotFound, name))
		} else {
			err = fmt.Errorf("failed to resolve access role %s: %w", name, err)
		}
	}
	p.role = &roleResult{arn: arn, err: err}
	return arn, err
}

// ChannelID returns the live channel id. Without a channel from Create it lists
// all channels and takes the last one carrying the pipeline's tags.
func (p *Provisioner) ChannelID(ctx *provisioning.Context) (string, error) {
	if p.channelID != "" {
		return p.channelID, nil
	}

	channels, err := ctx.Media.ListChannels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to look up channel: %w", err)
	}

	matches := labels.Filter(ctx.Tags(), channels, func(r media.Resource) map[string]string { return r.Tags })
	if len(matches) == 0 {
		return "", fmt.Errorf("%w for pipeline %s", ErrChannelNotFound, ctx.Tags().Project())
	}
	p.channelID = matches[len(matches)-1].ID
	return p.channelID, nil
}

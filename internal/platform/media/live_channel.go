package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/medialive"
	mltypes "github.com/aws/aws-sdk-go-v2/service/medialive/types"
)

// Fixed channel parameters for an HD RTMP contribution feed.
const (
	channelClass        = "SINGLE_PIPELINE"
	channelLogLevel     = "DEBUG"
	inputCodec          = "AVC"
	inputMaxBitrate     = "MAX_20_MBPS"
	inputResolution     = "HD"
	inputFilterOff      = "DISABLED"
	inputFilter         = "AUTO"
	inputFilterStrength = 1
	sourceEndBehavior   = "CONTINUE"
)

// CreateChannel creates a MediaLive channel pushing to a MediaPackage channel and returns its id.
func (c *RealClient) CreateChannel(ctx context.Context, opts ChannelCreateOpts) (string, error) {
	params, err := buildCreateChannelInput(opts)
	if err != nil {
		return "", err
	}
	out, err := c.live.CreateChannel(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create channel %s: %w", opts.Name, err)
	}
	if out.Channel == nil {
		return "", fmt.Errorf("failed to create channel %s: empty response", opts.Name)
	}
	return aws.ToString(out.Channel.Id), nil
}

// buildCreateChannelInput assembles the CreateChannel request for opts.
func buildCreateChannelInput(opts ChannelCreateOpts) (*medialive.CreateChannelInput, error) {
	if opts.PackageChannelID == "" {
		return nil, fmt.Errorf("channel %s: package channel id is required", opts.Name)
	}

	ladder := opts.Ladder
	if ladder == nil {
		var err error
		if ladder, err = DefaultLadder(); err != nil {
			return nil, err
		}
	}

	return &medialive.CreateChannelInput{
		Name:         aws.String(opts.Name),
		RoleArn:      aws.String(opts.RoleARN),
		ChannelClass: mltypes.ChannelClass(channelClass),
		LogLevel:     mltypes.LogLevel(channelLogLevel),
		InputSpecification: &mltypes.InputSpecification{
			Codec:          mltypes.InputCodec(inputCodec),
			MaximumBitrate: mltypes.InputMaximumBitrate(inputMaxBitrate),
			Resolution:     mltypes.InputResolution(inputResolution),
		},
		Destinations: []mltypes.OutputDestination{{
			Id: aws.String(opts.DestinationID),
			MediaPackageSettings: []mltypes.MediaPackageOutputDestinationSettings{{
				ChannelId: aws.String(opts.PackageChannelID),
			}},
		}},
		InputAttachments: []mltypes.InputAttachment{{
			InputAttachmentName: aws.String(opts.InputAttachmentName),
			InputId:             aws.String(opts.InputID),
			InputSettings: &mltypes.InputSettings{
				AudioSelectors:    []mltypes.AudioSelector{},
				CaptionSelectors:  []mltypes.CaptionSelector{},
				DeblockFilter:     mltypes.InputDeblockFilter(inputFilterOff),
				DenoiseFilter:     mltypes.InputDenoiseFilter(inputFilterOff),
				FilterStrength:    aws.Int32(inputFilterStrength),
				InputFilter:       mltypes.InputFilter(inputFilter),
				SourceEndBehavior: mltypes.InputSourceEndBehavior(sourceEndBehavior),
			},
		}},
		EncoderSettings: ladder.EncoderSettings(opts.AudioSelectorName, opts.DestinationID),
		Tags:            opts.Tags,
	}, nil
}

// DescribeChannel returns the current status of a channel.
func (c *RealClient) DescribeChannel(ctx context.Context, id string) (*ChannelStatus, error) {
	out, err := c.live.DescribeChannel(ctx, &medialive.DescribeChannelInput{ChannelId: aws.String(id)})
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("channel %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to describe channel %s: %w", id, err)
	}
	return &ChannelStatus{
		ID:                    aws.ToString(out.Id),
		Name:                  aws.ToString(out.Name),
		State:                 string(out.State),
		PipelinesRunningCount: aws.ToInt32(out.PipelinesRunningCount),
		Tags:                  out.Tags,
	}, nil
}

// ListChannels returns all MediaLive channels across all pages.
func (c *RealClient) ListChannels(ctx context.Context) ([]Resource, error) {
	var out []Resource
	p := medialive.NewListChannelsPaginator(c.live, &medialive.ListChannelsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}
		for _, ch := range page.Channels {
			out = append(out, Resource{ID: aws.ToString(ch.Id), Name: aws.ToString(ch.Name), Tags: ch.Tags})
		}
	}
	return out, nil
}

// StartChannel requests a channel start.
func (c *RealClient) StartChannel(ctx context.Context, id string) error {
	if _, err := c.live.StartChannel(ctx, &medialive.StartChannelInput{ChannelId: aws.String(id)}); err != nil {
		return fmt.Errorf("failed to start channel %s: %w", id, err)
	}
	return nil
}

// StopChannel requests a channel stop.
func (c *RealClient) StopChannel(ctx context.Context, id string) error {
	if _, err := c.live.StopChannel(ctx, &medialive.StopChannelInput{ChannelId: aws.String(id)}); err != nil {
		return fmt.Errorf("failed to stop channel %s: %w", id, err)
	}
	return nil
}

// DeleteChannel requests a channel deletion. Deletion completes asynchronously.
func (c *RealClient) DeleteChannel(ctx context.Context, id string) error {
	if _, err := c.live.DeleteChannel(ctx, &medialive.DeleteChannelInput{ChannelId: aws.String(id)}); err != nil {
		return fmt.Errorf("failed to delete channel %s: %w", id, err)
	}
	return nil
}

package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/mediapackage"
	mptypes "github.com/aws/aws-sdk-go-v2/service/mediapackage/types"
)

// CreatePackageChannel creates a MediaPackage channel with a caller-chosen id.
func (c *RealClient) CreatePackageChannel(ctx context.Context, id string, tags map[string]string) error {
	_, err := c.packaging.CreateChannel(ctx, &mediapackage.CreateChannelInput{
		Id:   aws.String(id),
		Tags: tags,
	})
	if err != nil {
		return fmt.Errorf("failed to create package channel %s: %w", id, err)
	}
	return nil
}

// ListPackageChannels returns all MediaPackage channels across all pages.
func (c *RealClient) ListPackageChannels(ctx context.Context) ([]Resource, error) {
	var out []Resource
	p := mediapackage.NewListChannelsPaginator(c.packaging, &mediapackage.ListChannelsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list package channels: %w", err)
		}
		for _, ch := range page.Channels {
			id := aws.ToString(ch.Id)
			out = append(out, Resource{ID: id, Name: id, Tags: ch.Tags})
		}
	}
	return out, nil
}

// DeletePackageChannel deletes a MediaPackage channel.
func (c *RealClient) DeletePackageChannel(ctx context.Context, id string) error {
	_, err := c.packaging.DeleteChannel(ctx, &mediapackage.DeleteChannelInput{Id: aws.String(id)})
	if err != nil {
		return fmt.Errorf("failed to delete package channel %s: %w", id, err)
	}
	return nil
}

// CreateOriginEndpoint creates an HLS origin endpoint on a packaging channel.
func (c *RealClient) CreateOriginEndpoint(ctx context.Context, opts OriginEndpointCreateOpts) (*OriginEndpoint, error) {
	out, err := c.packaging.CreateOriginEndpoint(ctx, &mediapackage.CreateOriginEndpointInput{
		Id:        aws.String(opts.ID),
		ChannelId: aws.String(opts.ChannelID),
		HlsPackage: &mptypes.HlsPackage{
			PlaylistType:                   mptypes.PlaylistType(opts.HLS.PlaylistType),
			PlaylistWindowSeconds:          aws.Int32(opts.HLS.PlaylistWindowSeconds),
			ProgramDateTimeIntervalSeconds: aws.Int32(opts.HLS.ProgramDateTimeIntervalSeconds),
			SegmentDurationSeconds:         aws.Int32(opts.HLS.SegmentDurationSeconds),
		},
		Tags: opts.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create origin endpoint %s: %w", opts.ID, err)
	}
	return &OriginEndpoint{
		ID:  aws.ToString(out.Id),
		URL: aws.ToString(out.Url),
	}, nil
}

// ListOriginEndpoints returns all origin endpoints of all channels across all pages.
func (c *RealClient) ListOriginEndpoints(ctx context.Context) ([]Resource, error) {
	var out []Resource
	p := mediapackage.NewListOriginEndpointsPaginator(c.packaging, &mediapackage.ListOriginEndpointsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list origin endpoints: %w", err)
		}
		for _, ep := range page.OriginEndpoints {
			id := aws.ToString(ep.Id)
			out = append(out, Resource{ID: id, Name: id, Tags: ep.Tags})
		}
	}
	return out, nil
}

// DeleteOriginEndpoint deletes an origin endpoint.
func (c *RealClient) DeleteOriginEndpoint(ctx context.Context, id string) error {
	_, err := c.packaging.DeleteOriginEndpoint(ctx, &mediapackage.DeleteOriginEndpointInput{Id: aws.String(id)})
	if err != nil {
		return fmt.Errorf("failed to delete origin endpoint %s: %w", id, err)
	}
	return nil
}

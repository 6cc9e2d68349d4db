package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/medialive"
	mltypes "github.com/aws/aws-sdk-go-v2/service/medialive/types"
)

// inputTypeRTMPPush is the MediaLive input type for RTMP push ingest.
const inputTypeRTMPPush = "RTMP_PUSH"

// CreateInputSecurityGroup creates an input security group allowing cidr and returns its id.
func (c *RealClient) CreateInputSecurityGroup(ctx context.Context, cidr string, tags map[string]string) (string, error) {
	out, err := c.live.CreateInputSecurityGroup(ctx, &medialive.CreateInputSecurityGroupInput{
		WhitelistRules: []mltypes.InputWhitelistRuleCidr{{Cidr: aws.String(cidr)}},
		Tags:           tags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create input security group for %s: %w", cidr, err)
	}
	if out.SecurityGroup == nil {
		return "", fmt.Errorf("failed to create input security group for %s: empty response", cidr)
	}
	return aws.ToString(out.SecurityGroup.Id), nil
}

// ListInputSecurityGroups returns all input security groups across all pages.
func (c *RealClient) ListInputSecurityGroups(ctx context.Context) ([]Resource, error) {
	var out []Resource
	p := medialive.NewListInputSecurityGroupsPaginator(c.live, &medialive.ListInputSecurityGroupsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list input security groups: %w", err)
		}
		for _, sg := range page.InputSecurityGroups {
			id := aws.ToString(sg.Id)
			out = append(out, Resource{ID: id, Name: id, Tags: sg.Tags})
		}
	}
	return out, nil
}

// DeleteInputSecurityGroup deletes an input security group.
func (c *RealClient) DeleteInputSecurityGroup(ctx context.Context, id string) error {
	_, err := c.live.DeleteInputSecurityGroup(ctx, &medialive.DeleteInputSecurityGroupInput{
		InputSecurityGroupId: aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete input security group %s: %w", id, err)
	}
	return nil
}

// CreateInput creates an RTMP push input bound to one security group.
func (c *RealClient) CreateInput(ctx context.Context, opts InputCreateOpts) (*Input, error) {
	out, err := c.live.CreateInput(ctx, &medialive.CreateInputInput{
		Name:                aws.String(opts.Name),
		RoleArn:             aws.String(opts.RoleARN),
		Type:                mltypes.InputType(inputTypeRTMPPush),
		InputSecurityGroups: []string{opts.SecurityGroupID},
		Destinations:        []mltypes.InputDestinationRequest{{StreamName: aws.String(opts.StreamName)}},
		Tags:                opts.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create input %s: %w", opts.Name, err)
	}
	if out.Input == nil {
		return nil, fmt.Errorf("failed to create input %s: empty response", opts.Name)
	}

	input := &Input{ID: aws.ToString(out.Input.Id)}
	for _, d := range out.Input.Destinations {
		input.Destinations = append(input.Destinations, InputDestination{
			URL:  aws.ToString(d.Url),
			IP:   aws.ToString(d.Ip),
			Port: aws.ToString(d.Port),
		})
	}
	return input, nil
}

// ListInputs returns all inputs across all pages.
func (c *RealClient) ListInputs(ctx context.Context) ([]Resource, error) {
	var out []Resource
	p := medialive.NewListInputsPaginator(c.live, &medialive.ListInputsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list inputs: %w", err)
		}
		for _, in := range page.Inputs {
			out = append(out, Resource{ID: aws.ToString(in.Id), Name: aws.ToString(in.Name), Tags: in.Tags})
		}
	}
	return out, nil
}

// DeleteInput deletes an input.
func (c *RealClient) DeleteInput(ctx context.Context, id string) error {
	_, err := c.live.DeleteInput(ctx, &medialive.DeleteInputInput{InputId: aws.String(id)})
	if err != nil {
		return fmt.Errorf("failed to delete input %s: %w", id, err)
	}
	return nil
}

package media

import (
	"context"
)

// MockClient is a mock implementation of MediaManager for testing.
// Every method delegates to its Func field when set and returns a benign default otherwise.
type MockClient struct {
	CreatePackageChannelFunc     func(ctx context.Context, id string, tags map[string]string) error
	ListPackageChannelsFunc      func(ctx context.Context) ([]Resource, error)
	DeletePackageChannelFunc     func(ctx context.Context, id string) error
	CreateOriginEndpointFunc     func(ctx context.Context, opts OriginEndpointCreateOpts) (*OriginEndpoint, error)
	ListOriginEndpointsFunc      func(ctx context.Context) ([]Resource, error)
	DeleteOriginEndpointFunc     func(ctx context.Context, id string) error
	CreateInputSecurityGroupFunc func(ctx context.Context, cidr string, tags map[string]string) (string, error)
	ListInputSecurityGroupsFunc  func(ctx context.Context) ([]Resource, error)
	DeleteInputSecurityGroupFunc func(ctx context.Context, id string) error
	CreateInputFunc              func(ctx context.Context, opts InputCreateOpts) (*Input, error)
	ListInputsFunc               func(ctx context.Context) ([]Resource, error)
	DeleteInputFunc              func(ctx context.Context, id string) error
	CreateChannelFunc            func(ctx context.Context, opts ChannelCreateOpts) (string, error)
	DescribeChannelFunc          func(ctx context.Context, id string) (*ChannelStatus, error)
	ListChannelsFunc             func(ctx context.Context) ([]Resource, error)
	StartChannelFunc             func(ctx context.Context, id string) error
	StopChannelFunc              func(ctx context.Context, id string) error
	DeleteChannelFunc            func(ctx context.Context, id string) error
	GetRoleARNFunc               func(ctx context.Context, name string) (string, error)
}

var _ MediaManager = (*MockClient)(nil)

// CreatePackageChannel mocks creating a packaging channel.
func (m *MockClient) CreatePackageChannel(ctx context.Context, id string, tags map[string]string) error {
	if m.CreatePackageChannelFunc != nil {
		return m.CreatePackageChannelFunc(ctx, id, tags)
	}
	return nil
}

// ListPackageChannels mocks listing packaging channels.
func (m *MockClient) ListPackageChannels(ctx context.Context) ([]Resource, error) {
	if m.ListPackageChannelsFunc != nil {
		return m.ListPackageChannelsFunc(ctx)
	}
	return nil, nil
}

// DeletePackageChannel mocks deleting a packaging channel.
func (m *MockClient) DeletePackageChannel(ctx context.Context, id string) error {
	if m.DeletePackageChannelFunc != nil {
		return m.DeletePackageChannelFunc(ctx, id)
	}
	return nil
}

// CreateOriginEndpoint mocks creating an origin endpoint.
func (m *MockClient) CreateOriginEndpoint(ctx context.Context, opts OriginEndpointCreateOpts) (*OriginEndpoint, error) {
	if m.CreateOriginEndpointFunc != nil {
		return m.CreateOriginEndpointFunc(ctx, opts)
	}
	return &OriginEndpoint{ID: opts.ID, URL: "https://mock.mediapackage/" + opts.ID + "/index.m3u8"}, nil
}

// ListOriginEndpoints mocks listing origin endpoints.
func (m *MockClient) ListOriginEndpoints(ctx context.Context) ([]Resource, error) {
	if m.ListOriginEndpointsFunc != nil {
		return m.ListOriginEndpointsFunc(ctx)
	}
	return nil, nil
}

// DeleteOriginEndpoint mocks deleting an origin endpoint.
func (m *MockClient) DeleteOriginEndpoint(ctx context.Context, id string) error {
	if m.DeleteOriginEndpointFunc != nil {
		return m.DeleteOriginEndpointFunc(ctx, id)
	}
	return nil
}

// CreateInputSecurityGroup mocks creating an input security group.
func (m *MockClient) CreateInputSecurityGroup(ctx context.Context, cidr string, tags map[string]string) (string, error) {
	if m.CreateInputSecurityGroupFunc != nil {
		return m.CreateInputSecurityGroupFunc(ctx, cidr, tags)
	}
	return "mock-sg-id", nil
}

// ListInputSecurityGroups mocks listing input security groups.
func (m *MockClient) ListInputSecurityGroups(ctx context.Context) ([]Resource, error) {
	if m.ListInputSecurityGroupsFunc != nil {
		return m.ListInputSecurityGroupsFunc(ctx)
	}
	return nil, nil
}

// DeleteInputSecurityGroup mocks deleting an input security group.
func (m *MockClient) DeleteInputSecurityGroup(ctx context.Context, id string) error {
	if m.DeleteInputSecurityGroupFunc != nil {
		return m.DeleteInputSecurityGroupFunc(ctx, id)
	}
	return nil
}

// CreateInput mocks creating an input.
func (m *MockClient) CreateInput(ctx context.Context, opts InputCreateOpts) (*Input, error) {
	if m.CreateInputFunc != nil {
		return m.CreateInputFunc(ctx, opts)
	}
	return &Input{ID: "mock-input-id", Destinations: []InputDestination{{URL: "rtmp://127.0.0.1:1935/" + opts.StreamName, IP: "127.0.0.1", Port: "1935"}}}, nil
}

// ListInputs mocks listing inputs.
func (m *MockClient) ListInputs(ctx context.Context) ([]Resource, error) {
	if m.ListInputsFunc != nil {
		return m.ListInputsFunc(ctx)
	}
	return nil, nil
}

// DeleteInput mocks deleting an input.
func (m *MockClient) DeleteInput(ctx context.Context, id string) error {
	if m.DeleteInputFunc != nil {
		return m.DeleteInputFunc(ctx, id)
	}
	return nil
}

// CreateChannel mocks creating a live channel.
func (m *MockClient) CreateChannel(ctx context.Context, opts ChannelCreateOpts) (string, error) {
	if m.CreateChannelFunc != nil {
		return m.CreateChannelFunc(ctx, opts)
	}
	return "mock-channel-id", nil
}

// DescribeChannel mocks describing a live channel.
func (m *MockClient) DescribeChannel(ctx context.Context, id string) (*ChannelStatus, error) {
	if m.DescribeChannelFunc != nil {
		return m.DescribeChannelFunc(ctx, id)
	}
	return &ChannelStatus{ID: id, State: "IDLE"}, nil
}

// ListChannels mocks listing live channels.
func (m *MockClient) ListChannels(ctx context.Context) ([]Resource, error) {
	if m.ListChannelsFunc != nil {
		return m.ListChannelsFunc(ctx)
	}
	return nil, nil
}

// StartChannel mocks starting a live channel.
func (m *MockClient) StartChannel(ctx context.Context, id string) error {
	if m.StartChannelFunc != nil {
		return m.StartChannelFunc(ctx, id)
	}
	return nil
}

// StopChannel mocks stopping a live channel.
func (m *MockClient) StopChannel(ctx context.Context, id string) error {
	if m.StopChannelFunc != nil {
		return m.StopChannelFunc(ctx, id)
	}
	return nil
}

// DeleteChannel mocks deleting a live channel.
func (m *MockClient) DeleteChannel(ctx context.Context, id string) error {
	if m.DeleteChannelFunc != nil {
		return m.DeleteChannelFunc(ctx, id)
	}
	return nil
}

// GetRoleARN mocks resolving a role ARN.
func (m *MockClient) GetRoleARN(ctx context.Context, name string) (string, error) {
	if m.GetRoleARNFunc != nil {
		return m.GetRoleARNFunc(ctx, name)
	}
	return "arn:aws:iam::123456789012:role/" + name, nil
}

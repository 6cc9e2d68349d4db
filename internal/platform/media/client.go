package media

import (
	"context"
	"fmt"
)

// Resource is the common view of a listed MediaLive or MediaPackage resource.
type Resource struct {
	ID   string
	Name string
	Tags map[string]string
}

// InputDestination is one ingest endpoint of an input.
type InputDestination struct {
	URL  string
	IP   string
	Port string
}

// Param is one ordered key/value pair of ingest connection parameters.
type Param struct {
	Key   string
	Value string
}

// Params returns the destination as ordered key/value pairs.
func (d InputDestination) Params() []Param {
	return []Param{
		{Key: "Url", Value: d.URL},
		{Key: "Ip", Value: d.IP},
		{Key: "Port", Value: d.Port},
	}
}

// Input is a created MediaLive input.
type Input struct {
	ID           string
	Destinations []InputDestination
}

// ChannelStatus is the observed state of a MediaLive channel.
type ChannelStatus struct {
	ID                    string
	Name                  string
	State                 string
	PipelinesRunningCount int32
	Tags                  map[string]string
}

func (s *ChannelStatus) String() string {
	return fmt.Sprintf("channel %s (name=%q state=%s pipelinesRunning=%d tags=%v)",
		s.ID, s.Name, s.State, s.PipelinesRunningCount, s.Tags)
}

// OriginEndpoint is a created MediaPackage origin endpoint.
type OriginEndpoint struct {
	ID  string
	URL string
}

// HLSPackage holds the HLS packaging parameters of an origin endpoint.
type HLSPackage struct {
	PlaylistType                   string
	PlaylistWindowSeconds          int32
	ProgramDateTimeIntervalSeconds int32
	SegmentDurationSeconds         int32
}

// OriginEndpointCreateOpts holds all parameters for creating an origin endpoint.
type OriginEndpointCreateOpts struct {
	ID        string
	ChannelID string
	HLS       HLSPackage
	Tags      map[string]string
}

// InputCreateOpts holds all parameters for creating an RTMP push input.
type InputCreateOpts struct {
	Name            string
	RoleARN         string
	SecurityGroupID string
	StreamName      string
	Tags            map[string]string
}

// ChannelCreateOpts holds all parameters for creating a MediaLive channel.
type ChannelCreateOpts struct {
	Name                string
	RoleARN             string
	InputID             string
	InputAttachmentName string
	AudioSelectorName   string
	// PackageChannelID is the MediaPackage channel the output group pushes to.
	PackageChannelID string
	// DestinationID links the output group to the channel destination.
	DestinationID string
	Tags          map[string]string
	// Ladder defaults to DefaultLadder when nil.
	Ladder *Ladder
}

// PackagingManager defines the interface for MediaPackage channels and endpoints.
type PackagingManager interface {
	CreatePackageChannel(ctx context.Context, id string, tags map[string]string) error
	ListPackageChannels(ctx context.Context) ([]Resource, error)
	DeletePackageChannel(ctx context.Context, id string) error

	CreateOriginEndpoint(ctx context.Context, opts OriginEndpointCreateOpts) (*OriginEndpoint, error)
	ListOriginEndpoints(ctx context.Context) ([]Resource, error)
	DeleteOriginEndpoint(ctx context.Context, id string) error
}

// InputManager defines the interface for MediaLive inputs and input security groups.
type InputManager interface {
	CreateInputSecurityGroup(ctx context.Context, cidr string, tags map[string]string) (string, error)
	ListInputSecurityGroups(ctx context.Context) ([]Resource, error)
	DeleteInputSecurityGroup(ctx context.Context, id string) error

	CreateInput(ctx context.Context, opts InputCreateOpts) (*Input, error)
	ListInputs(ctx context.Context) ([]Resource, error)
	DeleteInput(ctx context.Context, id string) error
}

// ChannelManager defines the interface for MediaLive channels.
type ChannelManager interface {
	CreateChannel(ctx context.Context, opts ChannelCreateOpts) (string, error)
	// DescribeChannel returns an error matching IsNotFound when the channel is gone.
	DescribeChannel(ctx context.Context, id string) (*ChannelStatus, error)
	ListChannels(ctx context.Context) ([]Resource, error)
	StartChannel(ctx context.Context, id string) error
	StopChannel(ctx context.Context, id string) error
	DeleteChannel(ctx context.Context, id string) error
}

// RoleResolver resolves IAM roles.
type RoleResolver interface {
	// GetRoleARN returns an error matching IsNotFound when the role does not exist.
	GetRoleARN(ctx context.Context, name string) (string, error)
}

// MediaManager combines all media control-plane operations.
type MediaManager interface {
	PackagingManager
	InputManager
	ChannelManager
	RoleResolver
}

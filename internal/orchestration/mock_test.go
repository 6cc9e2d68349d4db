package orchestration

import (
	"context"
	"fmt"
	"sync"

	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
)

// recorder builds a MockClient that logs every call and simulates channel state.
type recorder struct {
	mu     sync.Mutex
	calls  []string
	state  string
	tags   map[string]string
	failOn map[string]error
}

func newRecorder(pipeline string) *recorder {
	return &recorder{
		state:  "IDLE",
		tags:   map[string]string{"project": pipeline},
		failOn: map[string]error{},
	}
}

func (r *recorder) record(call string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	return r.failOn[call]
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) client() *media.MockClient {
	return &media.MockClient{
		CreatePackageChannelFunc: func(_ context.Context, id string, _ map[string]string) error {
			return r.record("CreatePackageChannel:" + id)
		},
		CreateOriginEndpointFunc: func(_ context.Context, opts media.OriginEndpointCreateOpts) (*media.OriginEndpoint, error) {
			if err := r.record("CreateOriginEndpoint:" + opts.ChannelID); err != nil {
				return nil, err
			}
			return &media.OriginEndpoint{ID: opts.ID, URL: "https://origin.example.com/out/v1/" + opts.ID + "/index.m3u8"}, nil
		},
		CreateInputSecurityGroupFunc: func(context.Context, string, map[string]string) (string, error) {
			return "sg-1", r.record("CreateInputSecurityGroup")
		},
		GetRoleARNFunc: func(_ context.Context, name string) (string, error) {
			return "arn:aws:iam::123456789012:role/" + name, r.record("GetRoleARN")
		},
		CreateInputFunc: func(_ context.Context, opts media.InputCreateOpts) (*media.Input, error) {
			if err := r.record("CreateInput"); err != nil {
				return nil, err
			}
			return &media.Input{ID: "input-1", Destinations: []media.InputDestination{
				{URL: "rtmp://198.51.100.7:1935/" + opts.StreamName, IP: "198.51.100.7", Port: "1935"},
			}}, nil
		},
		CreateChannelFunc: func(_ context.Context, opts media.ChannelCreateOpts) (string, error) {
			return "1234567", r.record("CreateChannel:" + opts.PackageChannelID)
		},
		DescribeChannelFunc: func(_ context.Context, id string) (*media.ChannelStatus, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.state == "DELETED" {
				return nil, fmt.Errorf("channel %s: %w", id, media.ErrNotFound)
			}
			return &media.ChannelStatus{ID: id, State: r.state, Tags: r.tags}, nil
		},
		StartChannelFunc: func(context.Context, string) error {
			err := r.record("StartChannel")
			r.setState("STARTING")
			return err
		},
		StopChannelFunc: func(context.Context, string) error {
			err := r.record("StopChannel")
			r.setState("IDLE")
			return err
		},
		ListChannelsFunc: func(context.Context) ([]media.Resource, error) {
			if err := r.record("ListChannels"); err != nil {
				return nil, err
			}
			return []media.Resource{{ID: "1234567", Tags: r.tags}}, nil
		},
		DeleteChannelFunc: func(context.Context, string) error {
			err := r.record("DeleteChannel")
			r.setState("DELETED")
			return err
		},
		ListInputsFunc: func(context.Context) ([]media.Resource, error) {
			return []media.Resource{{ID: "input-1", Tags: r.tags}}, r.record("ListInputs")
		},
		DeleteInputFunc: func(context.Context, string) error {
			return r.record("DeleteInput")
		},
		ListInputSecurityGroupsFunc: func(context.Context) ([]media.Resource, error) {
			return []media.Resource{{ID: "sg-1", Tags: r.tags}}, r.record("ListInputSecurityGroups")
		},
		DeleteInputSecurityGroupFunc: func(context.Context, string) error {
			return r.record("DeleteInputSecurityGroup")
		},
		ListOriginEndpointsFunc: func(context.Context) ([]media.Resource, error) {
			return []media.Resource{{ID: "demo_package_origin_endpoint", Tags: r.tags}}, r.record("ListOriginEndpoints")
		},
		DeleteOriginEndpointFunc: func(_ context.Context, id string) error {
			return r.record("DeleteOriginEndpoint:" + id)
		},
		ListPackageChannelsFunc: func(context.Context) ([]media.Resource, error) {
			return []media.Resource{{ID: "demo_package_channel", Tags: r.tags}}, r.record("ListPackageChannels")
		},
		DeletePackageChannelFunc: func(_ context.Context, id string) error {
			return r.record("DeletePackageChannel:" + id)
		},
	}
}

func (r *recorder) setState(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = s
}

type quietObserver struct{}

func (quietObserver) Printf(string, ...interface{}) {}
func (quietObserver) Event(provisioning.Event) {}
func (o quietObserver) WithFields(map[string]string) provisioning.Observer { return o }

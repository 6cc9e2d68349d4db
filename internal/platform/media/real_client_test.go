package media

import (
	"context"
	"errors"
	"testing"

	"github.com/imamik/livepipe/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/medialive"
	mltypes "github.com/aws/aws-sdk-go-v2/service/medialive/types"
	"github.com/aws/aws-sdk-go-v2/service/mediapackage"
	mptypes "github.com/aws/aws-sdk-go-v2/service/mediapackage/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLive overrides the MediaLive calls a test needs; others panic.
type fakeLive struct {
	liveAPI

	channelPages    [][]mltypes.ChannelSummary
	listChannelsReq []*medialive.ListChannelsInput
	createInput     *medialive.CreateInputInput
	createInputOut  *mltypes.Input
	describeErr     error
}

func (f *fakeLive) ListChannels(_ context.Context, in *medialive.ListChannelsInput, _ ...func(*medialive.Options)) (*medialive.ListChannelsOutput, error) {
	f.listChannelsReq = append(f.listChannelsReq, in)
	page := len(f.listChannelsReq) - 1
	out := &medialive.ListChannelsOutput{Channels: f.channelPages[page]}
	if page < len(f.channelPages)-1 {
		out.NextToken = aws.String("token-" + string(rune('a'+page)))
	}
	return out, nil
}

func (f *fakeLive) CreateInput(_ context.Context, in *medialive.CreateInputInput, _ ...func(*medialive.Options)) (*medialive.CreateInputOutput, error) {
	f.createInput = in
	return &medialive.CreateInputOutput{Input: f.createInputOut}, nil
}

func (f *fakeLive) DescribeChannel(_ context.Context, in *medialive.DescribeChannelInput, _ ...func(*medialive.Options)) (*medialive.DescribeChannelOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &medialive.DescribeChannelOutput{
		Id:                    in.ChannelId,
		Name:                  aws.String("demo_channel"),
		State:                 mltypes.ChannelState("RUNNING"),
		PipelinesRunningCount: aws.Int32(1),
	}, nil
}

// fakePackaging overrides the MediaPackage calls a test needs; others panic.
type fakePackaging struct {
	packagingAPI

	endpointPages  [][]mptypes.OriginEndpoint
	endpointCalls  int
	createEndpoint *mediapackage.CreateOriginEndpointInput
}

func (f *fakePackaging) ListOriginEndpoints(_ context.Context, _ *mediapackage.ListOriginEndpointsInput, _ ...func(*mediapackage.Options)) (*mediapackage.ListOriginEndpointsOutput, error) {
	page := f.endpointCalls
	f.endpointCalls++
	out := &mediapackage.ListOriginEndpointsOutput{OriginEndpoints: f.endpointPages[page]}
	if page < len(f.endpointPages)-1 {
		out.NextToken = aws.String("page-" + string(rune('a'+page)))
	}
	return out, nil
}

func (f *fakePackaging) CreateOriginEndpoint(_ context.Context, in *mediapackage.CreateOriginEndpointInput, _ ...func(*mediapackage.Options)) (*mediapackage.CreateOriginEndpointOutput, error) {
	f.createEndpoint = in
	return &mediapackage.CreateOriginEndpointOutput{
		Id:  in.Id,
		Url: aws.String("https://example.mediapackage/out/v1/abc/index.m3u8"),
	}, nil
}

type fakeIAM struct {
	err error
}

func (f *fakeIAM) GetRole(_ context.Context, in *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &iam.GetRoleOutput{Role: &iamtypes.Role{Arn: aws.String("arn:aws:iam::123456789012:role/" + aws.ToString(in.RoleName))}}, nil
}

func newTestClient(t *testing.T, live liveAPI, pkg packagingAPI, iamClient iamAPI) *RealClient {
	t.Helper()
	c, err := NewRealClient(context.Background(), config.AWSConfig{},
		WithMediaLiveAPI(live),
		WithMediaPackageAPI(pkg),
		WithIAMAPI(iamClient),
	)
	require.NoError(t, err)
	return c
}

func TestRealClient_ListChannels_FollowsPagination(t *testing.T) {
	live := &fakeLive{channelPages: [][]mltypes.ChannelSummary{
		{{Id: aws.String("1"), Name: aws.String("a"), Tags: map[string]string{"project": "demo"}}},
		{{Id: aws.String("2"), Name: aws.String("b")}},
		{{Id: aws.String("3"), Name: aws.String("c"), Tags: map[string]string{"project": "demo"}}},
	}}
	c := newTestClient(t, live, &fakePackaging{}, &fakeIAM{})

	channels, err := c.ListChannels(context.Background())
	require.NoError(t, err)

	require.Len(t, channels, 3)
	assert.Equal(t, "3", channels[2].ID)
	assert.Equal(t, "c", channels[2].Name)
	assert.Equal(t, "demo", channels[0].Tags["project"])
	require.Len(t, live.listChannelsReq, 3)
	assert.Nil(t, live.listChannelsReq[0].NextToken)
	assert.Equal(t, "token-a", aws.ToString(live.listChannelsReq[1].NextToken))
}

func TestRealClient_ListOriginEndpoints_FollowsPagination(t *testing.T) {
	pkg := &fakePackaging{endpointPages: [][]mptypes.OriginEndpoint{
		{{Id: aws.String("ep-1")}},
		{{Id: aws.String("ep-2"), Tags: map[string]string{"project": "demo"}}},
	}}
	c := newTestClient(t, &fakeLive{}, pkg, &fakeIAM{})

	endpoints, err := c.ListOriginEndpoints(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Resource{
		{ID: "ep-1", Name: "ep-1"},
		{ID: "ep-2", Name: "ep-2", Tags: map[string]string{"project": "demo"}},
	}, endpoints)
	assert.Equal(t, 2, pkg.endpointCalls)
}

func TestRealClient_CreateOriginEndpoint(t *testing.T) {
	pkg := &fakePackaging{}
	c := newTestClient(t, &fakeLive{}, pkg, &fakeIAM{})

	ep, err := c.CreateOriginEndpoint(context.Background(), OriginEndpointCreateOpts{
		ID:        "demo_package_origin_endpoint",
		ChannelID: "demo_package_channel",
		HLS: HLSPackage{
			PlaylistType:                   "EVENT",
			PlaylistWindowSeconds:          300,
			ProgramDateTimeIntervalSeconds: 60,
			SegmentDurationSeconds:         4,
		},
		Tags: map[string]string{"project": "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.mediapackage/out/v1/abc/index.m3u8", ep.URL)
	req := pkg.createEndpoint
	assert.Equal(t, "demo_package_channel", aws.ToString(req.ChannelId))
	assert.Equal(t, "EVENT", string(req.HlsPackage.PlaylistType))
	assert.Equal(t, int32(300), aws.ToInt32(req.HlsPackage.PlaylistWindowSeconds))
	assert.Equal(t, int32(60), aws.ToInt32(req.HlsPackage.ProgramDateTimeIntervalSeconds))
	assert.Equal(t, int32(4), aws.ToInt32(req.HlsPackage.SegmentDurationSeconds))
}

func TestRealClient_CreateInput(t *testing.T) {
	live := &fakeLive{createInputOut: &mltypes.Input{
		Id: aws.String("input-1"),
		Destinations: []mltypes.InputDestination{{
			Url:  aws.String("rtmp://203.0.113.10:1935/live"),
			Ip:   aws.String("203.0.113.10"),
			Port: aws.String("1935"),
		}},
	}}
	c := newTestClient(t, live, &fakePackaging{}, &fakeIAM{})

	input, err := c.CreateInput(context.Background(), InputCreateOpts{
		Name:            "demo_rtmp_push_input",
		RoleARN:         "arn:role",
		SecurityGroupID: "sg-1",
		StreamName:      "live",
	})
	require.NoError(t, err)

	assert.Equal(t, "input-1", input.ID)
	require.Len(t, input.Destinations, 1)
	assert.Equal(t, []Param{
		{Key: "Url", Value: "rtmp://203.0.113.10:1935/live"},
		{Key: "Ip", Value: "203.0.113.10"},
		{Key: "Port", Value: "1935"},
	}, input.Destinations[0].Params())

	assert.Equal(t, "RTMP_PUSH", string(live.createInput.Type))
	assert.Equal(t, []string{"sg-1"}, live.createInput.InputSecurityGroups)
	require.Len(t, live.createInput.Destinations, 1)
	assert.Equal(t, "live", aws.ToString(live.createInput.Destinations[0].StreamName))
}

func TestRealClient_DescribeChannel(t *testing.T) {
	c := newTestClient(t, &fakeLive{}, &fakePackaging{}, &fakeIAM{})

	status, err := c.DescribeChannel(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", status.State)
	assert.Equal(t, int32(1), status.PipelinesRunningCount)
	assert.Contains(t, status.String(), "state=RUNNING")
}

func TestRealClient_DescribeChannel_NotFound(t *testing.T) {
	live := &fakeLive{describeErr: &mltypes.NotFoundException{}}
	c := newTestClient(t, live, &fakePackaging{}, &fakeIAM{})

	_, err := c.DescribeChannel(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRealClient_GetRoleARN(t *testing.T) {
	c := newTestClient(t, &fakeLive{}, &fakePackaging{}, &fakeIAM{})

	arn, err := c.GetRoleARN(context.Background(), "MediaLiveAccessRole")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:role/MediaLiveAccessRole", arn)
}

func TestRealClient_GetRoleARN_NoSuchEntity(t *testing.T) {
	c := newTestClient(t, &fakeLive{}, &fakePackaging{}, &fakeIAM{err: &iamtypes.NoSuchEntityException{}})

	_, err := c.GetRoleARN(context.Background(), "MediaLiveAccessRole")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
}

func TestRealClient_GetRoleARN_OtherError(t *testing.T) {
	c := newTestClient(t, &fakeLive{}, &fakePackaging{}, &fakeIAM{err: errors.New("throttled")})

	_, err := c.GetRoleARN(context.Background(), "MediaLiveAccessRole")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

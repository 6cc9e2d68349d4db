package media

import (
	"context"
	"fmt"

	"github.com/imamik/livepipe/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/medialive"
	"github.com/aws/aws-sdk-go-v2/service/mediapackage"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"
)

// liveAPI is the subset of the MediaLive client used by RealClient.
type liveAPI interface {
	medialive.ListChannelsAPIClient
	medialive.ListInputsAPIClient
	medialive.ListInputSecurityGroupsAPIClient

	CreateInputSecurityGroup(ctx context.Context, params *medialive.CreateInputSecurityGroupInput, optFns ...func(*medialive.Options)) (*medialive.CreateInputSecurityGroupOutput, error)
	DeleteInputSecurityGroup(ctx context.Context, params *medialive.DeleteInputSecurityGroupInput, optFns ...func(*medialive.Options)) (*medialive.DeleteInputSecurityGroupOutput, error)
	CreateInput(ctx context.Context, params *medialive.CreateInputInput, optFns ...func(*medialive.Options)) (*medialive.CreateInputOutput, error)
	DeleteInput(ctx context.Context, params *medialive.DeleteInputInput, optFns ...func(*medialive.Options)) (*medialive.DeleteInputOutput, error)
	CreateChannel(ctx context.Context, params *medialive.CreateChannelInput, optFns ...func(*medialive.Options)) (*medialive.CreateChannelOutput, error)
	DescribeChannel(ctx context.Context, params *medialive.DescribeChannelInput, optFns ...func(*medialive.Options)) (*medialive.DescribeChannelOutput, error)
	StartChannel(ctx context.Context, params *medialive.StartChannelInput, optFns ...func(*medialive.Options)) (*medialive.StartChannelOutput, error)
	StopChannel(ctx context.Context, params *medialive.StopChannelInput, optFns ...func(*medialive.Options)) (*medialive.StopChannelOutput, error)
	DeleteChannel(ctx context.Context, params *medialive.DeleteChannelInput, optFns ...func(*medialive.Options)) (*medialive.DeleteChannelOutput, error)
}

// packagingAPI is the subset of the MediaPackage client used by RealClient.
type packagingAPI interface {
	mediapackage.ListChannelsAPIClient
	mediapackage.ListOriginEndpointsAPIClient

	CreateChannel(ctx context.Context, params *mediapackage.CreateChannelInput, optFns ...func(*mediapackage.Options)) (*mediapackage.CreateChannelOutput, error)
	DeleteChannel(ctx context.Context, params *mediapackage.DeleteChannelInput, optFns ...func(*mediapackage.Options)) (*mediapackage.DeleteChannelOutput, error)
	CreateOriginEndpoint(ctx context.Context, params *mediapackage.CreateOriginEndpointInput, optFns ...func(*mediapackage.Options)) (*mediapackage.CreateOriginEndpointOutput, error)
	DeleteOriginEndpoint(ctx context.Context, params *mediapackage.DeleteOriginEndpointInput, optFns ...func(*mediapackage.Options)) (*mediapackage.DeleteOriginEndpointOutput, error)
}

// iamAPI is the subset of the IAM client used by RealClient.
type iamAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
}

// RealClient implements MediaManager using the AWS SDK.
type RealClient struct {
	live      liveAPI
	packaging packagingAPI
	iam       iamAPI

	sdkLogger *logr.Logger
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithSDKLogger routes AWS SDK retry and request logs to l.
func WithSDKLogger(l logr.Logger) ClientOption {
	return func(c *RealClient) {
		c.sdkLogger = &l
	}
}

// WithMediaLiveAPI sets a custom MediaLive client (useful for testing).
func WithMediaLiveAPI(api liveAPI) ClientOption {
	return func(c *RealClient) {
		c.live = api
	}
}

// WithMediaPackageAPI sets a custom MediaPackage client (useful for testing).
func WithMediaPackageAPI(api packagingAPI) ClientOption {
	return func(c *RealClient) {
		c.packaging = api
	}
}

// WithIAMAPI sets a custom IAM client (useful for testing).
func WithIAMAPI(api iamAPI) ClientOption {
	return func(c *RealClient) {
		c.iam = api
	}
}

// NewRealClient creates a new RealClient from the AWS settings.
// Unset settings fall back to the SDK default chain (env, shared config, IMDS).
func NewRealClient(ctx context.Context, settings config.AWSConfig, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{}
	for _, opt := range opts {
		opt(c)
	}
	if c.live != nil && c.packaging != nil && c.iam != nil {
		return c, nil
	}

	cfg, err := loadSDKConfig(ctx, settings, c.sdkLogger)
	if err != nil {
		return nil, err
	}

	if c.live == nil {
		c.live = medialive.NewFromConfig(cfg, func(o *medialive.Options) {
			if settings.Endpoint != "" {
				o.BaseEndpoint = aws.String(settings.Endpoint)
			}
		})
	}
	if c.packaging == nil {
		c.packaging = mediapackage.NewFromConfig(cfg, func(o *mediapackage.Options) {
			if settings.Endpoint != "" {
				o.BaseEndpoint = aws.String(settings.Endpoint)
			}
		})
	}
	if c.iam == nil {
		c.iam = iam.NewFromConfig(cfg, func(o *iam.Options) {
			if settings.Endpoint != "" {
				o.BaseEndpoint = aws.String(settings.Endpoint)
			}
		})
	}
	return c, nil
}

func loadSDKConfig(ctx context.Context, settings config.AWSConfig, logger *logr.Logger) (aws.Config, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if settings.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(settings.Region))
	}
	if settings.HasStaticCredentials() {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}
	if logger != nil {
		loadOpts = append(loadOpts,
			awsconfig.WithLogger(sdkLogger(*logger)),
			awsconfig.WithClientLogMode(aws.LogRetries|aws.LogRequest),
		)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// sdkLogger adapts a logr.Logger to the smithy logging interface.
func sdkLogger(l logr.Logger) logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if classification == logging.Warn {
			l.Info(msg, "source", "aws-sdk", "level", "warn")
			return
		}
		l.V(2).Info(msg, "source", "aws-sdk")
	})
}

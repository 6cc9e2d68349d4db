package config

import (
	"os"

	"github.com/imamik/livepipe/internal/util/labels"
)

// Config holds everything a pipeline run needs.
type Config struct {
	// PipelineName prefixes resource names and is the value of the project tag.
	PipelineName string

	// SecurityCIDR is the source range allowed to push to the RTMP input.
	SecurityCIDR string

	// Cleanup selects teardown instead of creation.
	Cleanup bool

	// AWS holds SDK connection settings.
	AWS AWSConfig

	// AccessRoleName is the IAM role MediaLive assumes for inputs and channels.
	AccessRoleName string

	// LogVerbosity is the logr verbosity level (0 = progress only).
	LogVerbosity int

	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string

	Timeouts *Timeouts
}

// AWSConfig holds optional overrides for the AWS SDK default chain.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// HasStaticCredentials reports whether both static credential parts are set.
func (a AWSConfig) HasStaticCredentials() bool {
	return a.AccessKeyID != "" && a.SecretAccessKey != ""
}

// New creates a configuration from command-line options and the environment.
//
// Environment Variables:
//   - LIVEPIPE_REGION (default: SDK default chain)
//   - LIVEPIPE_ENDPOINT_URL (default: none)
//   - LIVEPIPE_ACCESS_KEY_ID / LIVEPIPE_SECRET_ACCESS_KEY (default: SDK default chain)
//   - LIVEPIPE_MEDIALIVE_ROLE (default: MediaLiveAccessRole)
//   - LIVEPIPE_LOG_VERBOSITY (default: 0)
//   - LIVEPIPE_METRICS_FILE (default: none)
func New(pipelineName, securityCIDR string, cleanup bool) *Config {
	return &Config{
		PipelineName: pipelineName,
		SecurityCIDR: securityCIDR,
		Cleanup:      cleanup,
		AWS: AWSConfig{
			Region:          os.Getenv("LIVEPIPE_REGION"),
			Endpoint:        os.Getenv("LIVEPIPE_ENDPOINT_URL"),
			AccessKeyID:     os.Getenv("LIVEPIPE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("LIVEPIPE_SECRET_ACCESS_KEY"),
		},
		AccessRoleName: parseString("LIVEPIPE_MEDIALIVE_ROLE", DefaultAccessRoleName),
		LogVerbosity:   parseInt("LIVEPIPE_LOG_VERBOSITY", 0),
		MetricsFile:    os.Getenv("LIVEPIPE_METRICS_FILE"),
		Timeouts:       LoadTimeouts(),
	}
}

// Tags returns the tag set attached to every resource of this pipeline.
func (c *Config) Tags() labels.TagSet {
	return labels.ForPipeline(c.PipelineName)
}

// parseString returns an environment variable or the default when unset.
func parseString(envVar, defaultVal string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultVal
}

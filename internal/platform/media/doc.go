// Package media wraps the AWS Elemental control plane used by a live pipeline.
//
// It covers three services through aws-sdk-go-v2:
//
//   - MediaLive: input security groups, RTMP push inputs and encoding channels
//   - MediaPackage (v1): packaging channels and HLS origin endpoints
//   - IAM: resolving the role MediaLive assumes
//
// All list operations follow pagination to the last page. Resources are
// returned as [Resource] values carrying their tags so callers can select the
// ones belonging to a pipeline.
//
// [MockClient] implements [MediaManager] with overridable Func fields for tests.
package media

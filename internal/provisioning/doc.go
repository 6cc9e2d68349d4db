// Package provisioning provides shared types, interfaces, and orchestration for live pipeline provisioning.
//
// # Subpackages
//
//   - packaging/ - MediaPackage channel and HLS origin endpoint
//   - ingest/ - MediaLive input security group, RTMP input and channel lifecycle
//   - destroy/ - Tag-based teardown of both
//
// # Core Types
//
// Context carries configuration, state, the media client, observer, logger and metrics.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates results from each phase (package channel, playback URL, input, channel id).
package provisioning

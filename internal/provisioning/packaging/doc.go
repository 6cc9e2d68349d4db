// Package packaging provisions the MediaPackage side of a live pipeline:
// a packaging channel with a deterministic id and an HLS origin endpoint
// serving the playback URL.
package packaging

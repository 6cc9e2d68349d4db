// Package ingest provisions the MediaLive side of a live pipeline.
//
// Create builds an input security group, an RTMP push input and an encoding
// channel that pushes to the packaging channel. StartChannel and StopChannel
// drive the channel through its lifecycle with poll loops. Cleanup stops the
// channel and deletes every tagged channel, input and input security group.
//
// The MediaLive access role is resolved on first use and remembered, as is the
// channel id, which can also be rediscovered from tags.
package ingest

package ingest

import "errors"

var (
	// ErrAccessRoleNotFound is returned when the MediaLive access role does not exist.
	ErrAccessRoleNotFound = errors.New("MediaLive access role not found")

	// ErrChannelNotFound is returned when no live channel carries the pipeline's tags.
	ErrChannelNotFound = errors.New("unable to determine live channel id")

	// ErrMissingPackageChannel is returned when the packaging channel id is empty.
	ErrMissingPackageChannel = errors.New("packaging channel id is required")
)

// RoleRemediation explains how to create the missing access role.
const RoleRemediation = `Cannot find the MediaLive access role. Open the Elemental MediaLive console in your account and create the service role:
  Create Channel -> Create role from template -> Create IAM Role
Or follow https://docs.aws.amazon.com/medialive/latest/ug/scenarios-for-medialive-role.html`

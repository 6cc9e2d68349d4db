package config

// Command-line defaults.
const (
	DefaultPipelineName = "elementalTest"
	DefaultSecurityCIDR = "0.0.0.0/0"
)

// DefaultAccessRoleName is the role created by the MediaLive console's
// "Create role from template" flow.
const DefaultAccessRoleName = "MediaLiveAccessRole"

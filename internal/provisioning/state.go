package provisioning

import "github.com/imamik/livepipe/internal/platform/media"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Packaging results (populated by the packaging provisioner)
	PackageChannelID string
	OriginEndpointID string
	PlaybackURL      string

	// Ingest results (populated by the ingest provisioner)
	SecurityGroupID   string
	InputID           string
	InputDestinations []media.InputDestination
	LiveChannelID     string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Package destroy tears a pipeline down.
//
// Each registered step removes the resources of one provisioner, found by the
// pipeline's tag set. Steps run in registration order; for a full pipeline that
// is ingest first (channel, inputs, security groups), then packaging (origin
// endpoints, packaging channels). A failing step does not stop later steps.
package destroy

// Package orchestration provides high-level workflow coordination for pipeline provisioning.
//
// It delegates to the provisioners in the internal/provisioning subpackages,
// defines their execution order and hands the packaging channel id from the
// packaging provisioner to the ingest provisioner.
//
// # Workflow
//
// Create runs these phases in order:
//  1. Validation - Pre-flight configuration validation
//  2. Packaging - MediaPackage channel and HLS origin endpoint
//  3. Ingest - Input security group, RTMP input and MediaLive channel
//  4. Start - Start the MediaLive channel and wait until it is starting
//
// Cleanup runs a single destroy phase: ingest resources first, then
// packaging resources. Nothing is rolled back on failure.
//
// # Usage
//
//	p := orchestration.New(cfg, client)
//	result, err := p.Create(ctx)
package orchestration

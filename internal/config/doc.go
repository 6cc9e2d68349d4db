// Package config defines the runtime configuration of a pipeline run.
//
// [Config] combines the command-line options (pipeline name, allowed ingest
// CIDR, cleanup mode) with settings read from LIVEPIPE_* environment
// variables: AWS region and endpoint overrides, the MediaLive access role,
// poll timing, log verbosity and the optional metrics textfile.
package config

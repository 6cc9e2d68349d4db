// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/livepipe/cmd/livepipe/handlers"
	"github.com/imamik/livepipe/internal/config"
)

// Root returns the root command for the livepipe CLI.
//
// Without --cleanup it creates the pipeline and starts the channel; with
// --cleanup it stops and deletes every resource tagged with the pipeline name.
func Root() *cobra.Command {
	var (
		pipelineName string
		securityCIDR string
		cleanup      bool
	)

	cmd := &cobra.Command{
		Use:   "livepipe",
		Short: "Provision a live video pipeline on AWS MediaLive and MediaPackage",
		Long: `livepipe creates a live video pipeline:

  - MediaPackage channel and HLS origin endpoint
  - MediaLive input security group and RTMP push input
  - MediaLive channel encoding into the MediaPackage channel

The channel is started once everything exists. On success the HLS playback URL
and the RTMP ingest parameters are printed.

Every resource is tagged project=<pipeline-name>. Run with --cleanup to stop the
channel and delete all resources carrying that tag.

Examples:
  livepipe --pipeline-name demo --security-cidr 203.0.113.0/24
  livepipe --pipeline-name demo --cleanup`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Pipeline(cmd.Context(), pipelineName, securityCIDR, cleanup)
		},
	}

	cmd.Flags().StringVar(&pipelineName, "pipeline-name", config.DefaultPipelineName, "Name used for all resources and the project tag")
	cmd.Flags().StringVar(&securityCIDR, "security-cidr", config.DefaultSecurityCIDR, "CIDR allowed to push to the RTMP input")
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "Stop and delete the pipeline instead of creating it")

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

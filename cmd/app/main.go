package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standby-builder",
		Short: "Validate Oracle physical standby configurations and dispatch them to the build pipeline",
		Long: `standby-builder normalizes a primary/standby field map, checks it against the
Data Guard rules and sends a create-physical-standby event to GitHub Actions.
Without GITHUB_TOKEN every trigger is a dry run that returns the payload.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newServeCommand(),
		newValidateCommand(),
		newRenderCommand(),
		newTriggerCommand(),
	)
	return cmd
}

// Package cli wires the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jmajeed/juno/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd builds the container and the command tree.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "juno",
		Short: "Juno - voice-driven command dispatcher",
		Long:  "Juno listens for a wake phrase, classifies the follow-up command and executes it, learning your routine as it goes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newAskCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newRoutineCommand(container))
	root.AddCommand(newStatsCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newConfigCommand(container))
	return root, nil
}

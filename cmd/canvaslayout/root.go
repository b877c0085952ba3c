package main

import (
	"log/slog"

	"github.com/gogpu/canvas"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "canvaslayout",
		Short:         "Inspect how canvas groups lay out their members",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !debug {
				canvas.SetLogger(nil)
				return
			}
			canvas.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log layout passes to stderr")

	cmd.AddCommand(
		newInspectCmd(),
		newStrategiesCmd(),
	)

	return cmd
}

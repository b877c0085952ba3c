package main

import (
	"github.com/gogpu/canvas/internal/ui"
	"github.com/gogpu/canvas/layout"
	"github.com/spf13/cobra"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List registered layout strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := ui.NewTable(cmd.OutOrStdout(), "STRATEGY", "DEFAULT")
			for _, tag := range layout.Strategies() {
				tbl.Row(tag, tag == layout.FitContentType)
			}
			return tbl.Flush()
		},
	}
}

package main

import (
	"fmt"

	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", config.AppName, tui.AppVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", tui.GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", tui.BuildTime)
		},
	}
}

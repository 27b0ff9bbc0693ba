package main

import (
	"browse/internal/icons"
	"fmt"

	"github.com/spf13/cobra"
)

func iconCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon <slug>",
		Short: "Prints the icon name of a category slug",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), icons.Resolve(args[0])) //nolint: forbidigo
		},
	}

	return cmd
}

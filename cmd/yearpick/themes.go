package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yearpick/internal/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available colour themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				t := theme.MustGet(name)
				marker := " "
				if name == theme.DefaultName {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-10s primary %s  surface %s\n", marker, name, t.Primary, t.Surface)
			}
			return nil
		},
	}

	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	min        string
	max        string
	initial    string
	current    string
	selected   string
	theme      string
	logFile    string
	verbose    bool
	confirm    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "yearpick",
		Short: "Pick a date from a paged year calendar",
		Long: `yearpick shows a bounded date range one calendar year per page and prints
the chosen date as YYYY-MM-DD on stdout. The picker is drawn on stderr, so
the result can be captured: when=$(yearpick --min 2020-01-01 --max 2030-12-31)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a yearpick YAML config")
	cmd.PersistentFlags().StringVar(&flags.min, "min", "", "First selectable date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&flags.max, "max", "", "Last selectable date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&flags.initial, "initial", "", "Date whose year is shown first")
	cmd.PersistentFlags().StringVar(&flags.current, "current", "", "Date highlighted as today")
	cmd.PersistentFlags().StringVar(&flags.selected, "selected", "", "Preselected date")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme (see 'yearpick themes')")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.confirm, "confirm", false, "Exit as soon as a date is selected")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newValidateCmd(flags))

	return cmd
}

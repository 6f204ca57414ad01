package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yearpick/internal/picker"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration without starting the picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			log, closeLog, err := openLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			in, err := cfg.Inputs()
			if err != nil {
				return err
			}
			if _, err := cfg.Overrides(); err != nil {
				return err
			}

			ctrl, err := picker.New(in, picker.WithLogger(log))
			if err != nil {
				return err
			}

			seq := ctrl.Sequencer()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "configuration OK\n")
			fmt.Fprintf(out, "range: %s (%d pages)\n", ctrl.Range(), seq.YearsCount())
			fmt.Fprintf(out, "initial page: %d (%d)\n", ctrl.PageIndex(), ctrl.DisplayedYear().Year)
			if sel, ok := ctrl.SelectedDate(); ok {
				fmt.Fprintf(out, "selected: %s\n", sel)
				if !ctrl.Range().Contains(sel) {
					fmt.Fprintln(out, "warning: selected date is outside the range")
				}
			}
			fmt.Fprintf(out, "theme: %s\n", cfg.ThemeName())

			log.Debug("configuration validated", "range", ctrl.Range().String())
			return nil
		},
	}

	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/logger"
	"github.com/alexisbeaulieu97/yearpick/internal/picker"
	"github.com/alexisbeaulieu97/yearpick/internal/tui/yearpicker"
)

// errCancelled is returned when the picker exits without a selection.
var errCancelled = errors.New("no date selected")

// program is the part of *tea.Program the pick command drives.
type program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

var (
	isTerminal = func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	}

	newProgram = func(m tea.Model) program {
		return tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	}
)

func runPick(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The picker owns stderr, so only a log file receives entries.
	log, closeLog, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	in, err := cfg.Inputs()
	if err != nil {
		return err
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return err
	}

	var lastTapped *calendar.Date
	ctrl, err := picker.New(in,
		picker.WithLogger(log),
		picker.WithOnDateSelected(func(d calendar.Date) { lastTapped = &d }),
		picker.WithOnLeadingDateTap(func() { log.Debug("year list requested") }),
	)
	if err != nil {
		log.Error(err, "controller rejected inputs")
		return err
	}
	defer picker.LogEvents(ctrl, log)()

	if !isTerminal(os.Stderr) {
		return fmt.Errorf("yearpick needs an interactive terminal on stderr")
	}

	model := yearpicker.NewModel(ctrl, in,
		yearpicker.WithTheme(cfg.ThemeName()),
		yearpicker.WithOverrides(overrides),
		yearpicker.WithConfirmOnSelect(cfg.ConfirmOnSelect),
		yearpicker.WithLogger(log),
	)

	log.Info("picker started", "range", ctrl.Range().String(), "theme", cfg.ThemeName())

	p := newProgram(model)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if flags.configPath != "" {
		watchReload(ctx, p, flags, log)
	}

	final, err := p.Run()
	if err != nil {
		log.Error(err, "picker execution failed")
		return fmt.Errorf("failed to run picker: %w", err)
	}

	picked, ok := final.(yearpicker.Model)
	if !ok {
		return errCancelled
	}
	date, ok := picked.Result()
	if !ok {
		if lastTapped != nil {
			log.Info("picker cancelled", "last_selected", lastTapped.String())
		} else {
			log.Info("picker cancelled")
		}
		return errCancelled
	}

	log.Info("date picked", "date", date.String())
	fmt.Fprintln(cmd.OutOrStdout(), date.String())
	return nil
}

// watchReload re-reads the config on SIGHUP and pushes the new inputs and
// theme into the running program.
func watchReload(ctx context.Context, p program, flags *rootFlags, log *logger.Logger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP)

	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				reload(p, flags, log)
			}
		}
	}()
}

func reload(p program, flags *rootFlags, log *logger.Logger) {
	cfg, err := loadConfig(flags)
	if err != nil {
		log.Warn("config reload failed", "error", err.Error())
		p.Send(yearpicker.ErrorMsg{Err: err})
		return
	}
	in, err := cfg.Inputs()
	if err != nil {
		p.Send(yearpicker.ErrorMsg{Err: err})
		return
	}

	log.Info("config reloaded", "path", flags.configPath)
	p.Send(yearpicker.InputsUpdatedMsg{Inputs: in})
	p.Send(yearpicker.ThemeChangedMsg{Name: cfg.ThemeName()})
}

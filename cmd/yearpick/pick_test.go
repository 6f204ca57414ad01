package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yearpick/internal/logger"
	"github.com/alexisbeaulieu97/yearpick/internal/tui/yearpicker"
	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

// fakeProgram replays msgs through the model instead of driving a terminal.
type fakeProgram struct {
	model tea.Model
	msgs  []tea.Msg
	sent  []tea.Msg
}

func (f *fakeProgram) Run() (tea.Model, error) {
	m := f.model
	for _, msg := range f.msgs {
		m, _ = m.Update(msg)
	}
	return m, nil
}

func (f *fakeProgram) Send(msg tea.Msg) {
	f.sent = append(f.sent, msg)
}

func stubTerminal(t *testing.T, terminal bool, msgs ...tea.Msg) *fakeProgram {
	t.Helper()

	origTerminal, origProgram := isTerminal, newProgram
	t.Cleanup(func() {
		isTerminal, newProgram = origTerminal, origProgram
	})

	fake := &fakeProgram{msgs: msgs}
	isTerminal = func(*os.File) bool { return terminal }
	newProgram = func(m tea.Model) program {
		fake.model = m
		return fake
	}
	return fake
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var pickArgs = []string{
	"--min", "2020-01-01",
	"--max", "2025-12-31",
	"--initial", "2023-06-15",
	"--current", "2023-06-20",
}

func TestPickPrintsConfirmedDate(t *testing.T) {
	stubTerminal(t, true, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})

	out, err := execute(t, append(pickArgs, "--confirm")...)

	require.NoError(t, err)
	assert.Equal(t, "2023-06-21\n", out)
}

func TestPickConfirmKey(t *testing.T) {
	stubTerminal(t, true,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")},
	)

	out, err := execute(t, pickArgs...)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-20\n", out)
}

func TestPickCancelled(t *testing.T) {
	stubTerminal(t, true, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	out, err := execute(t, pickArgs...)

	require.ErrorIs(t, err, errCancelled)
	assert.Empty(t, out)
}

func TestPickRequiresTerminal(t *testing.T) {
	fake := stubTerminal(t, false)

	_, err := execute(t, pickArgs...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	assert.Nil(t, fake.model, "program must not start")
}

func TestPickRejectsInvertedRange(t *testing.T) {
	stubTerminal(t, true)

	_, err := execute(t, "--min", "2030-01-01", "--max", "2020-01-01")

	var rangeErr *apperrors.RangeConfigurationError
	require.ErrorAs(t, err, &rangeErr)
}

func TestPickRejectsInitialOutsideRange(t *testing.T) {
	stubTerminal(t, true)

	_, err := execute(t, "--min", "2020-01-01", "--max", "2021-01-01", "--initial", "2019-05-05")

	var outErr *apperrors.OutOfRangeError
	require.ErrorAs(t, err, &outErr)
	assert.Equal(t, apperrors.BoundMin, outErr.Bound)
}

func TestPickDefaultRange(t *testing.T) {
	origNow := now
	t.Cleanup(func() { now = origNow })
	now = func() time.Time { return time.Date(2023, time.June, 20, 12, 0, 0, 0, time.UTC) }

	fake := stubTerminal(t, true)

	_, err := execute(t)

	require.ErrorIs(t, err, errCancelled)
	m, ok := fake.model.(yearpicker.Model)
	require.True(t, ok)
	assert.Equal(t, "Slate", m.ThemeName())
}

func TestPickUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yearpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`range:
  min: 2020-01-01
  max: 2025-12-31
initial: 2022-02-02
current: 2022-02-03
theme: Kanagawa
confirm_on_select: true
`), 0o600))

	fake := stubTerminal(t, true, tea.KeyMsg{Type: tea.KeyEnter})

	out, err := execute(t, "--config", path)

	require.NoError(t, err)
	assert.Equal(t, "2022-02-03\n", out)
	m, ok := fake.model.(yearpicker.Model)
	require.True(t, ok)
	assert.Equal(t, "Kanagawa", m.ThemeName())
}

func TestPickConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yearpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range:\n  min: 2020-01-01\n  max: 2025-12-31\nwat: 1\n"), 0o600))
	stubTerminal(t, true)

	_, err := execute(t, "--config", path)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Line)
}

func TestPickMissingConfig(t *testing.T) {
	stubTerminal(t, true)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestPickWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "yearpick.log")
	stubTerminal(t, true, tea.KeyMsg{Type: tea.KeyEnter})

	_, err := execute(t, append(pickArgs, "--confirm", "--log-file", logPath, "--verbose")...)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date picked")
	assert.Contains(t, string(data), `"component":"picker"`)
}

func TestPickLogsLastTappedDateOnCancel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "yearpick.log")
	stubTerminal(t, true,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	)

	_, err := execute(t, append(pickArgs, "--log-file", logPath, "--verbose")...)
	require.ErrorIs(t, err, errCancelled)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_selected":"2023-06-20"`)
	assert.Contains(t, string(data), "year list requested")
}

func TestReloadSendsInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yearpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range:\n  min: 2020-01-01\n  max: 2025-12-31\ntheme: Nightfox\n"), 0o600))
	fake := &fakeProgram{}

	reload(fake, &rootFlags{configPath: path}, logger.Nop())

	require.Len(t, fake.sent, 2)
	upd, ok := fake.sent[0].(yearpicker.InputsUpdatedMsg)
	require.True(t, ok)
	assert.Equal(t, 2025, upd.Inputs.MaxDate.Year())
	assert.Equal(t, yearpicker.ThemeChangedMsg{Name: "Nightfox"}, fake.sent[1])
}

func TestReloadReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yearpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range:\n  min: 2030-01-01\n  max: 2025-12-31\n"), 0o600))
	fake := &fakeProgram{}

	reload(fake, &rootFlags{configPath: path}, logger.Nop())

	require.Len(t, fake.sent, 1)
	msg, ok := fake.sent[0].(yearpicker.ErrorMsg)
	require.True(t, ok)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, msg.Err, &validationErr)
}

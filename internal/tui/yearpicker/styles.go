package yearpicker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yearpick/internal/style"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
)

var errorColor = lipgloss.Color("196") // Red

// styles holds the chrome styles derived from the active theme. Day cells
// are drawn from the resolved bundle instead.
type styles struct {
	header      lipgloss.Style
	status      lipgloss.Style
	muted       lipgloss.Style
	errorBanner lipgloss.Style
	listItem    lipgloss.Style
	listCursor  lipgloss.Style
	listCurrent lipgloss.Style
	activeDot   lipgloss.Style
	inactiveDot lipgloss.Style
	footer      lipgloss.Style
}

func newStyles(t theme.Theme, b style.Bundle) styles {
	bg := b.Background
	primary := b.NavColor.Flatten(bg)
	muted := t.MutedColor().Flatten(bg)

	return styles{
		header: lipgloss.NewStyle().
			MarginBottom(1),
		status: lipgloss.NewStyle().
			Foreground(b.Enabled.Text.Color.Flatten(bg)).
			MarginTop(1),
		muted: lipgloss.NewStyle().
			Foreground(muted),
		errorBanner: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(errorColor),
		listItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(b.Enabled.Text.Color.Flatten(bg)),
		listCursor: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(primary),
		listCurrent: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(b.Current.Text.Color.Flatten(bg)).
			Underline(true),
		activeDot: lipgloss.NewStyle().
			Foreground(primary),
		inactiveDot: lipgloss.NewStyle().
			Foreground(muted),
		footer: lipgloss.NewStyle().
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(muted).
			MarginTop(1),
	}
}

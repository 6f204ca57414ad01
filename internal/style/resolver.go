package style

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	// LeadingLabelSize is the fixed size of the header year label.
	LeadingLabelSize = 18
	// DefaultNavSize is the navigation control size used without an override.
	DefaultNavSize = 20
	// DisabledOpacity dims out-of-range cells and the splash colour.
	DisabledOpacity = 0.3
)

// Weight is a font weight.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

// TextStyle describes how a label is drawn.
type TextStyle struct {
	Size   int
	Weight Weight
	Color  Color
}

// ShapeKind selects the decoration drawn behind a day cell.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeCircleOutline
	ShapeCircleFilled
)

// Shape is the decoration of a day cell.
type Shape struct {
	Kind   ShapeKind
	Fill   Color
	Stroke Color
}

// Cell is the resolved presentation of one day-cell state.
type Cell struct {
	Text  TextStyle
	Shape Shape
}

// Palette is the subset of a theme the resolver derives defaults from.
type Palette struct {
	Primary        Color
	OnPrimary      Color
	Surface        Color
	OnSurface      Color
	Highlight      Color
	LargeTitleSize int
}

// Overrides holds caller-supplied styles. A nil field falls back to the palette.
type Overrides struct {
	EnabledText      *TextStyle
	DisabledText     *TextStyle
	CurrentText      *TextStyle
	CurrentShape     *Shape
	SelectedText     *TextStyle
	SelectedShape    *Shape
	LeadingLabelText *TextStyle
	NavColor         *Color
	NavSize          *int
	Splash           *Color
	Highlight        *Color
}

// Bundle is a fully resolved set of styles; nothing in it is optional.
type Bundle struct {
	Enabled      Cell
	Disabled     Cell
	Current      Cell
	Selected     Cell
	LeadingLabel TextStyle
	NavColor     Color
	NavSize      int
	Splash       Color
	Highlight    Color
	Background   Color
}

// Resolve fills every field of a Bundle, taking each override verbatim when
// present and deriving it from the palette otherwise.
func Resolve(o Overrides, p Palette) Bundle {
	base := TextStyle{Size: p.LargeTitleSize, Weight: WeightNormal}

	b := Bundle{Background: p.Surface}

	b.Enabled.Text = pick(o.EnabledText, withColor(base, p.OnSurface))
	b.Disabled.Text = pick(o.DisabledText, withColor(base, p.OnSurface.WithAlpha(DisabledOpacity)))
	b.Current.Text = pick(o.CurrentText, withColor(base, p.Primary))
	b.Current.Shape = pick(o.CurrentShape, Shape{Kind: ShapeCircleOutline, Stroke: p.Primary})
	b.Selected.Text = pick(o.SelectedText, withColor(base, p.OnPrimary))
	b.Selected.Shape = pick(o.SelectedShape, Shape{Kind: ShapeCircleFilled, Fill: p.Primary})

	b.LeadingLabel = pick(o.LeadingLabelText, TextStyle{Size: LeadingLabelSize, Weight: WeightBold, Color: p.Primary})
	b.NavColor = pick(o.NavColor, p.Primary)
	b.NavSize = pick(o.NavSize, DefaultNavSize)

	splash := p.OnPrimary.WithAlpha(DisabledOpacity)
	if fill := b.Selected.Shape.Fill; fill.IsSet() {
		splash = fill.WithAlpha(DisabledOpacity)
	}
	b.Splash = pick(o.Splash, splash)
	b.Highlight = pick(o.Highlight, p.Highlight)

	return b
}

func pick[T any](override *T, fallback T) T {
	if override != nil {
		return *override
	}
	return fallback
}

func withColor(t TextStyle, c Color) TextStyle {
	t.Color = c
	return t
}

// Lipgloss converts the text style to a lipgloss style drawn over bg.
func (t TextStyle) Lipgloss(bg Color) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Color.Flatten(bg))
	if t.Weight == WeightBold {
		s = s.Bold(true)
	}
	return s
}

// Render draws content (a day number) as a cell over bg. Outlined cells are
// wrapped in parentheses in the stroke colour; filled cells get the fill as
// their background. The result is always len(content)+2 cells wide.
func (c Cell) Render(content string, bg Color) string {
	switch c.Shape.Kind {
	case ShapeCircleFilled:
		fill := c.Shape.Fill
		if !fill.IsSet() {
			fill = bg
		}
		s := c.Text.Lipgloss(fill).Background(fill.Flatten(bg))
		return s.Render(" " + content + " ")
	case ShapeCircleOutline:
		stroke := lipgloss.NewStyle().Foreground(c.Shape.Stroke.Flatten(bg))
		return stroke.Render("(") + c.Text.Lipgloss(bg).Render(content) + stroke.Render(")")
	default:
		return c.Text.Lipgloss(bg).Render(" " + content + " ")
	}
}

package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with an opacity. The zero value means "no colour".
type Color struct {
	rgb   colorful.Color
	alpha float64
	set   bool
}

// Hex parses a #rrggbb or #rgb colour at full opacity.
func Hex(value string) (Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", value, err)
	}
	return Color{rgb: c, alpha: 1, set: true}, nil
}

// MustHex is Hex for literals known to be valid.
func MustHex(value string) Color {
	c, err := Hex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSet reports whether c carries a colour.
func (c Color) IsSet() bool { return c.set }

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 { return c.alpha }

// WithAlpha returns c with its opacity replaced by alpha.
func (c Color) WithAlpha(alpha float64) Color {
	if !c.set {
		return c
	}
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	c.alpha = alpha
	return c
}

// Hex returns the #rrggbb form of the colour, ignoring opacity.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.rgb.Clamped().Hex()
}

// Flatten composites c over bg, since terminals have no alpha channel.
// An unset bg counts as black.
func (c Color) Flatten(bg Color) lipgloss.TerminalColor {
	if !c.set {
		return lipgloss.NoColor{}
	}
	if c.alpha >= 1 {
		return lipgloss.Color(c.Hex())
	}
	base := colorful.Color{}
	if bg.set {
		base = bg.rgb
	}
	return lipgloss.Color(base.BlendRgb(c.rgb, c.alpha).Clamped().Hex())
}

func (c Color) String() string {
	if !c.set {
		return "none"
	}
	if c.alpha >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s@%.0f%%", c.Hex(), c.alpha*100)
}

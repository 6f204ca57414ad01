package theme

import (
	"github.com/alexisbeaulieu97/yearpick/internal/style"
)

const shadeCount = 10

// Shade indexes a Tailwind-style colour scale, 50 (lightest) to 900 (darkest).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Shades is a ten-step colour scale ordered lightest to darkest.
type Shades struct {
	colors [shadeCount]string
}

// NewShades builds a scale from up to ten hex colours.
func NewShades(colors ...string) Shades {
	var s Shades
	for i := 0; i < shadeCount && i < len(colors); i++ {
		s.colors[i] = colors[i]
	}
	return s
}

// Hex returns the colour at shade, or "" when out of bounds.
func (s Shades) Hex(shade Shade) string {
	if shade < 0 || int(shade) >= shadeCount {
		return ""
	}
	return s.colors[shade]
}

// Theme names the semantic colours the picker is drawn with.
type Theme struct {
	Name string

	Primary   string
	OnPrimary string
	Surface   string
	OnSurface string
	Highlight string
	Muted     string

	LargeTitleSize int
}

// Palette converts the theme into resolver input. Invalid hex values resolve
// to an unset colour.
func (t Theme) Palette() style.Palette {
	return style.Palette{
		Primary:        parse(t.Primary),
		OnPrimary:      parse(t.OnPrimary),
		Surface:        parse(t.Surface),
		OnSurface:      parse(t.OnSurface),
		Highlight:      parse(t.Highlight),
		LargeTitleSize: t.LargeTitleSize,
	}
}

// MutedColor returns the colour used for chrome such as weekday headings.
func (t Theme) MutedColor() style.Color {
	return parse(t.Muted)
}

func parse(hex string) style.Color {
	c, err := style.Hex(hex)
	if err != nil {
		return style.Color{}
	}
	return c
}

var (
	slate = NewShades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
		"#64748b", "#475569", "#334155", "#1e293b", "#0f172a")
	sky = NewShades("#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8",
		"#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e")
)

var themes = map[string]Theme{
	"Slate":    slateTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Slate", "Nightfox", "Kanagawa"}

// DefaultName is the theme used when none is configured.
const DefaultName = "Slate"

// Get returns a theme by name.
func Get(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// MustGet returns the named theme, or the default theme for unknown names.
func MustGet(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return slateTheme()
}

// Next returns the next theme name in the cycle.
func Next(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Names returns available theme names in cycle order.
func Names() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:           "Slate",
		Primary:        sky.Hex(Shade400),
		OnPrimary:      slate.Hex(Shade900),
		Surface:        slate.Hex(Shade900),
		OnSurface:      slate.Hex(Shade100),
		Highlight:      slate.Hex(Shade800),
		Muted:          slate.Hex(Shade400),
		LargeTitleSize: 22,
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:           "Nightfox",
		Primary:        "#719cd6", // blue
		OnPrimary:      "#131a24", // bg0
		Surface:        "#192330", // bg1
		OnSurface:      "#cdcecf", // fg1
		Highlight:      "#2b3b51", // sel0
		Muted:          "#738091", // comment
		LargeTitleSize: 22,
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:           "Kanagawa",
		Primary:        "#7E9CD8", // crystalBlue
		OnPrimary:      "#16161D", // sumiInk0
		Surface:        "#1F1F28", // sumiInk3
		OnSurface:      "#DCD7BA", // fujiWhite
		Highlight:      "#2D4F67", // waveBlue1
		Muted:          "#727169", // fujiGray
		LargeTitleSize: 22,
	}
}

package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() Palette {
	return Palette{
		Primary:        MustHex("#38bdf8"),
		OnPrimary:      MustHex("#020617"),
		Surface:        MustHex("#0f172a"),
		OnSurface:      MustHex("#f1f5f9"),
		Highlight:      MustHex("#1e293b"),
		LargeTitleSize: 22,
	}
}

func TestResolveDefaultsFromPalette(t *testing.T) {
	p := testPalette()
	b := Resolve(Overrides{}, p)

	assert.Equal(t, TextStyle{Size: 22, Weight: WeightNormal, Color: p.OnSurface}, b.Enabled.Text)
	assert.Equal(t, ShapeNone, b.Enabled.Shape.Kind)

	assert.Equal(t, p.OnSurface.Hex(), b.Disabled.Text.Color.Hex())
	assert.InDelta(t, 0.3, b.Disabled.Text.Color.Alpha(), 1e-9)

	assert.Equal(t, p.Primary, b.Current.Text.Color)
	assert.Equal(t, Shape{Kind: ShapeCircleOutline, Stroke: p.Primary}, b.Current.Shape)

	assert.Equal(t, p.OnPrimary, b.Selected.Text.Color)
	assert.Equal(t, Shape{Kind: ShapeCircleFilled, Fill: p.Primary}, b.Selected.Shape)

	assert.Equal(t, TextStyle{Size: LeadingLabelSize, Weight: WeightBold, Color: p.Primary}, b.LeadingLabel)
	assert.Equal(t, p.Primary, b.NavColor)
	assert.Equal(t, DefaultNavSize, b.NavSize)
	assert.Equal(t, p.Highlight, b.Highlight)
	assert.Equal(t, p.Surface, b.Background)

	assert.Equal(t, p.Primary.Hex(), b.Splash.Hex())
	assert.InDelta(t, 0.3, b.Splash.Alpha(), 1e-9)
}

func TestResolveUsesOverridesVerbatim(t *testing.T) {
	p := testPalette()
	red := MustHex("#ff0000")
	size := 12
	text := TextStyle{Size: 10, Weight: WeightBold, Color: red}
	shape := Shape{Kind: ShapeCircleOutline, Stroke: red}

	b := Resolve(Overrides{
		EnabledText:      &text,
		CurrentShape:     &shape,
		LeadingLabelText: &text,
		NavColor:         &red,
		NavSize:          &size,
		Highlight:        &red,
	}, p)

	assert.Equal(t, text, b.Enabled.Text)
	assert.Equal(t, shape, b.Current.Shape)
	assert.Equal(t, text, b.LeadingLabel)
	assert.Equal(t, red, b.NavColor)
	assert.Equal(t, 12, b.NavSize)
	assert.Equal(t, red, b.Highlight)

	// Fields without overrides still come from the palette.
	assert.Equal(t, p.Primary, b.Current.Text.Color)
	assert.Equal(t, p.OnPrimary, b.Selected.Text.Color)
}

func TestResolveSplashFollowsSelectedFill(t *testing.T) {
	p := testPalette()
	green := MustHex("#22c55e")
	shape := Shape{Kind: ShapeCircleFilled, Fill: green}

	b := Resolve(Overrides{SelectedShape: &shape}, p)

	assert.Equal(t, green.Hex(), b.Splash.Hex())
	assert.InDelta(t, 0.3, b.Splash.Alpha(), 1e-9)
}

func TestResolveSplashFallsBackToOnPrimaryWithoutFill(t *testing.T) {
	p := testPalette()
	shape := Shape{Kind: ShapeCircleOutline, Stroke: p.Primary}

	b := Resolve(Overrides{SelectedShape: &shape}, p)

	assert.Equal(t, p.OnPrimary.Hex(), b.Splash.Hex())
	assert.InDelta(t, 0.3, b.Splash.Alpha(), 1e-9)
}

func TestResolveSplashOverrideWins(t *testing.T) {
	p := testPalette()
	splash := MustHex("#abcdef")

	b := Resolve(Overrides{Splash: &splash}, p)
	assert.Equal(t, splash, b.Splash)
}

func TestColorFlattenBlendsOverBackground(t *testing.T) {
	white := MustHex("#ffffff")
	black := MustHex("#000000")

	assert.Equal(t, lipgloss.Color("#ffffff"), white.Flatten(black))

	half := white.WithAlpha(0.5).Flatten(black)
	require.IsType(t, lipgloss.Color(""), half)
	assert.NotEqual(t, lipgloss.Color("#ffffff"), half)
	assert.NotEqual(t, lipgloss.Color("#000000"), half)

	assert.Equal(t, lipgloss.NoColor{}, Color{}.Flatten(black))
}

func TestColorHexAndString(t *testing.T) {
	_, err := Hex("not-a-colour")
	require.Error(t, err)

	c := MustHex("#38bdf8")
	assert.Equal(t, "#38bdf8", c.Hex())
	assert.Equal(t, "#38bdf8", c.String())
	assert.Equal(t, "#38bdf8@30%", c.WithAlpha(0.3).String())
	assert.Equal(t, "none", Color{}.String())
	assert.False(t, Color{}.WithAlpha(0.5).IsSet())
}

func TestCellRenderKeepsWidth(t *testing.T) {
	b := Resolve(Overrides{}, testPalette())

	for name, cell := range map[string]Cell{
		"enabled":  b.Enabled,
		"disabled": b.Disabled,
		"current":  b.Current,
		"selected": b.Selected,
	} {
		t.Run(name, func(t *testing.T) {
			out := cell.Render("15", b.Background)
			assert.Equal(t, 4, lipgloss.Width(out))
			assert.Contains(t, out, "15")
		})
	}

	assert.Contains(t, b.Current.Render(" 7", b.Background), "( 7)")
}

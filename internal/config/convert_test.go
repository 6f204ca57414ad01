package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/style"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default(calendar.New(2024, time.May, 3))
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "2014-01-01", cfg.Range.Min)
	assert.Equal(t, "2034-12-31", cfg.Range.Max)
	assert.Equal(t, theme.DefaultName, cfg.ThemeName())
}

func TestInputs(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Range:    RangeConfig{Min: "2000-01-01", Max: "2030-12-31"},
		Initial:  "2024-06-15",
		Selected: "2024-06-20",
	}

	in, err := cfg.Inputs()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), in.MinDate)
	assert.Equal(t, time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC), in.MaxDate)
	require.NotNil(t, in.InitialDate)
	assert.Equal(t, 2024, in.InitialDate.Year())
	require.NotNil(t, in.SelectedDate)
	assert.Equal(t, 20, in.SelectedDate.Day())
	assert.Nil(t, in.CurrentDate)
}

func TestInputsRejectsBadDates(t *testing.T) {
	t.Parallel()

	cfg := &Config{Range: RangeConfig{Min: "2000-01-01", Max: "2030-12-31"}, Current: "yesterday"}

	_, err := cfg.Inputs()
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "current", validationErr.Field)
}

func TestOverrides(t *testing.T) {
	t.Parallel()

	t.Run("empty styles leave every override nil", func(t *testing.T) {
		t.Parallel()
		o, err := (&Config{}).Overrides()
		require.NoError(t, err)
		assert.Equal(t, style.Overrides{}, o)
	})

	t.Run("populated styles are converted", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Styles: StyleConfig{
			SelectedText:  &TextConfig{Color: "#ffffff", Bold: true, Size: 14},
			SelectedShape: &ShapeConfig{Kind: "filled", Fill: "#ff0000"},
			CurrentShape:  &ShapeConfig{Kind: "outline", Stroke: "#00ff00"},
			NavColor:      "#0000ff",
			NavSize:       24,
		}}

		o, err := cfg.Overrides()
		require.NoError(t, err)

		require.NotNil(t, o.SelectedText)
		assert.Equal(t, style.WeightBold, o.SelectedText.Weight)
		assert.Equal(t, 14, o.SelectedText.Size)
		assert.Equal(t, "#ffffff", o.SelectedText.Color.Hex())

		require.NotNil(t, o.SelectedShape)
		assert.Equal(t, style.ShapeCircleFilled, o.SelectedShape.Kind)
		assert.Equal(t, "#ff0000", o.SelectedShape.Fill.Hex())
		assert.False(t, o.SelectedShape.Stroke.IsSet())

		require.NotNil(t, o.CurrentShape)
		assert.Equal(t, style.ShapeCircleOutline, o.CurrentShape.Kind)

		require.NotNil(t, o.NavColor)
		assert.Equal(t, "#0000ff", o.NavColor.Hex())
		require.NotNil(t, o.NavSize)
		assert.Equal(t, 24, *o.NavSize)

		assert.Nil(t, o.EnabledText)
		assert.Nil(t, o.Splash)
	})

	t.Run("selected fill feeds the resolved splash", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Styles: StyleConfig{SelectedShape: &ShapeConfig{Kind: "filled", Fill: "#ff0000"}}}

		o, err := cfg.Overrides()
		require.NoError(t, err)

		b := style.Resolve(o, theme.MustGet(theme.DefaultName).Palette())
		assert.Equal(t, "#ff0000", b.Splash.Hex())
		assert.InDelta(t, style.DisabledOpacity, b.Splash.Alpha(), 1e-9)
	})

	t.Run("colours the resolver cannot parse are validation errors", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Styles: StyleConfig{Splash: "#12"}}

		_, err := cfg.Overrides()
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "styles.splash", validationErr.Field)
	})

	t.Run("unknown shape kinds are rejected", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Styles: StyleConfig{CurrentShape: &ShapeConfig{Kind: "hexagon"}}}

		_, err := cfg.Overrides()
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "styles.current_shape.kind", validationErr.Field)
	})
}

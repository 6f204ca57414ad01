package config

import (
	"time"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/picker"
	"github.com/alexisbeaulieu97/yearpick/internal/style"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

// DefaultSpan is the number of years either side of today the default range covers.
const DefaultSpan = 10

// Default returns a configuration spanning DefaultSpan years around today.
func Default(today calendar.Date) *Config {
	return &Config{
		Range: RangeConfig{
			Min: calendar.New(today.Year-DefaultSpan, time.January, 1).String(),
			Max: calendar.New(today.Year+DefaultSpan, time.December, 31).String(),
		},
		Theme: theme.DefaultName,
		Log:   LogConfig{Level: "info"},
	}
}

// Inputs converts the configuration into controller inputs.
func (c *Config) Inputs() (picker.Inputs, error) {
	var in picker.Inputs
	var err error

	if in.MinDate, err = parseRequired("range.min", c.Range.Min); err != nil {
		return picker.Inputs{}, err
	}
	if in.MaxDate, err = parseRequired("range.max", c.Range.Max); err != nil {
		return picker.Inputs{}, err
	}
	if in.InitialDate, err = parseOptional("initial", c.Initial); err != nil {
		return picker.Inputs{}, err
	}
	if in.CurrentDate, err = parseOptional("current", c.Current); err != nil {
		return picker.Inputs{}, err
	}
	if in.SelectedDate, err = parseOptional("selected", c.Selected); err != nil {
		return picker.Inputs{}, err
	}
	return in, nil
}

// ThemeName returns the configured theme, or the default.
func (c *Config) ThemeName() string {
	if c.Theme == "" {
		return theme.DefaultName
	}
	return c.Theme
}

// Overrides converts the styles section into resolver overrides.
func (c *Config) Overrides() (style.Overrides, error) {
	var o style.Overrides
	var err error
	s := c.Styles

	if o.EnabledText, err = textOverride("styles.enabled_text", s.EnabledText); err != nil {
		return style.Overrides{}, err
	}
	if o.DisabledText, err = textOverride("styles.disabled_text", s.DisabledText); err != nil {
		return style.Overrides{}, err
	}
	if o.CurrentText, err = textOverride("styles.current_text", s.CurrentText); err != nil {
		return style.Overrides{}, err
	}
	if o.SelectedText, err = textOverride("styles.selected_text", s.SelectedText); err != nil {
		return style.Overrides{}, err
	}
	if o.LeadingLabelText, err = textOverride("styles.leading_label", s.LeadingLabel); err != nil {
		return style.Overrides{}, err
	}
	if o.CurrentShape, err = shapeOverride("styles.current_shape", s.CurrentShape); err != nil {
		return style.Overrides{}, err
	}
	if o.SelectedShape, err = shapeOverride("styles.selected_shape", s.SelectedShape); err != nil {
		return style.Overrides{}, err
	}
	if o.NavColor, err = colorOverride("styles.nav_color", s.NavColor); err != nil {
		return style.Overrides{}, err
	}
	if o.Splash, err = colorOverride("styles.splash", s.Splash); err != nil {
		return style.Overrides{}, err
	}
	if o.Highlight, err = colorOverride("styles.highlight", s.Highlight); err != nil {
		return style.Overrides{}, err
	}
	if s.NavSize > 0 {
		size := s.NavSize
		o.NavSize = &size
	}

	return o, nil
}

func parseRequired(field, value string) (time.Time, error) {
	d, err := calendar.Parse(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a YYYY-MM-DD date", err)
	}
	return d.Time(), nil
}

func parseOptional(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseRequired(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func textOverride(field string, tc *TextConfig) (*style.TextStyle, error) {
	if tc == nil {
		return nil, nil
	}
	c, err := colorValue(field+".color", tc.Color)
	if err != nil {
		return nil, err
	}
	ts := style.TextStyle{Size: tc.Size, Weight: style.WeightNormal, Color: c}
	if tc.Bold {
		ts.Weight = style.WeightBold
	}
	return &ts, nil
}

func shapeOverride(field string, sc *ShapeConfig) (*style.Shape, error) {
	if sc == nil {
		return nil, nil
	}
	shape := style.Shape{}
	switch sc.Kind {
	case "outline":
		shape.Kind = style.ShapeCircleOutline
	case "filled":
		shape.Kind = style.ShapeCircleFilled
	case "none", "":
		shape.Kind = style.ShapeNone
	default:
		return nil, apperrors.NewValidationError(field+".kind", "must be one of none, outline, filled", nil)
	}

	var err error
	if sc.Fill != "" {
		if shape.Fill, err = colorValue(field+".fill", sc.Fill); err != nil {
			return nil, err
		}
	}
	if sc.Stroke != "" {
		if shape.Stroke, err = colorValue(field+".stroke", sc.Stroke); err != nil {
			return nil, err
		}
	}
	return &shape, nil
}

func colorOverride(field, value string) (*style.Color, error) {
	if value == "" {
		return nil, nil
	}
	c, err := colorValue(field, value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func colorValue(field, value string) (style.Color, error) {
	c, err := style.Hex(value)
	if err != nil {
		return style.Color{}, apperrors.NewValidationError(field, "must be a #rgb or #rrggbb colour", err)
	}
	return c, nil
}

package config

// Config represents a yearpick configuration document.
type Config struct {
	Range           RangeConfig `yaml:"range"`
	Initial         string      `yaml:"initial,omitempty" validate:"omitempty,date"`
	Current         string      `yaml:"current,omitempty" validate:"omitempty,date"`
	Selected        string      `yaml:"selected,omitempty" validate:"omitempty,date"`
	Theme           string      `yaml:"theme,omitempty" validate:"omitempty,theme"`
	ConfirmOnSelect bool        `yaml:"confirm_on_select,omitempty"`
	Log             LogConfig   `yaml:"log,omitempty"`
	Styles          StyleConfig `yaml:"styles,omitempty"`
}

// RangeConfig bounds the selectable dates.
type RangeConfig struct {
	Min string `yaml:"min" validate:"required,date"`
	Max string `yaml:"max" validate:"required,date"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Human bool   `yaml:"human,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// TextConfig overrides a label style.
type TextConfig struct {
	Color string `yaml:"color" validate:"required,hexcolor"`
	Bold  bool   `yaml:"bold,omitempty"`
	Size  int    `yaml:"size,omitempty" validate:"omitempty,min=1,max=96"`
}

// ShapeConfig overrides a day-cell decoration.
type ShapeConfig struct {
	Kind   string `yaml:"kind" validate:"required,oneof=none outline filled"`
	Fill   string `yaml:"fill,omitempty" validate:"omitempty,hexcolor"`
	Stroke string `yaml:"stroke,omitempty" validate:"omitempty,hexcolor"`
}

// StyleConfig holds optional style overrides; unset entries use the theme.
type StyleConfig struct {
	EnabledText   *TextConfig  `yaml:"enabled_text,omitempty"`
	DisabledText  *TextConfig  `yaml:"disabled_text,omitempty"`
	CurrentText   *TextConfig  `yaml:"current_text,omitempty"`
	CurrentShape  *ShapeConfig `yaml:"current_shape,omitempty"`
	SelectedText  *TextConfig  `yaml:"selected_text,omitempty"`
	SelectedShape *ShapeConfig `yaml:"selected_shape,omitempty"`
	LeadingLabel  *TextConfig  `yaml:"leading_label,omitempty"`
	NavColor      string       `yaml:"nav_color,omitempty" validate:"omitempty,hexcolor"`
	NavSize       int          `yaml:"nav_size,omitempty" validate:"omitempty,min=1,max=96"`
	Splash        string       `yaml:"splash,omitempty" validate:"omitempty,hexcolor"`
	Highlight     string       `yaml:"highlight,omitempty" validate:"omitempty,hexcolor"`
}

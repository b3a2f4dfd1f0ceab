// Package config loads the optional YAML file that configures the console,
// the theme and renderable defaults.
package config

// Config is the root of the configuration file.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Theme   ThemeConfig   `yaml:"theme"`
	Panel   PanelConfig   `yaml:"panel"`
	Syntax  SyntaxConfig  `yaml:"syntax"`
}

// ConsoleConfig overrides terminal detection.
type ConsoleConfig struct {
	// Width of zero asks the terminal.
	Width       int    `yaml:"width" validate:"min=0,max=1000"`
	Height      int    `yaml:"height" validate:"min=0,max=1000"`
	ColorSystem string `yaml:"color_system" validate:"omitempty,oneof=auto none standard 256 truecolor"`
}

// ThemeConfig layers colours and named styles over the default theme.
type ThemeConfig struct {
	// Primary seeds a generated palette.
	Primary string            `yaml:"primary" validate:"omitempty,color"`
	Palette map[string]string `yaml:"palette" validate:"dive,keys,style_name,endkeys,color"`
	Styles  map[string]string `yaml:"styles" validate:"dive,keys,style_name,endkeys,required"`
}

// PanelConfig sets panel defaults used by the CLI.
type PanelConfig struct {
	Box         string `yaml:"box" validate:"omitempty,box"`
	BorderStyle string `yaml:"border_style"`
}

// SyntaxConfig sets highlighting defaults used by the CLI.
type SyntaxConfig struct {
	Theme       string `yaml:"theme"`
	LineNumbers bool   `yaml:"line_numbers"`
}

package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// Modifier names accepted for the management chord.
const (
	ModifierMod1 = "mod1"
	ModifierMod4 = "mod4"
)

// Config holds the manager configuration.
type Config struct {
	// Display overrides $DISPLAY when set.
	Display string `yaml:"display,omitempty"`

	// Modifier is the held key for all management bindings: "mod1" (Alt)
	// or "mod4" (Super).
	Modifier string `yaml:"modifier"`

	// Frame appearance.
	BorderWidth     int    `yaml:"border_width"`
	BorderColor     uint32 `yaml:"border_color"`
	BackgroundColor uint32 `yaml:"background_color"`

	// ResizeStep is how far grow/shrink operations move an edge.
	ResizeStep int `yaml:"resize_step"`
	// MinWindowWidth is the width below which a window no longer yields
	// space to a directional operation.
	MinWindowWidth int `yaml:"min_window_width"`

	// LauncherCommand is spawned on modifier+Return.
	LauncherCommand string `yaml:"launcher_command"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Modifier:        ModifierMod1,
		BorderWidth:     3,
		BorderColor:     0xff0000,
		BackgroundColor: 0x0000ff,
		ResizeStep:      100,
		MinWindowWidth:  100,
		LauncherCommand: "rofi -show drun",
		LogLevel:        "info",
	}
}

// ValidationError reports an invalid config value with its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Modifier) {
	case ModifierMod1, ModifierMod4:
	default:
		return &ValidationError{Path: "modifier", Err: fmt.Errorf("modifier must be one of: mod1, mod4")}
	}
	if c.BorderWidth < 0 {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be >= 0")}
	}
	if c.ResizeStep <= 0 {
		return &ValidationError{Path: "resize_step", Err: fmt.Errorf("resize_step must be > 0")}
	}
	if c.MinWindowWidth <= 0 {
		return &ValidationError{Path: "min_window_width", Err: fmt.Errorf("min_window_width must be > 0")}
	}
	if strings.TrimSpace(c.LauncherCommand) == "" {
		return &ValidationError{Path: "launcher_command", Err: fmt.Errorf("launcher_command must not be empty")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// ModifierMask returns the X modifier mask for the configured chord key.
func (c *Config) ModifierMask() uint16 {
	if strings.ToLower(c.Modifier) == ModifierMod4 {
		return xproto.ModMask4
	}
	return xproto.ModMask1
}

// Package config holds application constants and the user settings loaded
// with Viper from the XDG config directory and WCL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ButtonTitles holds the action area captions.
type ButtonTitles struct {
	Today string `mapstructure:"today"`
	Reset string `mapstructure:"reset"`
	Done  string `mapstructure:"done"`
}

// Settings is the persisted user configuration.
type Settings struct {
	Locale         string       `mapstructure:"locale"`
	Theme          string       `mapstructure:"theme"`
	Range          bool         `mapstructure:"range"`
	Format         string       `mapstructure:"format"`
	Width          int          `mapstructure:"width"`
	Placeholder    string       `mapstructure:"placeholder"`
	StartTimeTitle string       `mapstructure:"start_time_title"`
	EndTimeTitle   string       `mapstructure:"end_time_title"`
	DisablePast    bool         `mapstructure:"disable_past"`
	Up             bool         `mapstructure:"up"`
	Buttons        ButtonTitles `mapstructure:"buttons"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "")
	v.SetDefault("theme", "default")
	v.SetDefault("range", false)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("width", DefaultInputWidth)
	v.SetDefault("placeholder", DefaultFormat)
	v.SetDefault("start_time_title", DefaultStartTimeTitle)
	v.SetDefault("end_time_title", DefaultEndTimeTitle)
	v.SetDefault("disable_past", false)
	v.SetDefault("up", false)
	v.SetDefault("buttons.today", DefaultTodayTitle)
	v.SetDefault("buttons.reset", DefaultResetTitle)
	v.SetDefault("buttons.done", DefaultDoneTitle)
}

// Load reads config.yml from Dir(). Environment variables take precedence
// over the file; a missing file is not an error.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())

	_ = v.BindEnv("locale", "WCL_LOCALE")
	_ = v.BindEnv("theme", "WCL_THEME")
	_ = v.BindEnv("range", "WCL_RANGE")
	_ = v.BindEnv("format", "WCL_FORMAT")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if s.Locale == "" {
		s.Locale = SystemLocale()
	}
	return &s, nil
}

// Write persists s to config.yml in Dir().
func Write(s *Settings) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("locale", s.Locale)
	v.Set("theme", s.Theme)
	v.Set("range", s.Range)
	v.Set("format", s.Format)
	v.Set("width", s.Width)
	v.Set("placeholder", s.Placeholder)
	v.Set("start_time_title", s.StartTimeTitle)
	v.Set("end_time_title", s.EndTimeTitle)
	v.Set("disable_past", s.DisablePast)
	v.Set("up", s.Up)
	v.Set("buttons.today", s.Buttons.Today)
	v.Set("buttons.reset", s.Buttons.Reset)
	v.Set("buttons.done", s.Buttons.Done)
	return v.WriteConfigAs(filepath.Join(dir, "config.yml"))
}

// Dir returns the XDG config directory for the application.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName)
}

// SystemLocale reads the POSIX locale environment, LC_ALL first.
func SystemLocale() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

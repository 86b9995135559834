package picker

import (
	"time"

	"github.com/akyairhashvil/wcl/internal/config"
)

// Config is everything that shapes a picker. ApplyConfig recomputes all
// derived state from it in one pass.
type Config struct {
	Locale string
	Range  bool
	// Width is the display width of the bound input, in cells.
	Width int
	// StartDate preselects a date; any format dateparse understands. Invalid
	// values are ignored.
	StartDate      string
	Placeholder    string
	StartTimeTitle string
	EndTimeTitle   string
	BtnToday       string
	BtnReset       string
	BtnDone        string
	Disabled       bool
	Required       bool
	// Up opens the calendar panel above the input.
	Up     bool
	Format string
	// DisablePast rejects days before today in single mode.
	DisablePast bool
	Theme       string
	Location    *time.Location
}

// DefaultConfig returns a single-date picker in the system locale.
func DefaultConfig() Config {
	return Config{
		Width:          config.DefaultInputWidth,
		Placeholder:    config.DefaultFormat,
		StartTimeTitle: config.DefaultStartTimeTitle,
		EndTimeTitle:   config.DefaultEndTimeTitle,
		BtnToday:       config.DefaultTodayTitle,
		BtnReset:       config.DefaultResetTitle,
		BtnDone:        config.DefaultDoneTitle,
		Format:         config.DefaultFormat,
		Theme:          "default",
	}
}

// FromSettings maps persisted user settings onto a picker config.
func FromSettings(s config.Settings) Config {
	cfg := DefaultConfig()
	cfg.Locale = s.Locale
	cfg.Range = s.Range
	cfg.DisablePast = s.DisablePast
	cfg.Up = s.Up
	if s.Width > 0 {
		cfg.Width = s.Width
	}
	if s.Format != "" {
		cfg.Format = s.Format
	}
	if s.Theme != "" {
		cfg.Theme = s.Theme
	}
	if s.Placeholder != "" {
		cfg.Placeholder = s.Placeholder
	}
	if s.StartTimeTitle != "" {
		cfg.StartTimeTitle = s.StartTimeTitle
	}
	if s.EndTimeTitle != "" {
		cfg.EndTimeTitle = s.EndTimeTitle
	}
	if s.Buttons.Today != "" {
		cfg.BtnToday = s.Buttons.Today
	}
	if s.Buttons.Reset != "" {
		cfg.BtnReset = s.Buttons.Reset
	}
	if s.Buttons.Done != "" {
		cfg.BtnDone = s.Buttons.Done
	}
	return cfg
}

func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = config.DefaultInputWidth
	}
	if c.Format == "" {
		c.Format = config.DefaultFormat
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
	return c
}

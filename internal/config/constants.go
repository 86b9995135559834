package config

// Application identity.
const (
	AppName     = "wcl"
	DBFileName  = "wcl.db"
	LogFileName = "wcl.log"
)

// DefaultFormat is the token pattern shown in the bound input.
const DefaultFormat = "DD/MM/YYYY"

// Time-of-day bounds.
const (
	MaxHours   = 23
	MaxMinutes = 59

	DefaultEndHours   = 23
	DefaultEndMinutes = 59
)

// Change notification names.
const (
	StartDateName = "startDate"
	EndDateName   = "endDate"
)

// Button ids inside the picker action area.
const (
	ResetButtonID = "reset-btn"
	TodayButtonID = "today-btn"
	DoneButtonID  = "done-btn"
)

// Default captions.
const (
	DefaultResetTitle     = "Reset"
	DefaultTodayTitle     = "Today"
	DefaultDoneTitle      = "Done"
	DefaultStartTimeTitle = "Start"
	DefaultEndTimeTitle   = "End"
)

// History.
const (
	DefaultHistoryLimit = 20
)

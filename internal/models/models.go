package models

import "time"

// PickName identifies which picker bound a pick came from.
type PickName string

const (
	PickStart PickName = "startDate"
	PickEnd   PickName = "endDate"
)

// Pick is one committed picker bound.
type Pick struct {
	ID   string
	Name PickName
	// Date is nil when the bound was committed without a selected day.
	Date       *time.Time
	RecordedAt time.Time
}

// HasDate reports whether the pick carries a date.
func (p Pick) HasDate() bool { return p.Date != nil }

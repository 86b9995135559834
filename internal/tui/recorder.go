package tui

import (
	"context"
	"time"
)

// Recorder receives every committed picker bound.
//
//go:generate mockgen -source=recorder.go -destination=mock_recorder_test.go -package=tui
type Recorder interface {
	RecordPick(ctx context.Context, name string, at *time.Time) error
}

package testutil

import (
	"time"

	"github.com/akyairhashvil/wcl/internal/models"
	"github.com/akyairhashvil/wcl/internal/util"
)

// PickBuilder provides fluent API for creating test picks.
type PickBuilder struct {
	pick models.Pick
}

func NewPick() *PickBuilder {
	return &PickBuilder{
		pick: models.Pick{
			Name:       models.PickStart,
			RecordedAt: time.Now().UTC(),
		},
	}
}

func (b *PickBuilder) WithID(id string) *PickBuilder {
	b.pick.ID = id
	return b
}

func (b *PickBuilder) WithName(n models.PickName) *PickBuilder {
	b.pick.Name = n
	return b
}

func (b *PickBuilder) WithDate(t time.Time) *PickBuilder {
	b.pick.Date = util.Ptr(t)
	return b
}

func (b *PickBuilder) RecordedAt(t time.Time) *PickBuilder {
	b.pick.RecordedAt = t
	return b
}

func (b *PickBuilder) Build() models.Pick {
	return b.pick
}

package picker

import (
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/util"
)

// TimeField names one of the four hour/minute fields.
type TimeField int

const (
	StartHours TimeField = iota
	StartMinutes
	EndHours
	EndMinutes
)

func (f TimeField) String() string {
	switch f {
	case StartHours:
		return "start-hours"
	case StartMinutes:
		return "start-minutes"
	case EndHours:
		return "end-hours"
	case EndMinutes:
		return "end-minutes"
	}
	return "unknown"
}

// Max is the inclusive upper bound of the field.
func (f TimeField) Max() int {
	if f == StartHours || f == EndHours {
		return config.MaxHours
	}
	return config.MaxMinutes
}

// fieldFor maps a focus position onto its time field.
func fieldFor(f Focus) (TimeField, bool) {
	switch f {
	case FocusStartHours:
		return StartHours, true
	case FocusStartMinutes:
		return StartMinutes, true
	case FocusEndHours:
		return EndHours, true
	case FocusEndMinutes:
		return EndMinutes, true
	}
	return 0, false
}

func (m *Model) timeRef(f TimeField) *int {
	switch f {
	case StartHours:
		return &m.startHours
	case StartMinutes:
		return &m.startMinutes
	case EndHours:
		return &m.endHours
	case EndMinutes:
		return &m.endMinutes
	}
	return nil
}

// HandleTimeKey applies a key to field and reports whether it was consumed.
// Fields are not typed into freely: up/down step with saturation, pgup and
// pgdown jump to the bounds, digits shift into a two-digit value and
// backspace zeroes the field.
func (m *Model) HandleTimeKey(field TimeField, key string) bool {
	if m.cfg.Disabled || m.timeDisabled || m.startDay == nil {
		return false
	}
	v := m.timeRef(field)
	if v == nil {
		return false
	}
	max := field.Max()
	switch key {
	case "up":
		*v = util.Clamp(*v+1, 0, max)
	case "down":
		*v = util.Clamp(*v-1, 0, max)
	case "pgup":
		*v = max
	case "pgdown":
		*v = 0
	case "backspace", "delete":
		*v = 0
	default:
		if len(key) != 1 || key[0] < '0' || key[0] > '9' {
			return false
		}
		digit := int(key[0] - '0')
		if next := (*v%10)*10 + digit; next <= max {
			*v = next
		} else {
			*v = digit
		}
	}
	return true
}

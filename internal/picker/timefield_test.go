package picker

import "testing"

func TestHandleTimeKey(t *testing.T) {
	tests := []struct {
		name    string
		field   TimeField
		start   int
		key     string
		want    int
		handled bool
	}{
		{"up increments", StartHours, 9, "up", 10, true},
		{"up saturates hours", StartHours, 23, "up", 23, true},
		{"up saturates minutes", EndMinutes, 59, "up", 59, true},
		{"down decrements", StartMinutes, 10, "down", 9, true},
		{"down saturates", EndHours, 0, "down", 0, true},
		{"pgup jumps to max hours", StartHours, 4, "pgup", 23, true},
		{"pgup jumps to max minutes", StartMinutes, 4, "pgup", 59, true},
		{"pgdown jumps to zero", EndMinutes, 40, "pgdown", 0, true},
		{"digit shifts in", StartHours, 1, "2", 12, true},
		{"digit drops tens", StartHours, 12, "3", 23, true},
		{"digit over bound falls back", StartHours, 2, "5", 5, true},
		{"minute digit", StartMinutes, 5, "9", 59, true},
		{"minute digit over bound", StartMinutes, 7, "5", 5, true},
		{"backspace zeroes", EndHours, 17, "backspace", 0, true},
		{"letters ignored", StartHours, 7, "x", 7, false},
		{"enter ignored", StartHours, 7, "enter", 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := rangePicker(t)
			m.SelectDay(june(10))
			*m.timeRef(tt.field) = tt.start
			if got := m.HandleTimeKey(tt.field, tt.key); got != tt.handled {
				t.Fatalf("handled = %v, want %v", got, tt.handled)
			}
			if got := m.Time(tt.field); got != tt.want {
				t.Fatalf("%s = %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

func TestHandleTimeKeyIgnoredWithoutSelection(t *testing.T) {
	m := rangePicker(t)
	before := m.Time(StartHours)
	if m.HandleTimeKey(StartHours, "up") {
		t.Fatalf("time keys should be ignored while time fields are disabled")
	}
	if m.Time(StartHours) != before {
		t.Fatalf("start hours changed to %d", m.Time(StartHours))
	}
}

func TestTimeFieldMax(t *testing.T) {
	if StartHours.Max() != 23 || EndHours.Max() != 23 {
		t.Fatalf("hour fields should cap at 23")
	}
	if StartMinutes.Max() != 59 || EndMinutes.Max() != 59 {
		t.Fatalf("minute fields should cap at 59")
	}
}

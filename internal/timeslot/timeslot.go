// Package timeslot models a weekly recurring meeting time as a
// day-of-week bitmask plus integer start/end values on the registrar's
// 10-minute clock. It is the leaf type everything conflict-related
// builds on.
package timeslot

// Day bits. Bit 0 is Monday, matching the registrar scraper's encoding.
const (
	Monday    = 1 << 0
	Tuesday   = 1 << 1
	Wednesday = 1 << 2
	Thursday  = 1 << 3
	Friday    = 1 << 4
	Saturday  = 1 << 5
	Sunday    = 1 << 6
)

// NullTime marks a section with no scheduled meeting time. Records
// carrying it are excluded before any overlap test runs.
const NullTime = -42

// TimeSlot is a weekly recurring interval. Days is a bitmask over the
// constants above; StartTime and EndTime are integers on a fixed
// granularity clock where only the total order matters.
//
// A slot with Days == 0 never meets and never overlaps anything.
type TimeSlot struct {
	Days      int `json:"days"`
	StartTime int `json:"startTime"`
	EndTime   int `json:"endTime"`
}

// Valid reports whether the slot can be scheduled at all: times must be
// present and form a non-empty interval. Days == 0 is still valid (the
// slot simply never meets).
func (t TimeSlot) Valid() bool {
	if t.StartTime == NullTime || t.EndTime == NullTime {
		return false
	}
	return t.StartTime >= 0 && t.StartTime < t.EndTime
}

// Overlaps reports whether a and b share at least one weekday and their
// time ranges intersect. Ranges are half-open: a slot ending exactly
// when another starts does not overlap it.
func Overlaps(a, b TimeSlot) bool {
	if a.Days&b.Days == 0 {
		return false
	}
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}

// dayBits maps lowercase weekday names to day bits. Custom events store
// their times keyed by weekday name; this is the single place that
// shape is translated into the bitmask the engine understands.
var dayBits = map[string]int{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// DayBit returns the bitmask bit for a lowercase weekday name, or 0 if
// the name is not a weekday.
func DayBit(name string) int {
	return dayBits[name]
}

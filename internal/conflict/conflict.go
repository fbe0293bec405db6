// Package conflict detects overlapping meetings within a schedule. It
// is pure: every query recomputes from the meetings it is handed and
// keeps no state between calls.
package conflict

import (
	"fmt"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

// Meeting is one weekly recurring occurrence of something a schedule
// contains: a course section or a custom event. Meetings are built
// fresh per request from store rows and discarded with the response.
type Meeting struct {
	OwnerID    string
	OwnerLabel string
	Slot       timeslot.TimeSlot
}

// Pair is a single detected conflict between two meetings, in input
// order (A appears before B in the checked list).
type Pair struct {
	A Meeting
	B Meeting
}

// String renders the pair the way the schedule UI shows it.
func (p Pair) String() string {
	return fmt.Sprintf("%s overlaps with %s", p.A.OwnerLabel, p.B.OwnerLabel)
}

// Report is the ordered list of conflicting pairs found in one pass.
// Ordering is stable: by first-meeting index, then second-meeting
// index, in input order.
type Report []Pair

// NoConflicts is the sentinel returned in place of an empty conflict
// list, matching the public API response shape.
const NoConflicts = "No conflicts detected"

// Strings formats every pair in order. An empty report yields the
// NoConflicts sentinel as its only element.
func (r Report) Strings() []string {
	if len(r) == 0 {
		return []string{NoConflicts}
	}
	out := make([]string, len(r))
	for i, p := range r {
		out[i] = p.String()
	}
	return out
}

// FindAllConflicts reports every unordered pair of meetings with
// distinct OwnerIDs whose slots overlap, in input order. Same-OwnerID
// pairs are excluded by contract: such meetings are expansions of one
// schedule item (a multi-interval custom event), and an item does not
// conflict with itself. Quadratic, which is fine: a schedule holds at
// most a few dozen meetings.
func FindAllConflicts(meetings []Meeting) Report {
	var report Report
	for i := 0; i < len(meetings); i++ {
		for j := i + 1; j < len(meetings); j++ {
			if meetings[i].OwnerID == meetings[j].OwnerID {
				continue
			}
			if timeslot.Overlaps(meetings[i].Slot, meetings[j].Slot) {
				report = append(report, Pair{A: meetings[i], B: meetings[j]})
			}
		}
	}
	return report
}

// Fits reports whether none of the candidate slots overlaps any
// occupied slot. Candidate slots are not checked against each other;
// that is the caller's concern when a candidate course has multiple
// required section types.
func Fits(candidate, occupied []timeslot.TimeSlot) bool {
	for _, c := range candidate {
		for _, o := range occupied {
			if timeslot.Overlaps(c, o) {
				return false
			}
		}
	}
	return true
}

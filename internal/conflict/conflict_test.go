package conflict

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

func meeting(id, label string, days, start, end int) Meeting {
	return Meeting{
		OwnerID:    id,
		OwnerLabel: label,
		Slot:       timeslot.TimeSlot{Days: days, StartTime: start, EndTime: end},
	}
}

func TestFindAllConflictsSingleMeeting(t *testing.T) {
	report := FindAllConflicts([]Meeting{
		meeting("1", "COS126 (Lecture)", timeslot.Monday, 100, 200),
	})
	assert.Empty(t, report)
}

func TestFindAllConflictsPairCount(t *testing.T) {
	// n mutually overlapping meetings produce exactly n*(n-1)/2 pairs.
	for _, n := range []int{2, 3, 5, 8} {
		var meetings []Meeting
		for i := 0; i < n; i++ {
			meetings = append(meetings, meeting(fmt.Sprint(i), fmt.Sprintf("M%d", i), timeslot.Monday, 100, 200))
		}
		report := FindAllConflicts(meetings)
		assert.Len(t, report, n*(n-1)/2, "n=%d", n)
	}
}

func TestFindAllConflictsOrdering(t *testing.T) {
	a := meeting("a", "A", timeslot.Monday, 100, 200)
	b := meeting("b", "B", timeslot.Monday, 150, 250)
	c := meeting("c", "C", timeslot.Monday, 180, 300)

	report := FindAllConflicts([]Meeting{a, b, c})
	if assert.Len(t, report, 3) {
		// Pairs come out by first index, then second, in input order.
		assert.Equal(t, "A", report[0].A.OwnerLabel)
		assert.Equal(t, "B", report[0].B.OwnerLabel)
		assert.Equal(t, "A", report[1].A.OwnerLabel)
		assert.Equal(t, "C", report[1].B.OwnerLabel)
		assert.Equal(t, "B", report[2].A.OwnerLabel)
		assert.Equal(t, "C", report[2].B.OwnerLabel)
	}

	// Same input, same output.
	assert.Equal(t, report, FindAllConflicts([]Meeting{a, b, c}))
}

func TestFindAllConflictsScenario(t *testing.T) {
	// COS226 lecture Wed and precept Mon do not conflict; a MAT202
	// lecture overlapping the COS226 lecture on Wed does.
	lecture := meeting("1", "COS226 (Lecture)", timeslot.Wednesday, 120, 180)
	precept := meeting("2", "COS226 (Precept)", timeslot.Monday, 60, 120)

	assert.Empty(t, FindAllConflicts([]Meeting{lecture, precept}))

	mat := meeting("3", "MAT202 (Lecture)", timeslot.Wednesday, 150, 210)
	report := FindAllConflicts([]Meeting{lecture, precept, mat})
	if assert.Len(t, report, 1) {
		assert.Equal(t, "COS226 (Lecture)", report[0].A.OwnerLabel)
		assert.Equal(t, "MAT202 (Lecture)", report[0].B.OwnerLabel)
		assert.Equal(t, "COS226 (Lecture) overlaps with MAT202 (Lecture)", report[0].String())
	}
}

func TestFindAllConflictsSkipsSameOwner(t *testing.T) {
	// Two intervals of the same custom event overlap; that is not a
	// conflict, just a repeated block.
	report := FindAllConflicts([]Meeting{
		meeting("event-9", "Orchestra", timeslot.Tuesday, 60, 120),
		meeting("event-9", "Orchestra", timeslot.Tuesday, 90, 150),
	})
	assert.Empty(t, report)
}

func TestReportStrings(t *testing.T) {
	assert.Equal(t, []string{NoConflicts}, Report(nil).Strings())

	report := Report{{
		A: meeting("1", "COS226 (Lecture)", timeslot.Wednesday, 120, 180),
		B: meeting("3", "MAT202 (Lecture)", timeslot.Wednesday, 150, 210),
	}}
	assert.Equal(t, []string{"COS226 (Lecture) overlaps with MAT202 (Lecture)"}, report.Strings())
}

func TestFitsEmptyOccupied(t *testing.T) {
	candidate := []timeslot.TimeSlot{
		{Days: timeslot.Monday, StartTime: 100, EndTime: 200},
		{Days: timeslot.Friday, StartTime: 0, EndTime: 500},
	}
	assert.True(t, Fits(candidate, nil))
	assert.True(t, Fits(nil, nil))
}

func TestFits(t *testing.T) {
	occupied := []timeslot.TimeSlot{
		{Days: timeslot.Monday | timeslot.Wednesday, StartTime: 100, EndTime: 200},
		{Days: timeslot.Friday, StartTime: 300, EndTime: 400},
	}

	assert.True(t, Fits([]timeslot.TimeSlot{
		{Days: timeslot.Tuesday, StartTime: 100, EndTime: 200},
		{Days: timeslot.Friday, StartTime: 400, EndTime: 500},
	}, occupied))

	assert.False(t, Fits([]timeslot.TimeSlot{
		{Days: timeslot.Wednesday, StartTime: 150, EndTime: 250},
	}, occupied))
}

// Fits must agree with FindAllConflicts: a candidate fits exactly when
// no conflict pair spans the candidate/occupied groups.
func TestFitsAgreesWithFindAllConflicts(t *testing.T) {
	slots := []timeslot.TimeSlot{
		{Days: timeslot.Monday, StartTime: 0, EndTime: 60},
		{Days: timeslot.Monday, StartTime: 30, EndTime: 90},
		{Days: timeslot.Tuesday, StartTime: 0, EndTime: 60},
		{Days: timeslot.Monday | timeslot.Tuesday, StartTime: 50, EndTime: 120},
	}

	for split := 0; split <= len(slots); split++ {
		candidate, occupied := slots[:split], slots[split:]

		var meetings []Meeting
		for i, s := range candidate {
			meetings = append(meetings, Meeting{OwnerID: fmt.Sprintf("cand-%d", i), Slot: s})
		}
		for i, s := range occupied {
			meetings = append(meetings, Meeting{OwnerID: fmt.Sprintf("occ-%d", i), Slot: s})
		}

		crossPair := false
		for _, p := range FindAllConflicts(meetings) {
			aCand := len(p.A.OwnerID) > 4 && p.A.OwnerID[:4] == "cand"
			bCand := len(p.B.OwnerID) > 4 && p.B.OwnerID[:4] == "cand"
			if aCand != bCand {
				crossPair = true
			}
		}

		assert.Equal(t, !crossPair, Fits(candidate, occupied), "split=%d", split)
	}
}

package registrar

import (
	"strconv"
	"strings"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

// Time encoding: registrar clock values are 10-minute units offset
// from 8:00 AM, so 8:00 AM -> 0, 9:30 AM -> 9, 1:00 PM -> 30.
const (
	hourFactor = 6
	zeroAdjust = 48
)

// DaysToValue converts the registrar's day abbreviation list into the
// weekday bitmask sections are stored with.
func DaysToValue(days []string) int {
	value := 0
	for _, d := range days {
		switch d {
		case "M":
			value |= timeslot.Monday
		case "T":
			value |= timeslot.Tuesday
		case "W":
			value |= timeslot.Wednesday
		case "Th":
			value |= timeslot.Thursday
		case "F":
			value |= timeslot.Friday
		case "Sa":
			value |= timeslot.Saturday
		case "Su":
			value |= timeslot.Sunday
		}
	}
	return value
}

// TimeToValue converts a registrar "H:MM AM" string onto the integer
// clock. Missing or unparseable times map to timeslot.NullTime so the
// section is treated as unscheduled rather than zero-length.
func TimeToValue(t string) int {
	parts := strings.Fields(t)
	if len(parts) == 0 {
		return timeslot.NullTime
	}

	dig := strings.Split(parts[0], ":")
	if len(dig) != 2 {
		return timeslot.NullTime
	}
	hour, err := strconv.Atoi(dig[0])
	if err != nil {
		return timeslot.NullTime
	}
	minute, err := strconv.Atoi(dig[1])
	if err != nil {
		return timeslot.NullTime
	}

	// 12 AM is hour 0; 12 PM gains the PM offset below.
	if hour == 12 {
		hour = 0
	}

	val := hour*hourFactor + minute/10 - zeroAdjust
	if len(parts) > 1 && strings.EqualFold(parts[1], "PM") {
		val += 12 * hourFactor
	}
	return val
}

// FormatCourseStatus rolls section statuses up to a course status: all
// canceled -> canceled; every section type with at least one open
// section -> open; anything else -> closed.
func FormatCourseStatus(classes []Class) string {
	allCanceled := true
	sectionMap := map[string]bool{}

	for _, class := range classes {
		if class.PuCalcStatus != "Canceled" {
			allCanceled = false
		}
		if class.PuCalcStatus == "Open" {
			sectionMap[class.TypeName] = true
		} else if !sectionMap[class.TypeName] {
			sectionMap[class.TypeName] = false
		}
	}

	if allCanceled {
		return domain.StatusCanceled
	}
	for _, open := range sectionMap {
		if !open {
			return domain.StatusClosed
		}
	}
	return domain.StatusOpen
}

// FormatSectionStatus maps the registrar's per-class status onto ours.
func FormatSectionStatus(puCalcStatus string) string {
	switch puCalcStatus {
	case "Open":
		return domain.StatusOpen
	case "Canceled":
		return domain.StatusCanceled
	default:
		return domain.StatusClosed
	}
}

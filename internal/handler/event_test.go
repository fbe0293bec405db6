package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

func TestValidateTimes(t *testing.T) {
	assert.Equal(t, "", validateTimes(domain.EventTimes{
		"monday": {{Start: 6, End: 12}},
		"friday": {{Start: 0, End: 3}, {Start: 60, End: 66}},
	}))

	assert.Equal(t, "unknown weekday: funday", validateTimes(domain.EventTimes{
		"funday": {{Start: 6, End: 12}},
	}))

	assert.Equal(t, "invalid interval on monday", validateTimes(domain.EventTimes{
		"monday": {{Start: 12, End: 6}},
	}))

	assert.Equal(t, "invalid interval on monday", validateTimes(domain.EventTimes{
		"monday": {{Start: -1, End: 6}},
	}))

	// Empty maps are fine; the event simply never meets.
	assert.Equal(t, "", validateTimes(domain.EventTimes{}))
}

package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMilestonesExactValuesOnly(t *testing.T) {
	assert.Empty(t, DetectMilestones(1, 1, 1))
	assert.Empty(t, DetectMilestones(4, 8, 11), "values past a milestone do not re-trigger it")

	assert.Contains(t, DetectMilestones(3, 4, 3), "3-day streak")
	assert.Contains(t, DetectMilestones(2, 7, 5), "Week one")
	assert.Contains(t, DetectMilestones(2, 9, 10), "10 days")
}

func TestDetectMilestonesJoinsSimultaneousMatches(t *testing.T) {
	got := DetectMilestones(7, 7, 10)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "7 days in a row")
	assert.Contains(t, lines[1], "Week one")
	assert.Contains(t, lines[2], "10 days")
}

func TestDetectMilestonesFinalDay(t *testing.T) {
	got := DetectMilestones(21, 21, 21)
	assert.Contains(t, got, "21-day streak")
	assert.Contains(t, got, "Day 21")
}

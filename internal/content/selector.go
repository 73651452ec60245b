package content

import (
	"fmt"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// DailyContent is everything shown to a user for one program day.
// It is recomputed on every request and never persisted.
type DailyContent struct {
	Goal          models.Goal
	Checklist     []string
	Tip           string
	Quote         string
	JournalPrompt string
	Focus         string
}

// Program phases gate which goals take priority over the day rotation.
// Early days emphasize foundational habits regardless of rotation; later
// days surface the more advanced goals.
var phasePriorities = []struct {
	lastDay int
	goals   []models.Goal
}{
	{7, []models.Goal{models.GoalSleep, models.GoalStress, models.GoalDigestion}},
	{14, []models.Goal{models.GoalEnergy, models.GoalImmunity, models.GoalSpiritual}},
	{21, []models.Goal{models.GoalAnxiety, models.GoalHormonal, models.GoalSpiritual}},
}

// Select deterministically picks today's checklist, tip, quote, journal
// prompt and focus label for the given tags and program day. The caller is
// responsible for clamping day to 1..21.
func Select(tags models.GoalTagSet, day int) DailyContent {
	active := tags.Active()

	goal := active[mod(day, len(active))]
	goal = phaseOverride(tags, day, goal)

	table, ok := goalTables()[goal]
	if !ok {
		// Defensive: a closed tag enum should make this unreachable.
		goal = models.GoalGeneral
		table = goalTables()[goal]
	}

	checklist := make([]string, len(table.Checklist))
	copy(checklist, table.Checklist)

	return DailyContent{
		Goal:          goal,
		Checklist:     checklist,
		Tip:           table.Tips[mod(day, len(table.Tips))],
		Quote:         table.Quotes[mod(day, len(table.Quotes))],
		JournalPrompt: table.JournalPrompts[mod(day, len(table.JournalPrompts))],
		Focus:         fmt.Sprintf("Day %d - %s", day, table.Focus),
	}
}

// phaseOverride replaces the rotation default with the first phase-priority
// goal the user actually has active.
func phaseOverride(tags models.GoalTagSet, day int, fallback models.Goal) models.Goal {
	for _, phase := range phasePriorities {
		if day > phase.lastDay {
			continue
		}
		for _, g := range phase.goals {
			if tags.Has(g) {
				return g
			}
		}
		return fallback
	}
	return fallback
}

func mod(day, n int) int {
	if n <= 0 {
		return 0
	}
	m := day % n
	if m < 0 {
		m += n
	}
	return m
}

package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

func TestParseReminderHour(t *testing.T) {
	cases := []struct {
		input string
		hour  int
		ok    bool
	}{
		{"8", 8, true},
		{"08", 8, true},
		{" 19:30 ", 19, true},
		{"19.45", 19, true},
		{"0", 0, true},
		{"23", 23, true},
		{"24", 0, false},
		{"-1", 0, false},
		{"evening", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		hour, ok := parseReminderHour(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.hour, hour, "input %q", tc.input)
		}
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 10), progressBar(0, 21))
	assert.Equal(t, strings.Repeat("▓", 10), progressBar(21, 21))
	assert.Equal(t, strings.Repeat("▓", 10), progressBar(30, 21))

	half := progressBar(11, 21)
	assert.Equal(t, 10, len([]rune(half)))
	assert.True(t, strings.HasPrefix(half, "▓"))
	assert.True(t, strings.HasSuffix(half, "░"))
}

func TestSnippet(t *testing.T) {
	short := "slept well, almost no tea cravings"
	assert.Equal(t, short, snippet("  "+short+"  "))

	long := strings.Repeat("reflection ", 40)
	s := snippet(long)
	assert.True(t, strings.HasSuffix(s, "…"))
	assert.LessOrEqual(t, len(s), 170)
}

func TestChecklistMarkup(t *testing.T) {
	items := models.NewChecklistItems()
	items[models.ItemHerbalTea] = true

	markup := checklistMarkup(items)
	assert.Len(t, markup.InlineKeyboard, len(models.ChecklistOrder))

	for i, item := range models.ChecklistOrder {
		row := markup.InlineKeyboard[i]
		assert.Len(t, row, 1)
		btn := row[0]
		assert.Equal(t, string(item), btn.Data)
		if item == models.ItemHerbalTea {
			assert.True(t, strings.HasPrefix(btn.Text, "✅"))
		} else {
			assert.True(t, strings.HasPrefix(btn.Text, "☐"))
		}
	}
}

func TestTodayTextShowsCompletionAndStreak(t *testing.T) {
	items := models.NewChecklistItems()
	items[models.ItemWarmWater] = true
	items[models.ItemEarlySleep] = true

	daily := content.Select(models.GoalTagSet{models.GoalSleep: true}, 3)
	text := todayText(daily, items, 3)

	assert.Contains(t, text, daily.Focus)
	assert.Contains(t, text, daily.Tip)
	assert.Contains(t, text, "(2/5)")
	assert.Contains(t, text, "Streak: 3 days")

	// Streak line hidden on the first day back.
	text = todayText(daily, items, 1)
	assert.NotContains(t, text, "Streak:")
}

func TestGoalLabelCoversAllGoals(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range models.AllGoals {
		label := goalLabel(g)
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], "duplicate label for %s", g)
		seen[label] = true
	}
}

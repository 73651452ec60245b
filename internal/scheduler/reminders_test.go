package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

func TestReminderTextUsesNameAndFocus(t *testing.T) {
	u := &models.User{
		FirstName:     "Amina",
		CurrentDay:    3,
		CurrentStreak: 2,
		GoalTags:      models.GoalTagSet{models.GoalSleep: true},
	}

	text := reminderText(u)
	assert.Contains(t, text, "Amina")
	assert.Contains(t, text, "Day 3")
	assert.Contains(t, text, "2-day streak")
	assert.Contains(t, text, "/checklist")
}

func TestReminderTextFallsBackWithoutName(t *testing.T) {
	u := &models.User{CurrentDay: 1, GoalTags: models.GoalTagSet{}}

	text := reminderText(u)
	assert.Contains(t, text, "Hey there")
}

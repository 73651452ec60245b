package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalTagSetActiveIsSortedAndStable(t *testing.T) {
	tags := GoalTagSet{GoalStress: true, GoalAnxiety: true, GoalSleep: false}
	assert.Equal(t, []Goal{GoalAnxiety, GoalStress}, tags.Active())
}

func TestGoalTagSetActiveFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, []Goal{GoalGeneral}, GoalTagSet{}.Active())
	assert.Equal(t, []Goal{GoalGeneral}, GoalTagSet{GoalSleep: false}.Active())
}

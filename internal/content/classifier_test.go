package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

func TestClassifyMatchesMultipleGoals(t *testing.T) {
	tags := Classify("I can't sleep and feel so stressed")

	assert.True(t, tags.Has(models.GoalSleep))
	assert.True(t, tags.Has(models.GoalStress))
}

func TestClassifyAlwaysReturnsAtLeastOneFlag(t *testing.T) {
	for _, input := range []string{"", "   ", "qwrtzzz", "42", "the weather is nice"} {
		tags := Classify(input)
		assert.NotEmpty(t, tags.Active(), "input %q", input)
	}
}

func TestClassifyFallsBackToGeneral(t *testing.T) {
	tags := Classify("xyzzy")
	assert.Equal(t, []models.Goal{models.GoalGeneral}, tags.Active())
}

func TestClassifyCrossCategoryInference(t *testing.T) {
	tests := []struct {
		input string
		want  []models.Goal
	}{
		{"my skin keeps breaking out with acne", []models.Goal{models.GoalDigestion, models.GoalImmunity}},
		{"I want to lose weight", []models.Goal{models.GoalDigestion, models.GoalEnergy}},
		{"constant back pain", []models.Goal{models.GoalStress}},
		{"I have no focus at work", []models.Goal{models.GoalEnergy, models.GoalStress}},
	}
	for _, tt := range tests {
		tags := Classify(tt.input)
		for _, g := range tt.want {
			assert.True(t, tags.Has(g), "input %q should activate %s", tt.input, g)
		}
	}
}

func TestClassifyWholeWordBonus(t *testing.T) {
	// "rest" inside "restaurant" scores 1.0; as a standalone word it gets
	// the extra 0.5. Both clear the threshold, both activate sleep.
	assert.True(t, Classify("we went to a restaurant").Has(models.GoalSleep))
	assert.True(t, Classify("I need more rest").Has(models.GoalSleep))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	tags := Classify("INSOMNIA is ruining my life")
	assert.True(t, tags.Has(models.GoalSleep))
}

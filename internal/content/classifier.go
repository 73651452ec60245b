package content

import (
	"strings"
	"unicode"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// goalPatterns maps each goal to the keyword patterns that hint at it.
// Matching is substring-based with a whole-word bonus, see Classify.
var goalPatterns = map[models.Goal][]string{
	models.GoalSleep: {
		"sleep", "insomnia", "bedtime", "can't sleep", "cant sleep",
		"tired at night", "rest", "wake up", "nightmare", "snore",
	},
	models.GoalStress: {
		"stress", "stressed", "overwhelm", "pressure", "burnout",
		"tension", "tense", "relax", "busy", "deadline",
	},
	models.GoalDigestion: {
		"digest", "bloat", "stomach", "gut", "constipat",
		"nausea", "heartburn", "ibs", "appetite", "indigestion",
	},
	models.GoalEnergy: {
		"energy", "fatigue", "exhausted", "tired", "sluggish",
		"drained", "lethargic", "motivation", "vitality",
	},
	models.GoalSpiritual: {
		"spiritual", "meaning", "purpose", "faith", "prayer",
		"meditat", "soul", "mindful", "gratitude", "inner peace",
	},
	models.GoalImmunity: {
		"immune", "immunity", "sick", "cold", "flu",
		"infection", "allergy", "allergies", "inflammation",
	},
	models.GoalAnxiety: {
		"anxiety", "anxious", "panic", "worry", "worried",
		"nervous", "fear", "racing thoughts", "overthink",
	},
	models.GoalHormonal: {
		"hormone", "hormonal", "thyroid", "pms", "cycle",
		"period", "menopause", "cortisol", "libido",
	},
	models.GoalGeneral: {
		"health", "healthy", "wellness", "healing", "better", "improve",
	},
}

// inferenceRules lists fixed cross-category activations applied after
// scoring: a trigger substring lights up goals its category implies.
var inferenceRules = []struct {
	triggers []string
	goals    []models.Goal
}{
	{[]string{"skin", "acne", "rash"}, []models.Goal{models.GoalDigestion, models.GoalImmunity}},
	{[]string{"weight", "diet"}, []models.Goal{models.GoalDigestion, models.GoalEnergy}},
	{[]string{"pain", "ache"}, []models.Goal{models.GoalStress}},
	{[]string{"focus", "concentration"}, []models.Goal{models.GoalEnergy, models.GoalStress}},
}

const activationThreshold = 0.5

// Classify maps free-text user input to a goal tag set. Any input is
// accepted; when nothing scores above the threshold the general goal is
// activated so the result always has at least one flag.
func Classify(input string) models.GoalTagSet {
	text := strings.ToLower(input)

	scores := make(map[models.Goal]float64, len(goalPatterns))
	for goal, patterns := range goalPatterns {
		for _, pattern := range patterns {
			if !strings.Contains(text, pattern) {
				continue
			}
			scores[goal] += 1.0
			if containsWord(text, pattern) {
				scores[goal] += 0.5
			}
		}
	}

	tags := make(models.GoalTagSet)
	for goal, score := range scores {
		if score >= activationThreshold {
			tags[goal] = true
		}
	}

	for _, rule := range inferenceRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(text, trigger) {
				for _, goal := range rule.goals {
					tags[goal] = true
				}
				break
			}
		}
	}

	if len(tags) == 0 {
		tags[models.GoalGeneral] = true
	}
	return tags
}

// containsWord reports whether pattern occurs in text bounded by
// non-letter-digit runes or the string edges.
func containsWord(text, pattern string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], pattern)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(pattern)
		leftOK := idx == 0 || isBoundary(rune(text[idx-1]))
		rightOK := end == len(text) || isBoundary(rune(text[end]))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(text) {
			return false
		}
	}
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

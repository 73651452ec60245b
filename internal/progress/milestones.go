package progress

import "strings"

// Fixed celebratory messages keyed by the exact post-update counter values.
var (
	streakMilestones = map[int]string{
		3:  "🔥 3-day streak! Your healing rhythm is taking root.",
		7:  "🌟 7 days in a row! One full week of steady practice.",
		14: "💪 14-day streak! Two unbroken weeks — remarkable discipline.",
		21: "🏆 21-day streak! You completed the entire journey without missing a day.",
	}
	dayMilestones = map[int]string{
		7:  "✨ Week one complete! The foundation phase is behind you.",
		14: "🌿 Week two complete! The deepening phase is done.",
		21: "🎉 Day 21 — the program is complete. Honor how far you have come.",
	}
	totalMilestones = map[int]string{
		10: "📿 10 days of practice recorded on your journey.",
		15: "🕊 15 days of practice — your dedication is showing.",
		20: "🌙 20 days of practice. One more to complete the program.",
	}
)

// DetectMilestones returns the celebratory messages triggered by the
// post-update counters, joined with newlines. An empty string means no
// milestone was crossed.
func DetectMilestones(streak, day, totalDays int) string {
	var msgs []string
	if m, ok := streakMilestones[streak]; ok {
		msgs = append(msgs, m)
	}
	if m, ok := dayMilestones[day]; ok {
		msgs = append(msgs, m)
	}
	if m, ok := totalMilestones[totalDays]; ok {
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "\n")
}

// Package progress implements the daily progress/streak state machine for
// the 21-day program. All functions here are pure: persistence and locking
// belong to the service layer.
package progress

import (
	"math"
	"time"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// Result reports what one daily update changed.
type Result struct {
	StreakUpdated  bool
	DayIncremented bool
	NewStreak      int
	NewDay         int
	Milestone      string
}

// UpdateDailyProgress advances the user's day/streak/score for the given
// calendar day and keeps the progress record in sync. It mutates both
// arguments and is idempotent for repeated calls with the same day.
func UpdateDailyProgress(user *models.User, rec *models.ProgressTracking, today time.Time) Result {
	todayStr := today.Format(models.DateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(models.DateLayout)

	res := Result{}

	switch {
	case user.LastChecklistDate == todayStr:
		// Same day: counters untouched, derived scores still recomputed below.

	case user.LastChecklistDate == "":
		// First ever engagement: initialize defaults without consuming a
		// day transition. Total still counts the day, matching every other
		// date-change path.
		if user.CurrentStreak == 0 {
			user.CurrentStreak = 1
		}
		if user.CurrentDay == 0 {
			user.CurrentDay = 1
		}
		user.TotalDaysCompleted++
		user.LastChecklistDate = todayStr

	case user.LastChecklistDate == yesterdayStr:
		user.CurrentStreak++
		user.CurrentDay = minInt(user.CurrentDay+1, models.ProgramLength)
		user.TotalDaysCompleted++
		user.LastChecklistDate = todayStr
		res.StreakUpdated = true
		res.DayIncremented = true

	default:
		// Gap day: streak restarts at 1 (today's engagement counts as day
		// one of a new streak), the program day still advances.
		user.CurrentStreak = 1
		user.CurrentDay = minInt(user.CurrentDay+1, models.ProgramLength)
		user.TotalDaysCompleted++
		user.LastChecklistDate = todayStr
		res.StreakUpdated = true
		res.DayIncremented = true
	}

	rec.CurrentStreak = user.CurrentStreak
	rec.TotalDaysCompleted = user.TotalDaysCompleted
	rec.LastActiveDate = user.LastChecklistDate
	if user.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = user.CurrentStreak
	}
	rec.CompletionRate = completionRate(user.TotalDaysCompleted)
	rec.HealingScore = healingScore(user.CurrentStreak, rec.CompletionRate, user.TotalDaysCompleted)

	res.NewStreak = user.CurrentStreak
	res.NewDay = user.CurrentDay
	res.Milestone = DetectMilestones(user.CurrentStreak, user.CurrentDay, user.TotalDaysCompleted)
	return res
}

// completionRate is the share of the 21-day program completed, in percent.
// Totals beyond 21 push the rate past 100; re-runs of the program keep the
// reward, so the value is intentionally unclamped.
func completionRate(totalDays int) int {
	return int(math.Round(float64(totalDays) / float64(models.ProgramLength) * 100))
}

// healingScore is the gamification metric derived from the counters.
func healingScore(streak, rate, totalDays int) int {
	return int(math.Round(float64(streak)*10 + float64(rate)*0.5 + float64(totalDays)*2))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

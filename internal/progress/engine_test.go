package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConsecutiveDayAdvancesStreakAndDay(t *testing.T) {
	user := &models.User{
		CurrentDay:        5,
		CurrentStreak:     2,
		LastChecklistDate: "2024-01-01",
	}
	rec := &models.ProgressTracking{LongestStreak: 2}

	res := UpdateDailyProgress(user, rec, day("2024-01-02"))

	assert.True(t, res.StreakUpdated)
	assert.True(t, res.DayIncremented)
	assert.Equal(t, 3, user.CurrentStreak)
	assert.Equal(t, 6, user.CurrentDay)
	assert.Equal(t, 1, user.TotalDaysCompleted)
	assert.Equal(t, "2024-01-02", user.LastChecklistDate)
	assert.Contains(t, res.Milestone, "3-day streak")
}

func TestGapDayResetsStreakButAdvancesDay(t *testing.T) {
	user := &models.User{
		CurrentDay:        5,
		CurrentStreak:     2,
		LastChecklistDate: "2024-01-01",
	}
	rec := &models.ProgressTracking{LongestStreak: 2}

	res := UpdateDailyProgress(user, rec, day("2024-01-05"))

	assert.Equal(t, 1, user.CurrentStreak, "streak resets to 1, not 0")
	assert.Equal(t, 6, user.CurrentDay, "day still advances after a gap")
	assert.Equal(t, 1, user.TotalDaysCompleted)
	assert.Empty(t, res.Milestone)
	assert.Equal(t, 2, rec.LongestStreak, "high-water mark survives the reset")
}

func TestSameDayCallIsIdempotent(t *testing.T) {
	user := &models.User{
		CurrentDay:        5,
		CurrentStreak:     2,
		LastChecklistDate: "2024-01-01",
	}
	rec := &models.ProgressTracking{}

	today := day("2024-01-02")
	UpdateDailyProgress(user, rec, today)
	streak, dayNo, total := user.CurrentStreak, user.CurrentDay, user.TotalDaysCompleted

	res := UpdateDailyProgress(user, rec, today)

	assert.False(t, res.StreakUpdated)
	assert.False(t, res.DayIncremented)
	assert.Equal(t, streak, user.CurrentStreak)
	assert.Equal(t, dayNo, user.CurrentDay)
	assert.Equal(t, total, user.TotalDaysCompleted)
	assert.Equal(t, rec.CurrentStreak, user.CurrentStreak, "derived fields still recomputed")
}

func TestFirstEverCallInitializesAndCountsTheDay(t *testing.T) {
	user := &models.User{}
	rec := &models.ProgressTracking{}

	res := UpdateDailyProgress(user, rec, day("2024-03-10"))

	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, 1, user.CurrentDay)
	assert.Equal(t, 1, user.TotalDaysCompleted, "day one counts immediately")
	assert.Equal(t, "2024-03-10", user.LastChecklistDate)
	assert.False(t, res.DayIncremented)
	assert.Equal(t, 1, rec.LongestStreak)
}

func TestDaySaturatesAtProgramLength(t *testing.T) {
	user := &models.User{
		CurrentDay:        20,
		CurrentStreak:     19,
		LastChecklistDate: "2024-01-20",
	}
	rec := &models.ProgressTracking{LongestStreak: 19}

	UpdateDailyProgress(user, rec, day("2024-01-21"))
	require.Equal(t, 21, user.CurrentDay)

	UpdateDailyProgress(user, rec, day("2024-01-22"))
	assert.Equal(t, 21, user.CurrentDay, "day never exceeds 21")
	assert.Equal(t, 21, user.CurrentStreak, "streak keeps incrementing past saturation")
	assert.Equal(t, 2, user.TotalDaysCompleted, "total keeps incrementing past saturation")
}

func TestLongConsecutiveRunHoldsInvariants(t *testing.T) {
	user := &models.User{}
	rec := &models.ProgressTracking{}

	start := day("2024-01-01")
	prevTotal := 0
	for i := 0; i < 40; i++ {
		UpdateDailyProgress(user, rec, start.AddDate(0, 0, i))

		require.LessOrEqual(t, user.CurrentDay, models.ProgramLength)
		require.Greater(t, user.CurrentStreak, 0)
		require.Equal(t, prevTotal+1, user.TotalDaysCompleted, "total grows by exactly 1 per distinct day")
		require.GreaterOrEqual(t, rec.LongestStreak, user.CurrentStreak)
		prevTotal = user.TotalDaysCompleted
	}
}

func TestCompletionRateIsUnclampedAbove100(t *testing.T) {
	user := &models.User{
		CurrentDay:         21,
		CurrentStreak:      1,
		TotalDaysCompleted: 24,
		LastChecklistDate:  "2024-02-01",
	}
	rec := &models.ProgressTracking{}

	UpdateDailyProgress(user, rec, day("2024-02-02"))

	assert.Equal(t, 25, user.TotalDaysCompleted)
	assert.Equal(t, 119, rec.CompletionRate, "round(25/21*100)")
	assert.Greater(t, rec.CompletionRate, 100)
}

func TestHealingScoreFormula(t *testing.T) {
	user := &models.User{
		CurrentDay:         6,
		CurrentStreak:      2,
		TotalDaysCompleted: 4,
		LastChecklistDate:  "2024-01-04",
	}
	rec := &models.ProgressTracking{LongestStreak: 2}

	UpdateDailyProgress(user, rec, day("2024-01-05"))

	// streak=3, total=5, rate=round(5/21*100)=24, score=round(30+12+10)=52
	assert.Equal(t, 24, rec.CompletionRate)
	assert.Equal(t, 52, rec.HealingScore)
}

func TestStreakNeverDecrementsToZero(t *testing.T) {
	user := &models.User{
		CurrentDay:        10,
		CurrentStreak:     9,
		LastChecklistDate: "2024-01-10",
	}
	rec := &models.ProgressTracking{LongestStreak: 9}

	UpdateDailyProgress(user, rec, day("2024-01-20"))
	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, 9, rec.LongestStreak)
}

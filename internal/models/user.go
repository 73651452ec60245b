package models

import "time"

// ProgramLength is the fixed length of the healing program in days.
const ProgramLength = 21

// DateLayout is the calendar-day format used for checklist bookkeeping.
const DateLayout = "2006-01-02"

// User is one Telegram account enrolled in the 21-day program.
type User struct {
	ID                 int64      `db:"id"`
	Username           string     `db:"username"`
	FirstName          string     `db:"first_name"`
	CurrentDay         int        `db:"current_day"`
	CurrentStreak      int        `db:"current_streak"`
	TotalDaysCompleted int        `db:"total_days_completed"`
	LastChecklistDate  string     `db:"last_checklist_date"`
	GoalTags           GoalTagSet `db:"goal_tags"`
	ReminderHour       int        `db:"reminder_hour"`
	RemindersEnabled   bool       `db:"reminders_enabled"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// ActiveGoals returns the user's active goal tags with the general fallback.
func (u *User) ActiveGoals() []Goal {
	return u.GoalTags.Active()
}

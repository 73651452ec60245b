package models

import "time"

// ProgressTracking mirrors the user's streak counters and derived scores.
// One row per user, created lazily on the first progress update.
type ProgressTracking struct {
	UserID             int64     `db:"user_id"`
	CurrentStreak      int       `db:"current_streak"`
	LongestStreak      int       `db:"longest_streak"`
	TotalDaysCompleted int       `db:"total_days_completed"`
	CompletionRate     int       `db:"completion_rate"`
	HealingScore       int       `db:"healing_score"`
	LastActiveDate     string    `db:"last_active_date"`
	UpdatedAt          time.Time `db:"updated_at"`
}

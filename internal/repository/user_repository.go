package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// UserRepository persists enrolled users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a repository bound to the given pool.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, first_name, current_day, current_streak,
	total_days_completed, last_checklist_date, goal_tags, reminder_hour,
	reminders_enabled, created_at, updated_at`

// GetByTelegramID loads a user by Telegram ID. Returns (nil, nil) when the
// user is not enrolled yet.
func (r *UserRepository) GetByTelegramID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// Create inserts a freshly enrolled user with program defaults.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, first_name, current_day, current_streak,
			total_days_completed, last_checklist_date, goal_tags, reminder_hour,
			reminders_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		u.ID, u.Username, u.FirstName, u.CurrentDay, u.CurrentStreak,
		u.TotalDaysCompleted, u.LastChecklistDate, u.GoalTags, u.ReminderHour,
		u.RemindersEnabled,
	)
	if err != nil {
		return fmt.Errorf("create user %d: %w", u.ID, err)
	}
	return nil
}

// UpdateGoalTags replaces the stored goal tag set.
func (r *UserRepository) UpdateGoalTags(ctx context.Context, id int64, tags models.GoalTagSet) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET goal_tags = $2, updated_at = now() WHERE id = $1`, id, tags)
	if err != nil {
		return fmt.Errorf("update goal tags for user %d: %w", id, err)
	}
	return nil
}

// UpdateReminder stores the user's reminder hour and enabled flag.
func (r *UserRepository) UpdateReminder(ctx context.Context, id int64, hour int, enabled bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reminder_hour = $2, reminders_enabled = $3, updated_at = now() WHERE id = $1`,
		id, hour, enabled)
	if err != nil {
		return fmt.Errorf("update reminder for user %d: %w", id, err)
	}
	return nil
}

// GetForUpdate locks and loads the user row inside the given transaction.
// The row lock serializes concurrent progress updates for one user.
func (r *UserRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*models.User, error) {
	var u models.User
	err := tx.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock user %d: %w", id, err)
	}
	return &u, nil
}

// SaveProgressTx writes back the progress counters inside the transaction
// that holds the row lock.
func (r *UserRepository) SaveProgressTx(ctx context.Context, tx *sqlx.Tx, u *models.User) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users SET current_day = $2, current_streak = $3,
			total_days_completed = $4, last_checklist_date = $5, updated_at = now()
		WHERE id = $1`,
		u.ID, u.CurrentDay, u.CurrentStreak, u.TotalDaysCompleted, u.LastChecklistDate,
	)
	if err != nil {
		return fmt.Errorf("save progress for user %d: %w", u.ID, err)
	}
	return nil
}

// ListReminderDue returns users with reminders enabled for the given hour
// who have not recorded today's checklist yet.
func (r *UserRepository) ListReminderDue(ctx context.Context, hour int, today string) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `
		SELECT `+userColumns+` FROM users
		WHERE reminders_enabled AND reminder_hour = $1 AND last_checklist_date <> $2
		ORDER BY id`,
		hour, today)
	if err != nil {
		return nil, fmt.Errorf("list reminder-due users: %w", err)
	}
	return users, nil
}

// Stats summarizes enrollment for the admin command.
type Stats struct {
	Total       int `db:"total"`
	ActiveToday int `db:"active_today"`
	Finished    int `db:"finished"`
}

// CountStats aggregates user counts for the admin overview.
func (r *UserRepository) CountStats(ctx context.Context, today string) (Stats, error) {
	var s Stats
	err := r.db.GetContext(ctx, &s, `
		SELECT count(*) AS total,
			count(*) FILTER (WHERE last_checklist_date = $1) AS active_today,
			count(*) FILTER (WHERE current_day >= $2) AS finished
		FROM users`,
		today, models.ProgramLength)
	if err != nil {
		return Stats{}, fmt.Errorf("count user stats: %w", err)
	}
	return s, nil
}

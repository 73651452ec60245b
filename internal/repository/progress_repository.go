package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// ProgressRepository persists the per-user progress tracking record.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository creates a repository bound to the given pool.
func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `user_id, current_streak, longest_streak,
	total_days_completed, completion_rate, healing_score, last_active_date, updated_at`

// Get loads the progress record for display. Returns (nil, nil) when no
// progress has been recorded yet.
func (r *ProgressRepository) Get(ctx context.Context, userID int64) (*models.ProgressTracking, error) {
	var rec models.ProgressTracking
	err := r.db.GetContext(ctx, &rec,
		`SELECT `+progressColumns+` FROM progress_tracking WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress for user %d: %w", userID, err)
	}
	return &rec, nil
}

// GetForUpdateTx locks and loads the record inside the transaction. Returns
// (nil, nil) when the record does not exist yet; the caller creates it lazily.
func (r *ProgressRepository) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID int64) (*models.ProgressTracking, error) {
	var rec models.ProgressTracking
	err := tx.GetContext(ctx, &rec,
		`SELECT `+progressColumns+` FROM progress_tracking WHERE user_id = $1 FOR UPDATE`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock progress for user %d: %w", userID, err)
	}
	return &rec, nil
}

// UpsertTx writes the record inside the transaction, creating it on first use.
func (r *ProgressRepository) UpsertTx(ctx context.Context, tx *sqlx.Tx, rec *models.ProgressTracking) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO progress_tracking (user_id, current_streak, longest_streak,
			total_days_completed, completion_rate, healing_score, last_active_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			total_days_completed = EXCLUDED.total_days_completed,
			completion_rate = EXCLUDED.completion_rate,
			healing_score = EXCLUDED.healing_score,
			last_active_date = EXCLUDED.last_active_date,
			updated_at = now()`,
		rec.UserID, rec.CurrentStreak, rec.LongestStreak, rec.TotalDaysCompleted,
		rec.CompletionRate, rec.HealingScore, rec.LastActiveDate,
	)
	if err != nil {
		return fmt.Errorf("upsert progress for user %d: %w", rec.UserID, err)
	}
	return nil
}

// Reset removes the record so a user can restart the program.
func (r *ProgressRepository) Reset(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM progress_tracking WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("reset progress for user %d: %w", userID, err)
	}
	return nil
}

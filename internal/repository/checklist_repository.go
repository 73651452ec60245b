package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// ChecklistRepository persists daily ritual checklists.
type ChecklistRepository struct {
	db *sqlx.DB
}

// NewChecklistRepository creates a repository bound to the given pool.
func NewChecklistRepository(db *sqlx.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

const checklistColumns = `id, user_id, checklist_date, items, created_at, updated_at`

// GetOrCreateToday returns the user's checklist for the given date, creating
// an empty one when it does not exist. The unique (user_id, checklist_date)
// constraint makes racing creators converge on a single row.
func (r *ChecklistRepository) GetOrCreateToday(ctx context.Context, userID int64, date string) (*models.DailyChecklist, error) {
	cl, err := r.getByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if cl != nil {
		return cl, nil
	}

	fresh := &models.DailyChecklist{
		ID:            uuid.New(),
		UserID:        userID,
		ChecklistDate: date,
		Items:         models.NewChecklistItems(),
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO daily_checklists (id, user_id, checklist_date, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id, checklist_date) DO NOTHING`,
		fresh.ID, fresh.UserID, fresh.ChecklistDate, fresh.Items,
	)
	if err != nil {
		return nil, fmt.Errorf("create checklist for user %d: %w", userID, err)
	}

	// Re-read to pick up the winning row in case of a concurrent insert.
	cl, err = r.getByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, fmt.Errorf("checklist for user %d on %s missing after insert", userID, date)
	}
	return cl, nil
}

func (r *ChecklistRepository) getByDate(ctx context.Context, userID int64, date string) (*models.DailyChecklist, error) {
	var cl models.DailyChecklist
	err := r.db.GetContext(ctx, &cl, `
		SELECT `+checklistColumns+` FROM daily_checklists
		WHERE user_id = $1 AND checklist_date = $2`, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get checklist for user %d on %s: %w", userID, date, err)
	}
	return &cl, nil
}

// SaveItems writes back the toggled item flags.
func (r *ChecklistRepository) SaveItems(ctx context.Context, id uuid.UUID, items models.ChecklistItems) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE daily_checklists SET items = $2, updated_at = now() WHERE id = $1`, id, items)
	if err != nil {
		return fmt.Errorf("save checklist %s: %w", id, err)
	}
	return nil
}

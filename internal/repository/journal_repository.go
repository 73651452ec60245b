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

// JournalRepository persists free-text journal entries.
type JournalRepository struct {
	db *sqlx.DB
}

// NewJournalRepository creates a repository bound to the given pool.
func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

const journalColumns = `id, user_id, day, prompt, content, created_at, updated_at`

// Create inserts a new entry.
func (r *JournalRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, user_id, day, prompt, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		e.ID, e.UserID, e.Day, e.Prompt, e.Content,
	)
	if err != nil {
		return fmt.Errorf("create journal entry for user %d: %w", e.UserID, err)
	}
	return nil
}

// GetByID loads one entry, scoped to its owner. Returns (nil, nil) when the
// entry does not exist or belongs to somebody else.
func (r *JournalRepository) GetByID(ctx context.Context, userID int64, id uuid.UUID) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := r.db.GetContext(ctx, &e,
		`SELECT `+journalColumns+` FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get journal entry %s: %w", id, err)
	}
	return &e, nil
}

// ListRecent returns the newest entries for a user.
func (r *JournalRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries for user %d: %w", userID, err)
	}
	return entries, nil
}

// UpdateContent rewrites the text of an existing entry.
func (r *JournalRepository) UpdateContent(ctx context.Context, userID int64, id uuid.UUID, content string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE journal_entries SET content = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2`, id, userID, content)
	if err != nil {
		return fmt.Errorf("update journal entry %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journal entry %s not found", id)
	}
	return nil
}

// Delete removes an entry, scoped to its owner.
func (r *JournalRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("delete journal entry %s: %w", id, err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
)

// MaxJournalLength caps one entry; Telegram messages top out at 4096 chars
// and the cap keeps room for the reply framing.
const MaxJournalLength = 4000

// JournalService owns reflection entries.
type JournalService struct {
	journal *repository.JournalRepository
}

func NewJournalService(journal *repository.JournalRepository) *JournalService {
	return &JournalService{journal: journal}
}

// CreateEntry stores a new reflection for the user's current program day.
func (s *JournalService) CreateEntry(ctx context.Context, u *models.User, prompt, text string) (*models.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("journal: empty entry")
	}
	if len(text) > MaxJournalLength {
		text = text[:MaxJournalLength]
	}

	e := &models.JournalEntry{
		ID:      uuid.New(),
		UserID:  u.ID,
		Day:     u.CurrentDay,
		Prompt:  prompt,
		Content: text,
	}
	if err := s.journal.Create(ctx, e); err != nil {
		return nil, err
	}
	logger.Info(ctx, "service.journal", "entry.created",
		slog.Int64("user_id", u.ID),
		slog.String("entry_id", e.ID.String()),
		slog.Int("day", e.Day),
	)
	return e, nil
}

// ListRecent returns the newest entries, capped at limit.
func (s *JournalService) ListRecent(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.journal.ListRecent(ctx, userID, limit)
}

// Get loads one entry, scoped to its owner. Returns (nil, nil) when the
// entry does not exist or belongs to someone else.
func (s *JournalService) Get(ctx context.Context, userID int64, id uuid.UUID) (*models.JournalEntry, error) {
	return s.journal.GetByID(ctx, userID, id)
}

// UpdateEntry replaces the text of an owned entry.
func (s *JournalService) UpdateEntry(ctx context.Context, userID int64, id uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("journal: empty entry")
	}
	if len(text) > MaxJournalLength {
		text = text[:MaxJournalLength]
	}
	return s.journal.UpdateContent(ctx, userID, id, text)
}

// DeleteEntry removes an owned entry.
func (s *JournalService) DeleteEntry(ctx context.Context, userID int64, id uuid.UUID) error {
	if err := s.journal.Delete(ctx, userID, id); err != nil {
		return err
	}
	logger.Info(ctx, "service.journal", "entry.deleted",
		slog.Int64("user_id", userID),
		slog.String("entry_id", id.String()),
	)
	return nil
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/progress"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
)

// ChecklistService manages the per-day ritual checklist. Checking the first
// item of a calendar day also registers that day's engagement with the
// progress machinery.
type ChecklistService struct {
	checklists *repository.ChecklistRepository
	progress   *ProgressService
}

func NewChecklistService(checklists *repository.ChecklistRepository, progressSvc *ProgressService) *ChecklistService {
	return &ChecklistService{checklists: checklists, progress: progressSvc}
}

// Today returns the user's checklist for the given moment, creating an
// all-unchecked one on first access.
func (s *ChecklistService) Today(ctx context.Context, userID int64, now time.Time) (*models.DailyChecklist, error) {
	return s.checklists.GetOrCreateToday(ctx, userID, now.Format(models.DateLayout))
}

// ToggleResult reports the outcome of flipping one checklist item.
type ToggleResult struct {
	Checklist *models.DailyChecklist
	Checked   bool
	Progress  progress.Result
	AllDone   bool
}

// Toggle flips one item on today's checklist. Checking an item counts as
// engagement for the day; unchecking never rolls progress back.
func (s *ChecklistService) Toggle(ctx context.Context, userID int64, item models.ChecklistItem, now time.Time) (ToggleResult, error) {
	cl, err := s.Today(ctx, userID, now)
	if err != nil {
		return ToggleResult{}, err
	}

	checked, err := cl.Items.Toggle(item)
	if err != nil {
		return ToggleResult{}, err
	}
	if err := s.checklists.SaveItems(ctx, cl.ID, cl.Items); err != nil {
		return ToggleResult{}, err
	}

	res := ToggleResult{Checklist: cl, Checked: checked, AllDone: cl.Items.AllDone()}
	if checked {
		res.Progress, _, err = s.progress.RegisterDay(ctx, userID, now)
		if err != nil {
			return ToggleResult{}, err
		}
	}

	logger.Debug(ctx, "service.checklist", "item.toggled",
		slog.Int64("user_id", userID),
		slog.String("item", string(item)),
		slog.Bool("checked", checked),
	)
	return res, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/progress"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
)

// ProgressService applies daily progress updates under a per-user lock.
// Every read-modify-write cycle on one account runs alone: an in-process
// mutex serializes callers in this instance, and row locks inside the
// transaction guard against other instances.
type ProgressService struct {
	db       *sqlx.DB
	users    *repository.UserRepository
	progress *repository.ProgressRepository
	locks    *userLocks
}

func NewProgressService(db *sqlx.DB, users *repository.UserRepository, progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		db:       db,
		users:    users,
		progress: progressRepo,
		locks:    newUserLocks(),
	}
}

// RegisterDay records one day of engagement for the user: streak and program
// day advance per the calendar rules, derived scores are recomputed, and
// both the user row and the progress record are written atomically. Repeat
// calls on the same calendar day are no-ops apart from score recomputation.
func (s *ProgressService) RegisterDay(ctx context.Context, userID int64, now time.Time) (progress.Result, *models.User, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return progress.Result{}, nil, fmt.Errorf("begin progress tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	user, err := s.users.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return progress.Result{}, nil, err
	}
	if user == nil {
		return progress.Result{}, nil, fmt.Errorf("progress update: user %d not enrolled", userID)
	}

	rec, err := s.progress.GetForUpdateTx(ctx, tx, userID)
	if err != nil {
		return progress.Result{}, nil, err
	}
	if rec == nil {
		rec = &models.ProgressTracking{UserID: userID}
	}

	res := progress.UpdateDailyProgress(user, rec, now)

	if err := s.users.SaveProgressTx(ctx, tx, user); err != nil {
		return progress.Result{}, nil, err
	}
	if err := s.progress.UpsertTx(ctx, tx, rec); err != nil {
		return progress.Result{}, nil, err
	}
	if err := tx.Commit(); err != nil {
		return progress.Result{}, nil, fmt.Errorf("commit progress tx: %w", err)
	}

	attrs := []slog.Attr{
		slog.Int64("user_id", userID),
		slog.Int("day", res.NewDay),
		slog.Int("streak", res.NewStreak),
		slog.Int("total_days", user.TotalDaysCompleted),
	}
	if res.Milestone != "" {
		attrs = append(attrs, slog.Bool("milestone", true))
	}
	if res.StreakUpdated {
		logger.Info(ctx, "service.progress", "day.registered", attrs...)
	} else {
		logger.Debug(ctx, "service.progress", "day.repeated", attrs...)
	}
	return res, user, nil
}

// Get returns the stored progress record, or a zeroed record for users who
// never completed a day.
func (s *ProgressService) Get(ctx context.Context, userID int64) (*models.ProgressTracking, error) {
	rec, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &models.ProgressTracking{UserID: userID}
	}
	return rec, nil
}

// Reset wipes the progress record, used when a user restarts the program.
func (s *ProgressService) Reset(ctx context.Context, userID int64) error {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)
	return s.progress.Reset(ctx, userID)
}

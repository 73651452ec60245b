package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
)

// UserService owns enrollment and per-user settings.
type UserService struct {
	users *repository.UserRepository

	// Enrollment defaults, taken from the reminders config section.
	defaultHour      int
	remindersEnabled bool
}

func NewUserService(users *repository.UserRepository, defaultHour int, remindersEnabled bool) *UserService {
	return &UserService{
		users:            users,
		defaultHour:      defaultHour,
		remindersEnabled: remindersEnabled,
	}
}

// GetOrCreate returns the enrolled user, creating the record with program
// defaults on first contact. The second return reports whether a new user
// was enrolled.
func (s *UserService) GetOrCreate(ctx context.Context, id int64, username, firstName string) (*models.User, bool, error) {
	u, err := s.users.GetByTelegramID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if u != nil {
		return u, false, nil
	}

	u = &models.User{
		ID:               id,
		Username:         username,
		FirstName:        firstName,
		CurrentDay:       1,
		CurrentStreak:    0,
		GoalTags:         models.GoalTagSet{},
		ReminderHour:     s.defaultHour,
		RemindersEnabled: s.remindersEnabled,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, false, err
	}
	logger.Info(ctx, "service.users", "user.enrolled",
		slog.Int64("user_id", id),
	)
	return u, true, nil
}

// GetUserByTelegramID loads an enrolled user. Returns (nil, nil) for users
// that never started the bot.
func (s *UserService) GetUserByTelegramID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByTelegramID(ctx, id)
}

// SetGoalsFromText classifies free-form intake text into goal tags and
// persists them on the user. The returned set is never empty.
func (s *UserService) SetGoalsFromText(ctx context.Context, u *models.User, text string) (models.GoalTagSet, error) {
	tags := content.Classify(text)
	if err := s.users.UpdateGoalTags(ctx, u.ID, tags); err != nil {
		return nil, err
	}
	u.GoalTags = tags
	logger.Info(ctx, "service.users", "goals.updated",
		slog.Int64("user_id", u.ID),
		slog.String("goal", joinGoals(tags)),
	)
	return tags, nil
}

// SetReminder stores the preferred reminder hour and enables reminders.
func (s *UserService) SetReminder(ctx context.Context, u *models.User, hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("reminder hour %d out of range", hour)
	}
	if err := s.users.UpdateReminder(ctx, u.ID, hour, true); err != nil {
		return err
	}
	u.ReminderHour = hour
	u.RemindersEnabled = true
	return nil
}

// DisableReminders turns the daily nudge off, keeping the stored hour.
func (s *UserService) DisableReminders(ctx context.Context, u *models.User) error {
	if err := s.users.UpdateReminder(ctx, u.ID, u.ReminderHour, false); err != nil {
		return err
	}
	u.RemindersEnabled = false
	return nil
}

// Stats reports enrollment counters for the admin overview.
func (s *UserService) Stats(ctx context.Context, today string) (repository.Stats, error) {
	return s.users.CountStats(ctx, today)
}

func joinGoals(tags models.GoalTagSet) string {
	active := tags.Active()
	parts := make([]string, 0, len(active))
	for _, g := range active {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ",")
}

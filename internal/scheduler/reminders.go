// Package scheduler runs the daily reminder sweep. An hourly cron job picks
// every user whose preferred hour matches and who has not touched today's
// checklist yet, and nudges them through the async sender.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	tele "gopkg.in/telebot.v4"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/sender"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
)

// Reminders owns the cron instance and the sweep it schedules.
type Reminders struct {
	cron  *cron.Cron
	bot   *tele.Bot
	out   *sender.Dispatcher
	users *repository.UserRepository
}

func NewReminders(bot *tele.Bot, out *sender.Dispatcher, users *repository.UserRepository) *Reminders {
	return &Reminders{
		cron:  cron.New(),
		bot:   bot,
		out:   out,
		users: users,
	}
}

// Start registers the hourly sweep and launches the cron loop.
func (r *Reminders) Start() error {
	if _, err := r.cron.AddFunc("@hourly", func() {
		r.Sweep(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("schedule reminder sweep: %w", err)
	}
	r.cron.Start()
	logger.Info(context.Background(), "scheduler", "reminders.started")
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (r *Reminders) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.Info(context.Background(), "scheduler", "reminders.stopped")
}

// Sweep nudges every user due at the given moment. Send failures are
// retried by the dispatcher and never abort the sweep.
func (r *Reminders) Sweep(ctx context.Context, now time.Time) {
	hour := now.Hour()
	today := now.Format(models.DateLayout)

	due, err := r.users.ListReminderDue(ctx, hour, today)
	if err != nil {
		logger.Error(ctx, "scheduler", "reminders.list.fail",
			slog.Int("hour", hour),
			slog.String("error", err.Error()),
		)
		return
	}
	if len(due) == 0 {
		logger.Debug(ctx, "scheduler", "reminders.sweep.empty", slog.Int("hour", hour))
		return
	}

	sent := 0
	for i := range due {
		u := due[i]
		text := reminderText(&u)
		recipient := &tele.User{ID: u.ID}
		err := r.out.Enqueue(ctx, "reminder", "sendMessage", func() error {
			_, err := r.bot.Send(recipient, text)
			return err
		})
		if err != nil {
			logger.Warn(ctx, "scheduler", "reminders.enqueue.fail",
				slog.Int64("user_id", u.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	logger.Info(ctx, "scheduler", "reminders.sweep.done",
		slog.Int("hour", hour),
		slog.Int("due", len(due)),
		slog.Int("sent", sent),
	)
}

func reminderText(u *models.User) string {
	daily := content.Select(u.GoalTags, u.CurrentDay)
	name := u.FirstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"🌿 Hey %s! Your %s checklist is waiting.\n\n💡 %s\n\nOpen /checklist to keep your %d-day streak alive.",
		name, daily.Focus, daily.Tip, u.CurrentStreak,
	)
}

package handlers

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// Progress renders the streak and score card.
func (h *Handlers) Progress(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := tghelpers.CurrentUser[*models.User](ctx, h.users, c.Sender().ID)
	if err != nil {
		return err
	}
	if u == nil {
		return tghelpers.SendMD(c, "You are not enrolled yet. Send /start to begin your journey 🌿")
	}

	rec, err := h.progress.Get(ctx, u.ID)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Your healing journey*\n\n")
	fmt.Fprintf(&b, "📅 Day %d of %d\n%s\n\n", u.CurrentDay, models.ProgramLength, progressBar(u.CurrentDay, models.ProgramLength))
	fmt.Fprintf(&b, "🔥 Current streak: *%d days*\n", rec.CurrentStreak)
	fmt.Fprintf(&b, "🏆 Longest streak: %d days\n", rec.LongestStreak)
	fmt.Fprintf(&b, "✅ Days completed: %d\n", rec.TotalDaysCompleted)
	fmt.Fprintf(&b, "📈 Completion: %d%%\n", rec.CompletionRate)
	fmt.Fprintf(&b, "💚 Healing score: *%d*", rec.HealingScore)

	return tghelpers.SendMD(c, b.String())
}

// progressBar draws a ten-segment bar for day/total.
func progressBar(day, total int) string {
	if day < 0 {
		day = 0
	}
	if day > total {
		day = total
	}
	filled := day * 10 / total
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled)
}

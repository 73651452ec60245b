package handlers

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// Stats reports enrollment counters. An optional date argument shifts the
// "active" column to that day, e.g. "/stats 2026-08-30".
func (h *Handlers) Stats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	day := h.now()
	label := "today"
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		t, ok := tghelpers.ParseFlexibleDate(payload)
		if !ok {
			return tghelpers.SendMD(c, "Could not parse that date. Try `/stats 2026-08-30`.")
		}
		day = t
		label = day.Format(models.DateLayout)
	}

	stats, err := h.users.Stats(ctx, day.Format(models.DateLayout))
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"👥 *Bot statistics*\n\nEnrolled: %d\nActive (%s): %d\nFinished the program: %d",
		stats.Total, label, stats.ActiveToday, stats.Finished,
	)
	return tghelpers.SendMD(c, text)
}

package handlers

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/keyboard"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
)

// Goals shows the active focus areas and offers a retake of the intake.
func (h *Handlers) Goals(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	var labels []string
	for _, g := range u.GoalTags.Active() {
		labels = append(labels, goalLabel(g))
	}
	daily := content.Select(u.GoalTags, u.CurrentDay)

	text := fmt.Sprintf(
		"🎯 *Your focus areas*\n\n%s\n\nToday's theme: %s",
		strings.Join(labels, "\n"), daily.Focus,
	)
	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔄 Change my goals", Unique: cbGoalsRetake},
	})
	return tghelpers.SendMD(c, text, markup)
}

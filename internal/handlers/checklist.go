package handlers

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/callbacks"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/keyboard"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// Today shows the daily plan: focus, tip and the tappable ritual checklist.
func (h *Handlers) Today(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}
	return h.sendToday(c, u)
}

func (h *Handlers) sendToday(c tele.Context, u *models.User) error {
	ctx := tghelpers.BuildContext(c)

	cl, err := h.checklist.Today(ctx, u.ID, h.now())
	if err != nil {
		return err
	}

	daily := content.Select(u.GoalTags, u.CurrentDay)
	text := todayText(daily, cl.Items, u.CurrentStreak)
	return tghelpers.SendMD(c, text, checklistMarkup(cl.Items))
}

// onChecklistToggle flips one ritual item and re-renders the card in place.
func (h *Handlers) onChecklistToggle(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	item := models.ChecklistItem(callbacks.CallbackPayload(c))
	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	res, err := h.checklist.Toggle(ctx, u.ID, item, h.now())
	if err != nil {
		return err
	}

	day := u.CurrentDay
	streak := u.CurrentStreak
	if res.Progress.NewDay > 0 {
		day = res.Progress.NewDay
		streak = res.Progress.NewStreak
	}

	daily := content.Select(u.GoalTags, day)
	if err := tghelpers.EditOrSendMD(c, todayText(daily, res.Checklist.Items, streak), checklistMarkup(res.Checklist.Items)); err != nil {
		return err
	}

	if res.Progress.Milestone != "" {
		if err := tghelpers.SendMD(c, res.Progress.Milestone); err != nil {
			return err
		}
	}
	if res.AllDone {
		return tghelpers.SendMD(c, "🎉 *All five rituals done today!* Rest well and come back tomorrow.")
	}
	return nil
}

func todayText(daily content.DailyContent, items models.ChecklistItems, streak int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌿 *%s*\n", daily.Focus)
	if streak > 1 {
		fmt.Fprintf(&b, "🔥 Streak: %d days\n", streak)
	}
	fmt.Fprintf(&b, "\n💡 %s\n\n_%s_\n\n", daily.Tip, daily.Quote)
	fmt.Fprintf(&b, "Your rituals today (%d/%d):", items.Completed(), len(models.ChecklistOrder))
	return b.String()
}

func checklistMarkup(items models.ChecklistItems) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(models.ChecklistOrder))
	for _, item := range models.ChecklistOrder {
		mark := "☐"
		if items[item] {
			mark = "✅"
		}
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   mark + " " + itemLabels[item],
			Unique: cbChecklistToggle,
			Data:   string(item),
		})
	}
	return keyboard.InlineButtons(buttons)
}

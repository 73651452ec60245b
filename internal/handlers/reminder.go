package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/callbacks"
	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/keyboard"
)

var reminderHourChoices = []int{7, 9, 12, 18, 20, 21}

// Reminder shows the nudge settings with quick hour picks.
func (h *Handlers) Reminder(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	status := "off"
	if u.RemindersEnabled {
		status = fmt.Sprintf("daily at %02d:00", u.ReminderHour)
	}

	buttons := make([]keyboard.InlineBtn, 0, len(reminderHourChoices)+2)
	for _, hour := range reminderHourChoices {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%02d:00", hour),
			Unique: cbReminderHour,
			Data:   strconv.Itoa(hour),
		})
	}
	markup := keyboard.InlineButtonsNPerRow(buttons, 3)
	markup.InlineKeyboard = append(markup.InlineKeyboard,
		keyboard.ToInlineKeyboard([][]tele.Btn{{
			markup.Data("✏️ Other time", cbReminderHour, "custom"),
			markup.Data("🔕 Turn off", cbReminderOff, "off"),
		}})...,
	)

	text := fmt.Sprintf("⏰ *Daily reminder*\n\nCurrently: %s\n\nPick a time:", status)
	return tghelpers.SendMD(c, text, markup)
}

// onReminderHour applies a picked hour, or opens the custom time prompt.
func (h *Handlers) onReminderHour(c tele.Context) error {
	payload := callbacks.CallbackPayload(c)

	if payload == "custom" {
		h.fsm.SetState(c.Sender().ID, StateAwaitingReminder)
		return tghelpers.SendMD(c,
			"Send me the hour you prefer, like *8* or *19:30* (minutes are rounded down).",
			keyboard.ForceReply(),
		)
	}

	hour, err := callbacks.PayloadInt(c)
	if err != nil {
		return tghelpers.SendText(c, "That time no longer works, open /reminder again.")
	}
	return h.applyReminderHour(c, hour)
}

// onReminderInput parses a free-form hour while awaiting_reminder_time.
func (h *Handlers) onReminderInput(c tele.Context) error {
	hour, ok := parseReminderHour(c.Text())
	if !ok {
		return tghelpers.SendMD(c, "I could not read that time. Try something like *8* or *19:30*.")
	}
	h.fsm.ClearState(c.Sender().ID)
	return h.applyReminderHour(c, hour)
}

// onReminderOff disables the nudge.
func (h *Handlers) onReminderOff(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}
	if err := h.users.DisableReminders(ctx, u); err != nil {
		return err
	}
	return tghelpers.SendMD(c, "🔕 Reminders are off. Re-enable them any time with /reminder.")
}

func (h *Handlers) applyReminderHour(c tele.Context, hour int) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}
	if err := h.users.SetReminder(ctx, u, hour); err != nil {
		return tghelpers.SendMD(c, "Hours go from *0* to *23*, try again.")
	}
	return tghelpers.SendMD(c, fmt.Sprintf("⏰ Done! I will nudge you daily around %02d:00.", hour))
}

// parseReminderHour accepts "8", "08", "8:30" or "19.30" style input.
func parseReminderHour(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	for _, sep := range []string{":", "."} {
		if i := strings.Index(s, sep); i >= 0 {
			s = s[:i]
			break
		}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

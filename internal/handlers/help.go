package handlers

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
)

const helpText = `🌿 *What I can do*

/today — today's focus, tip and ritual checklist
/checklist — same as /today
/progress — your streak, scores and program day
/journal — write tonight's reflection
/entries — browse, edit or delete past reflections
/wisdom — a quote for your goals
/goals — see or change your focus areas
/reminder — set or silence the daily nudge
/help — this message

Check off your rituals every day to keep the streak alive 🔥`

// Help lists the available commands.
func (h *Handlers) Help(c tele.Context) error {
	return tghelpers.SendMD(c, helpText)
}

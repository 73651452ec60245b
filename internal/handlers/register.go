package handlers

import (
	tg "github.com/Soskid107/Hikma-bot-sub000/core/telegram"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/commands"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/state"
)

// Register binds every command, callback and conversation state to the
// registry and FSM machinery.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Begin or resume your 21-day journey",
	})
	reg.RegisterCommand("/today", commands.Command{
		Handler:     h.Today,
		Description: "Today's focus, tip and checklist",
		Aliases:     []string{"checklist"},
	})
	reg.RegisterCommand("/progress", commands.Command{
		Handler:     h.Progress,
		Description: "Streak, scores and program day",
	})
	reg.RegisterCommand("/journal", commands.Command{
		Handler:     h.Journal,
		Description: "Write tonight's reflection",
	})
	reg.RegisterCommand("/entries", commands.Command{
		Handler:     h.Entries,
		Description: "Browse past reflections",
	})
	reg.RegisterCommand("/wisdom", commands.Command{
		Handler:     h.Wisdom,
		Description: "A quote for your goals",
	})
	reg.RegisterCommand("/goals", commands.Command{
		Handler:     h.Goals,
		Description: "See or change your focus areas",
	})
	reg.RegisterCommand("/reminder", commands.Command{
		Handler:     h.Reminder,
		Description: "Set or silence the daily nudge",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     h.Help,
		Description: "List available commands",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.Stats,
		Description: "Bot statistics",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbChecklistToggle, h.onChecklistToggle)
	_ = reg.RegisterCallback(cbJournalEdit, h.onJournalEdit)
	_ = reg.RegisterCallback(cbJournalDelete, h.onJournalDelete)
	_ = reg.RegisterCallback(cbJournalCancel, h.onJournalCancel)
	_ = reg.RegisterCallback(cbReminderHour, h.onReminderHour)
	_ = reg.RegisterCallback(cbReminderOff, h.onReminderOff)
	_ = reg.RegisterCallback(cbGoalsRetake, h.onGoalsRetake)

	state.RegisterHandler(StateAwaitingGoals, h.onGoalsInput)
	state.RegisterHandler(StateAwaitingJournal, h.onJournalInput)
	state.RegisterHandler(StateAwaitingJournalEdit, h.onJournalEditInput)
	state.RegisterHandler(StateAwaitingReminder, h.onReminderInput)

	reg.SetTextFallback(h.UnknownText())
	reg.SetCallbackNotFound(h.UnknownCallback())
}

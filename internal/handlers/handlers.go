// Package handlers wires Telegram commands, callbacks and conversation
// states to the wellness services.
package handlers

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/state"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
	"github.com/Soskid107/Hikma-bot-sub000/internal/quotes"
	"github.com/Soskid107/Hikma-bot-sub000/internal/services"
)

// Conversation states driven through the FSM manager.
const (
	StateAwaitingGoals       state.State = "awaiting_goals"
	StateAwaitingJournal     state.State = "awaiting_journal_entry"
	StateAwaitingJournalEdit state.State = "awaiting_journal_edit"
	StateAwaitingReminder    state.State = "awaiting_reminder_time"
)

// Callback keys routed through the registry.
const (
	cbChecklistToggle = "chk_toggle"
	cbJournalEdit     = "jrn_edit"
	cbJournalDelete   = "jrn_del"
	cbJournalCancel   = "jrn_cancel"
	cbReminderHour    = "rem_hour"
	cbReminderOff     = "rem_off"
	cbGoalsRetake     = "goals_retake"
)

// Temp-data keys used by multi-step conversations.
const (
	tmpJournalPrompt = "journal_prompt"
	tmpJournalEditID = "journal_edit_id"
)

var itemLabels = map[models.ChecklistItem]string{
	models.ItemWarmWater:    "💧 Warm water with lemon",
	models.ItemTongueScrape: "👅 Tongue scraping",
	models.ItemHerbalTea:    "🍵 Herbal tea",
	models.ItemLightDinner:  "🥗 Light dinner",
	models.ItemEarlySleep:   "😴 Early sleep",
}

// Handlers groups every bot-facing handler with its dependencies.
type Handlers struct {
	users     *services.UserService
	progress  *services.ProgressService
	checklist *services.ChecklistService
	journal   *services.JournalService
	quotes    *quotes.Client
	fsm       state.Manager

	// now is swappable in tests.
	now func() time.Time
}

func New(
	users *services.UserService,
	progressSvc *services.ProgressService,
	checklist *services.ChecklistService,
	journal *services.JournalService,
	quotesClient *quotes.Client,
	fsm state.Manager,
) *Handlers {
	return &Handlers{
		users:     users,
		progress:  progressSvc,
		checklist: checklist,
		journal:   journal,
		quotes:    quotesClient,
		fsm:       fsm,
		now:       time.Now,
	}
}

// currentUser resolves the sender to an enrolled user, enrolling on first
// contact so every handler can assume a user row exists.
func (h *Handlers) currentUser(ctx context.Context, c tele.Context) (*models.User, error) {
	sender := c.Sender()
	u, _, err := h.users.GetOrCreate(ctx, sender.ID, sender.Username, sender.FirstName)
	return u, err
}

func goalTagStrings(u *models.User) []string {
	active := u.GoalTags.Active()
	out := make([]string, 0, len(active))
	for _, g := range active {
		out = append(out, string(g))
	}
	return out
}

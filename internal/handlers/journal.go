package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"

	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/callbacks"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/format"
	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/keyboard"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

const recentEntriesLimit = 5

// Journal opens the evening reflection conversation with today's prompt.
func (h *Handlers) Journal(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	prompt := content.Select(u.GoalTags, u.CurrentDay).JournalPrompt
	userID := c.Sender().ID
	h.fsm.SetTemp(userID, tmpJournalPrompt, prompt)
	h.fsm.SetState(userID, StateAwaitingJournal)

	text := fmt.Sprintf("📝 *Evening reflection*\n\n_%s_\n\nWrite your answer in one message.", prompt)
	return tghelpers.SendMD(c, text, keyboard.SingleCancelMarkup(cbJournalCancel))
}

// onJournalInput stores the reflection text sent while awaiting_journal_entry.
func (h *Handlers) onJournalInput(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	prompt := ""
	if v, ok := h.fsm.GetTemp(userID, tmpJournalPrompt); ok {
		prompt, _ = v.(string)
	}

	if _, err := h.journal.CreateEntry(ctx, u, prompt, c.Text()); err != nil {
		return err
	}
	h.fsm.ClearTemp(userID, tmpJournalPrompt)
	h.fsm.ClearState(userID)

	return tghelpers.SendMD(c, "Saved 🌙 Browse your past reflections with /entries.")
}

// Entries lists the newest reflections with edit and delete actions.
func (h *Handlers) Entries(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := tghelpers.CurrentUser[*models.User](ctx, h.users, c.Sender().ID)
	if err != nil {
		return err
	}
	if u == nil {
		return tghelpers.SendMD(c, "You are not enrolled yet. Send /start to begin your journey 🌿")
	}

	entries, err := h.journal.ListRecent(ctx, u.ID, recentEntriesLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return tghelpers.SendMD(c, "No reflections yet. Start one with /journal 📝")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 *Your last %d reflections*\n", len(entries))
	rows := make([][]keyboard.InlineBtn, 0, len(entries))
	for i, e := range entries {
		body, err := format.EscapeMarkdown(snippet(e.Content), format.MarkdownV1, "")
		if err != nil {
			body = snippet(e.Content)
		}
		fmt.Fprintf(&b, "\n%d. Day %d (%s)\n%s\n", i+1, e.Day, e.CreatedAt.Format("Jan 2"), body)
		rows = append(rows, []keyboard.InlineBtn{
			{Text: fmt.Sprintf("✏️ Edit %d", i+1), Unique: cbJournalEdit, Data: e.ID.String()},
			{Text: fmt.Sprintf("🗑 Delete %d", i+1), Unique: cbJournalDelete, Data: e.ID.String()},
		})
	}

	return tghelpers.SendMD(c, b.String(), keyboard.InlineButtonsRows(rows...))
}

// onJournalEdit asks for replacement text for the chosen entry.
func (h *Handlers) onJournalEdit(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	id, err := uuid.Parse(callbacks.CallbackPayload(c))
	if err != nil {
		return tghelpers.SendText(c, "That entry reference is no longer valid.")
	}

	entry, err := h.journal.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return tghelpers.SendText(c, "Entry not found.")
	}

	h.fsm.SetTemp(userID, tmpJournalEditID, id.String())
	h.fsm.SetState(userID, StateAwaitingJournalEdit)

	return tghelpers.SendMD(c,
		fmt.Sprintf("✏️ Send the new text for your Day %d reflection.", entry.Day),
		keyboard.SingleCancelMarkup(cbJournalCancel),
	)
}

// onJournalEditInput applies the replacement text.
func (h *Handlers) onJournalEditInput(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	raw, ok := h.fsm.GetTemp(userID, tmpJournalEditID)
	if !ok {
		h.fsm.ClearState(userID)
		return tghelpers.SendText(c, "This edit session expired. Open /entries and try again.")
	}
	idStr, _ := raw.(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.fsm.ClearState(userID)
		return tghelpers.SendText(c, "This edit session expired. Open /entries and try again.")
	}

	if err := h.journal.UpdateEntry(ctx, userID, id, c.Text()); err != nil {
		return err
	}
	h.fsm.ClearTemp(userID, tmpJournalEditID)
	h.fsm.ClearState(userID)

	return tghelpers.SendMD(c, "Updated ✅")
}

// onJournalDelete removes the chosen entry.
func (h *Handlers) onJournalDelete(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := uuid.Parse(callbacks.CallbackPayload(c))
	if err != nil {
		return tghelpers.SendText(c, "That entry reference is no longer valid.")
	}
	if err := h.journal.DeleteEntry(ctx, c.Sender().ID, id); err != nil {
		return err
	}
	return tghelpers.SendMD(c, "Deleted 🗑")
}

// onJournalCancel aborts whichever journal conversation is active.
func (h *Handlers) onJournalCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.fsm.ClearTemp(userID, tmpJournalPrompt)
	h.fsm.ClearTemp(userID, tmpJournalEditID)
	h.fsm.ClearState(userID)
	return tghelpers.SendText(c, "Okay, maybe later 🌙")
}

func snippet(text string) string {
	const max = 160
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

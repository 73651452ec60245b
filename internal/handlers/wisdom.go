package handlers

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
)

// Wisdom sends a quote matched to the user's goals.
func (h *Handlers) Wisdom(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	q := h.quotes.Random(ctx, goalTagStrings(u)...)
	return tghelpers.SendMD(c, fmt.Sprintf("✨ _%s_\n\n— %s", q.Content, q.Author))
}

package handlers

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/ui"
	"github.com/Soskid107/Hikma-bot-sub000/internal/content"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

// InlineQuery answers @bot inline queries with today's tip and quote so
// users can share them into other chats. Unenrolled senders get the
// general track.
func (h *Handlers) InlineQuery(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	tags := models.GoalTagSet{}
	day := 1
	if u, err := tghelpers.CurrentUser[*models.User](ctx, h.users, c.Sender().ID); err == nil && u != nil {
		tags = u.GoalTags
		day = u.CurrentDay
	}

	daily := content.Select(tags, day)
	results := tele.Results{
		ui.NewSimpleArticleResult("tip", "💡 Today's tip", daily.Tip),
		ui.NewSimpleArticleResult("quote", "✨ Today's quote", daily.Quote),
	}
	return c.Answer(&tele.QueryResponse{
		Results:   results,
		CacheTime: 300,
	})
}

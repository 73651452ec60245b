package handlers

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/ui"
)

var _ ui.FallbackProvider = (*Handlers)(nil)

// UnknownText nudges stray messages towards the command surface.
func (h *Handlers) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendMD(c, "I did not catch that. See /help for everything I understand 🌿")
	}
}

// UnknownDocument rejects file uploads, which no flow expects.
func (h *Handlers) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "I can't do anything with files, sorry.")
	}
}

// UnknownCallback answers stale buttons from old messages.
func (h *Handlers) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "This button has expired."})
	}
}

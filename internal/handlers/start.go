package handlers

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Soskid107/Hikma-bot-sub000/core/telegram/helpers"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/keyboard"
	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

const welcomeText = `🌿 *Welcome to your 21-day healing journey!*

Over the next three weeks I will guide you through a daily ritual
checklist, small habit tips and a short evening reflection.

First, tell me in your own words: *what would you like to work on?*
For example: _"I sleep badly and feel stressed at work"_.`

// Start enrolls the sender and opens the goal intake conversation. Returning
// users with goals already set get today's plan straight away.
func (h *Handlers) Start(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	sender := c.Sender()

	u, created, err := h.users.GetOrCreate(ctx, sender.ID, sender.Username, sender.FirstName)
	if err != nil {
		return err
	}

	if created || !hasExplicitGoals(u) {
		h.fsm.SetState(sender.ID, StateAwaitingGoals)
		return tghelpers.SendMD(c, welcomeText)
	}

	return h.sendToday(c, u)
}

// hasExplicitGoals reports whether the user ever answered the goal intake.
// A fresh record falls back to the general goal without any stored tags.
func hasExplicitGoals(u *models.User) bool {
	for _, on := range u.GoalTags {
		if on {
			return true
		}
	}
	return false
}

// onGoalsInput handles the free-form goal description while the user is in
// the awaiting_goals state.
func (h *Handlers) onGoalsInput(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	u, err := h.currentUser(ctx, c)
	if err != nil {
		return err
	}

	tags, err := h.users.SetGoalsFromText(ctx, u, c.Text())
	if err != nil {
		return err
	}
	h.fsm.ClearState(c.Sender().ID)

	var labels []string
	for _, g := range tags.Active() {
		labels = append(labels, goalLabel(g))
	}
	intro := fmt.Sprintf("Got it! We will focus on: *%s*\n\nHere is your plan for today 👇", strings.Join(labels, ", "))
	if err := tghelpers.SendMD(c, intro); err != nil {
		return err
	}
	return h.sendToday(c, u)
}

// onGoalsRetake restarts the goal intake from the /goals screen.
func (h *Handlers) onGoalsRetake(c tele.Context) error {
	h.fsm.SetState(c.Sender().ID, StateAwaitingGoals)
	return tghelpers.SendMD(c,
		"🔄 Let's update your focus. *What would you like to work on now?*",
		keyboard.ForceReply(),
	)
}

func goalLabel(g models.Goal) string {
	switch g {
	case models.GoalSleep:
		return "😴 Sleep"
	case models.GoalStress:
		return "🧘 Stress"
	case models.GoalDigestion:
		return "🌱 Digestion"
	case models.GoalEnergy:
		return "⚡ Energy"
	case models.GoalSpiritual:
		return "✨ Spiritual growth"
	case models.GoalImmunity:
		return "🛡 Immunity"
	case models.GoalAnxiety:
		return "💆 Anxiety"
	case models.GoalHormonal:
		return "⚖️ Hormonal balance"
	default:
		return "🌿 General wellness"
	}
}

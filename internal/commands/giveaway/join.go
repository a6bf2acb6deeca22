// Package giveaway - join button handler
package giveaway

import (
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
)

// joinHandler handles presses of the join button on giveaway
// announcements. The giveaway id rides in the custom-id argument.
func joinHandler(ctx *discord.ComponentContext) error {
	if err := engine.Get().Join(ctx.Argument, ctx.User().ID); err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral("🎉 You're in! Good luck!")
}

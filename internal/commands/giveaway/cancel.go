// Package giveaway - /giveaway cancel command
package giveaway

import (
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createCancelCommand creates the /giveaway cancel subcommand
func createCancelCommand() *discord.Command {
	return discord.NewCommand(
		"cancel",
		"Cancel a giveaway without picking a winner",
		"giveaway",
		cancelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID of the giveaway",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// cancelHandler handles the /giveaway cancel command
func cancelHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	if err := engine.Get().Cancel(id); err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral("🚫 Giveaway cancelled. No winner will be selected.")
}

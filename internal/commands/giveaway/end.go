// Package giveaway - /giveaway end command
package giveaway

import (
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createEndCommand creates the /giveaway end subcommand
func createEndCommand() *discord.Command {
	return discord.NewCommand(
		"end",
		"End a giveaway now and pick a winner",
		"giveaway",
		endHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID of the giveaway",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// endHandler handles the /giveaway end command
func endHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	if err := engine.Get().EndEarly(id); err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral("🎉 Giveaway ended. The result has been announced.")
}

// Package prizelist - /prizelist remove command
package prizelist

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createRemoveCommand creates the /prizelist remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Delete a stored prize list",
		"prizelist",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier of the prize list",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// removeHandler handles the /prizelist remove command
func removeHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	name, err := engine.Get().RemovePrizeList(id)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🗑️ Prize list **%s** removed.", name))
}

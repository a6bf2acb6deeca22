// Package prize - /prize remove command
package prize

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createRemoveCommand creates the /prize remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Remove a prize from the catalog",
		"prize",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier of the prize to remove",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// removeHandler handles the /prize remove command
func removeHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	name, err := engine.Get().RemovePrize(id)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🗑️ Prize `%s` removed: **%s**", id, name))
}

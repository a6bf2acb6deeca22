// Package prize - /prize add command
package prize

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /prize add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Add a prize to the catalog",
		"prize",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier for the prize",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Display name of the prize",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// addHandler handles the /prize add command
func addHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")
	name := ctx.GetStringOption("name")

	if err := engine.Get().AddPrize(id, name); err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🎁 Prize `%s` added: **%s**", id, name))
}

// Package prizelist - /prizelist view command
package prizelist

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// maxViewLength keeps the embed body inside Discord's description limit.
const maxViewLength = 3800

// createViewCommand creates the /prizelist view subcommand
func createViewCommand() *discord.Command {
	return discord.NewCommand(
		"view",
		"Show the contents of a prize list",
		"prizelist",
		viewHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier of the prize list",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// viewHandler handles the /prizelist view command
func viewHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	content, err := engine.Get().PrizeListContent(id)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	truncated := false
	if len(content) > maxViewLength {
		content = content[:maxViewLength]
		truncated = true
	}

	description := fmt.Sprintf("```%s```", content)
	if truncated {
		description += "\n*(truncated)*"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📋 Prize list %s", id),
		Description: description,
		Color:       0x3498DB,
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

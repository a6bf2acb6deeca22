// Package prize - /prize assignlist command
package prize

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createAssignListCommand creates the /prize assignlist subcommand
func createAssignListCommand() *discord.Command {
	return discord.NewCommand(
		"assignlist",
		"Assign a stored prize list to a giveaway",
		"prize",
		assignListHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "giveaway",
			Description: "ID of the giveaway",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "list",
			Description: "ID of the prize list",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// assignListHandler handles the /prize assignlist command
func assignListHandler(ctx *discord.CommandContext) error {
	giveawayID := ctx.GetStringOption("giveaway")
	listID := ctx.GetStringOption("list")

	prizes, listName, err := engine.Get().AssignPrizeList(giveawayID, listID)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🎁 Assigned %d prizes from **%s** to the giveaway.", len(prizes), listName))
}

// Package media - /media attach command
package media

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createAttachCommand creates the /media attach subcommand
func createAttachCommand() *discord.Command {
	return discord.NewCommand(
		"attach",
		"Attach a stored GIF to a giveaway's result announcement",
		"media",
		attachHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "giveaway",
			Description: "ID of the giveaway",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "media",
			Description: "ID of the stored media",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// attachHandler handles the /media attach command
func attachHandler(ctx *discord.CommandContext) error {
	giveawayID := ctx.GetStringOption("giveaway")
	mediaID := ctx.GetStringOption("media")

	name, err := engine.Get().AttachMedia(giveawayID, mediaID)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🖼️ **%s** will be shown when the giveaway ends.", name))
}

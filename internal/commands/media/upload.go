// Package media - /media upload command
package media

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createUploadCommand creates the /media upload subcommand
func createUploadCommand() *discord.Command {
	return discord.NewCommand(
		"upload",
		"Store a celebration GIF for giveaway results",
		"media",
		uploadHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier for the media item",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Display name of the media item",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "file",
			Description: "GIF file to store",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// uploadHandler handles the /media upload command
func uploadHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")
	name := ctx.GetStringOption("name")

	attachment := ctx.GetAttachmentOption("file")
	if attachment == nil {
		return ctx.ReplyEphemeral("❌ You must attach a GIF file.")
	}
	if !strings.HasSuffix(strings.ToLower(attachment.Filename), ".gif") {
		return ctx.ReplyEphemeral("❌ Only `.gif` files are supported.")
	}

	if err := ctx.DeferEphemeral(); err != nil {
		return err
	}

	data, err := cmdutil.DownloadAttachment(attachment.URL)
	if err != nil {
		return ctx.EditReply(fmt.Sprintf("❌ Could not download the file: %v", err))
	}

	if err := engine.Get().AddMedia(id, name, ctx.User().ID, data); err != nil {
		return ctx.EditReply(cmdutil.ErrorMessage(err))
	}

	return ctx.EditReply(fmt.Sprintf("🖼️ Media **%s** stored as `%s`.", name, id))
}

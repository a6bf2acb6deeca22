// Package prizelist - /prizelist create command
package prizelist

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createCreateCommand creates the /prizelist create subcommand
func createCreateCommand() *discord.Command {
	return discord.NewCommand(
		"create",
		"Upload a text file of id:name prize entries",
		"prizelist",
		createHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Identifier for the prize list",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Display name of the prize list",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "file",
			Description: "Text file with one id:name entry per line",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// createHandler handles the /prizelist create command
func createHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")
	name := ctx.GetStringOption("name")

	attachment := ctx.GetAttachmentOption("file")
	if attachment == nil {
		return ctx.ReplyEphemeral("❌ You must attach a text file.")
	}
	if !strings.HasSuffix(strings.ToLower(attachment.Filename), ".txt") {
		return ctx.ReplyEphemeral("❌ The prize list must be a `.txt` file.")
	}

	if err := ctx.DeferEphemeral(); err != nil {
		return err
	}

	data, err := cmdutil.DownloadAttachment(attachment.URL)
	if err != nil {
		return ctx.EditReply(fmt.Sprintf("❌ Could not download the file: %v", err))
	}

	prizes, invalid, err := engine.Get().CreatePrizeList(id, name, ctx.User().ID, string(data))
	if err != nil {
		return ctx.EditReply(cmdutil.ErrorMessage(err))
	}

	reply := fmt.Sprintf("📋 Prize list **%s** created with %d prizes.", name, len(prizes))
	if len(invalid) > 0 {
		reply += fmt.Sprintf("\n⚠️ %d lines could not be parsed and were skipped.", len(invalid))
	}
	return ctx.EditReply(reply)
}

// Package media - /media list command
package media

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createListCommand creates the /media list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Show the stored celebration media",
		"media",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// listHandler handles the /media list command
func listHandler(ctx *discord.CommandContext) error {
	items := engine.Get().MediaItems()
	if len(items) == 0 {
		return ctx.ReplyEphemeral("No media has been uploaded yet.")
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("`%s`: %s\n", id, items[id].Name))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🖼️ Celebration Media",
		Description: sb.String(),
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d items", len(items))},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

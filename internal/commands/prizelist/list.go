// Package prizelist - /prizelist list command
package prizelist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createListCommand creates the /prizelist list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Show the stored prize lists",
		"prizelist",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// listHandler handles the /prizelist list command
func listHandler(ctx *discord.CommandContext) error {
	lists := engine.Get().PrizeLists()
	if len(lists) == 0 {
		return ctx.ReplyEphemeral("No prize lists have been stored yet.")
	}

	ids := make([]string, 0, len(lists))
	for id := range lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		meta := lists[id]
		sb.WriteString(fmt.Sprintf("`%s`: %s (%d prizes)\n", id, meta.Name, meta.PrizeCount))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📋 Prize Lists",
		Description: sb.String(),
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d lists", len(lists))},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

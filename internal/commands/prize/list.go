// Package prize - /prize list command
package prize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createListCommand creates the /prize list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Show the prize catalog",
		"prize",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// listHandler handles the /prize list command
func listHandler(ctx *discord.CommandContext) error {
	prizes := engine.Get().Prizes()
	if len(prizes) == 0 {
		return ctx.ReplyEphemeral("The prize catalog is empty.")
	}

	ids := make([]string, 0, len(prizes))
	for id := range prizes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("`%s`: %s\n", id, prizes[id]))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎁 Prize Catalog",
		Description: sb.String(),
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d prizes", len(prizes))},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

// Package giveaway - /giveaway participants command
package giveaway

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// maxListedParticipants caps the mention list so the embed stays
// within Discord's limits.
const maxListedParticipants = 40

// createParticipantsCommand creates the /giveaway participants subcommand
func createParticipantsCommand() *discord.Command {
	return discord.NewCommand(
		"participants",
		"Show who entered a giveaway",
		"giveaway",
		participantsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID of the giveaway",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// participantsHandler handles the /giveaway participants command
func participantsHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")

	g, err := engine.Get().Giveaway(id)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	if len(g.Participants) == 0 {
		return ctx.ReplyEphemeral("Nobody has entered this giveaway yet.")
	}

	var sb strings.Builder
	for i, userID := range g.Participants {
		if i == maxListedParticipants {
			sb.WriteString(fmt.Sprintf("... and %d more", len(g.Participants)-maxListedParticipants))
			break
		}
		sb.WriteString(fmt.Sprintf("<@%s>\n", userID))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎁 Participants of %s", g.Title),
		Description: sb.String(),
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d entries", len(g.Participants))},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

// Package prize - /prize assign command
package prize

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createAssignCommand creates the /prize assign subcommand
func createAssignCommand() *discord.Command {
	return discord.NewCommand(
		"assign",
		"Assign catalog prizes to a giveaway",
		"prize",
		assignHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "giveaway",
			Description: "ID of the giveaway",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prizes",
			Description: "Prize ids, e.g. 1,3,5-7",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// assignHandler handles the /prize assign command
func assignHandler(ctx *discord.CommandContext) error {
	giveawayID := ctx.GetStringOption("giveaway")
	spec := ctx.GetStringOption("prizes")

	resolved, missing, err := engine.Get().AssignPrizes(giveawayID, spec)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	reply := fmt.Sprintf("🎁 Assigned %d prizes to the giveaway.", len(resolved))
	if len(missing) > 0 {
		reply += fmt.Sprintf("\n⚠️ Unknown prize ids were skipped: `%s`", strings.Join(missing, "`, `"))
	}
	return ctx.ReplyEphemeral(reply)
}

// Package giveaway - /giveaway settime command
package giveaway

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// endTimeLayout is the accepted format for an exact end time.
const endTimeLayout = "02.01.2006 15:04"

// createSettimeCommand creates the /giveaway settime subcommand
func createSettimeCommand() *discord.Command {
	return discord.NewCommand(
		"settime",
		"Set an exact end time for a giveaway",
		"giveaway",
		settimeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID of the giveaway",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "time",
			Description: "New end time as DD.MM.YYYY HH:MM",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// settimeHandler handles the /giveaway settime command
func settimeHandler(ctx *discord.CommandContext) error {
	id := ctx.GetStringOption("id")
	raw := ctx.GetStringOption("time")

	newEnd, err := time.ParseInLocation(endTimeLayout, raw, time.Local)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Invalid time format. Use `DD.MM.YYYY HH:MM`, for example `31.12.2026 18:00`.")
	}

	if err := engine.Get().Reschedule(id, newEnd); err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("⏰ Giveaway rescheduled. It now ends <t:%d:R>.", newEnd.Unix()))
}

// Package giveaway - /giveaway create command
package giveaway

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands/cmdutil"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	engine "github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/bwmarrin/discordgo"
)

// createCreateCommand creates the /giveaway create subcommand
func createCreateCommand() *discord.Command {
	return discord.NewCommand(
		"create",
		"Start a new giveaway in this channel",
		"giveaway",
		createHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Title of the giveaway",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "hours",
			Description: "Hours until the giveaway ends",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutes",
			Description: "Additional minutes until the giveaway ends",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Description shown in the announcement",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// createHandler handles the /giveaway create command
func createHandler(ctx *discord.CommandContext) error {
	title := ctx.GetStringOption("title")
	description := ctx.GetStringOption("description")
	hours := ctx.GetIntOption("hours")
	minutes := ctx.GetIntOption("minutes")

	// A zero total duration is rejected by the engine
	g, err := engine.Get().Create(
		title,
		description,
		time.Duration(hours)*time.Hour+time.Duration(minutes)*time.Minute,
		ctx.User().ID,
		ctx.Interaction.GuildID,
		ctx.Interaction.ChannelID,
	)
	if err != nil {
		return ctx.ReplyEphemeral(cmdutil.ErrorMessage(err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🎁 Giveaway created! It ends <t:%d:R>.\nID: `%s`", g.EndTime, g.ID))
}

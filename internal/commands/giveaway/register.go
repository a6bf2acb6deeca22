// Package giveaway provides giveaway lifecycle commands organized as
// subcommands under /giveaway. Each command is in its own file.
package giveaway

import (
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
)

// RegisterGiveawayCommands registers all giveaway commands as /giveaway
// subcommands, plus the join button handler.
func RegisterGiveawayCommands(client *discord.ExtendedClient) {
	createCmd := createCreateCommand()
	endCmd := createEndCommand()
	cancelCmd := createCancelCommand()
	settimeCmd := createSettimeCommand()
	participantsCmd := createParticipantsCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"giveaway",
		"Giveaway management",
		createCmd,
		endCmd,
		cancelCmd,
		settimeCmd,
		participantsCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)

	client.RegisterComponent(discord.JoinCustomIDPrefix, joinHandler)
}

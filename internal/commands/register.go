// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/giveaway"
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/media"
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/prize"
	"github.com/PancyStudios/MysteryBoxGo/internal/commands/prizelist"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Giveaway lifecycle (/giveaway create, end, cancel, settime, participants)
	giveaway.RegisterGiveawayCommands(client)

	// Prize catalog (/prize add, remove, list, assign, assignlist)
	prize.RegisterPrizeCommands(client)

	// Prize list files (/prizelist create, list, view, remove)
	prizelist.RegisterPrizeListCommands(client)

	// Celebration media (/media upload, list, attach)
	media.RegisterMediaCommands(client)
}

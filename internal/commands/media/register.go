// Package media provides celebration media commands organized as
// subcommands under /media. Each command is in its own file.
package media

import (
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
)

// RegisterMediaCommands registers all media commands as /media subcommands
func RegisterMediaCommands(client *discord.ExtendedClient) {
	uploadCmd := createUploadCommand()
	listCmd := createListCommand()
	attachCmd := createAttachCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"media",
		"Celebration media management",
		uploadCmd,
		listCmd,
		attachCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}

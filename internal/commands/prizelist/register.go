// Package prizelist provides prize list file commands organized as
// subcommands under /prizelist. Each command is in its own file.
package prizelist

import (
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
)

// RegisterPrizeListCommands registers all prize list commands as
// /prizelist subcommands
func RegisterPrizeListCommands(client *discord.ExtendedClient) {
	createCmd := createCreateCommand()
	listCmd := createListCommand()
	viewCmd := createViewCommand()
	removeCmd := createRemoveCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"prizelist",
		"Prize list management",
		createCmd,
		listCmd,
		viewCmd,
		removeCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}

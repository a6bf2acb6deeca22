// Package prize provides prize catalog commands organized as subcommands
// under /prize. Each command is in its own file.
package prize

import (
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
)

// RegisterPrizeCommands registers all prize commands as /prize subcommands
func RegisterPrizeCommands(client *discord.ExtendedClient) {
	addCmd := createAddCommand()
	removeCmd := createRemoveCommand()
	listCmd := createListCommand()
	assignCmd := createAssignCommand()
	assignListCmd := createAssignListCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"prize",
		"Prize catalog management",
		addCmd,
		removeCmd,
		listCmd,
		assignCmd,
		assignListCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}

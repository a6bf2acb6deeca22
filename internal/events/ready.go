// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
	client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Connected to %d guilds", len(r.Guilds)), "Ready")

	err := s.UpdateGameStatus(0, "🎁 /giveaway create")
	if err != nil {
		logger.Error(fmt.Sprintf("Error setting status: %v", err), "Ready")
		return
	}

	logger.Debug("Bot status set", "Ready")
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}

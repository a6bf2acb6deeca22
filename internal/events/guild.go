// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/config"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server. Guilds outside
// the whitelist are left immediately.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !config.Get().GuildAllowed(g.ID) {
		logger.Warn(fmt.Sprintf("⛔ Leaving unauthorized guild: %s (ID: %s)", g.Name, g.ID), "Guild")
		if err := s.GuildLeave(g.ID); err != nil {
			logger.Error(fmt.Sprintf("Error leaving guild %s: %v", g.ID, err), "Guild")
		}
		return
	}

	// Skip the initial GuildCreate burst on connect
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot added to guild: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "Thanks for adding me! 🎁",
			Description: "Hi, I'm **MysteryBox**. Use `/giveaway create` to start your first giveaway.",
			Color:       0x2ECC71,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🎁 MysteryBox Go",
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed)
		if err != nil {
			logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Guild")
		}
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removed from guild ID: %s", g.ID), "Guild")
}

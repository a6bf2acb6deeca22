// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, shard).
package events

import (
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave, whitelist enforcement)
	RegisterGuildEvents(client)

	// Shard events (disconnect/resume)
	RegisterShardEvents(client)

	logger.Success("✅ All events registered.", "Events")
}

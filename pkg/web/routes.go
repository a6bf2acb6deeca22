// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	"github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/PancyStudios/MysteryBoxGo/pkg/storage"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, store storage.Store) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler(store))
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/giveaways", giveawaysHandler)
		api.GET("/giveaways/:id", giveawayHandler)
	}
}

// statusHandler returns the bot and storage status
func statusHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := discord.Get()

		storeStatus, storeOnline := store.Status()

		botOnline := false
		if client != nil {
			botOnline = client.IsReady()
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"storage": gin.H{
				"status":   storeStatus,
				"isOnline": storeOnline,
			},
			"bot": gin.H{
				"isOnline": botOnline,
			},
		})
	}
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MysteryBox Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// giveawaysHandler lists the currently open giveaways
func giveawaysHandler(c *gin.Context) {
	engine := giveaway.Get()
	if engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Engine not initialized",
		})
		return
	}

	active := engine.ActiveGiveaways()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(active),
		"giveaways": active,
	})
}

// giveawayHandler returns a single giveaway record
func giveawayHandler(c *gin.Context) {
	engine := giveaway.Get()
	if engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Engine not initialized",
		})
		return
	}

	g, err := engine.Giveaway(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Giveaway not found",
		})
		return
	}
	c.JSON(http.StatusOK, g)
}

// Package main is the entry point for the MysteryBox Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/MysteryBoxGo/internal/commands"
	"github.com/PancyStudios/MysteryBoxGo/internal/events"
	"github.com/PancyStudios/MysteryBoxGo/pkg/config"
	"github.com/PancyStudios/MysteryBoxGo/pkg/database"
	"github.com/PancyStudios/MysteryBoxGo/pkg/discord"
	"github.com/PancyStudios/MysteryBoxGo/pkg/errors"
	"github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/mqtt"
	"github.com/PancyStudios/MysteryBoxGo/pkg/storage"
	"github.com/PancyStudios/MysteryBoxGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting MysteryBox Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Select the storage backend
	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error initializing storage: %v", err), "Main")
		os.Exit(1)
	}
	defer cleanup()

	// Initialize the giveaway engine
	engine, err := giveaway.Init(store)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading giveaway state: %v", err), "Main")
		os.Exit(1)
	}
	defer engine.Stop()

	// Initialize MQTT event mirroring when a broker is configured
	if cfg.MQTTHost != "" {
		mqttClientID := "mysterybox"
		if !cfg.IsProd() {
			mqttClientID = "mysterybox_canary"
		}

		mqttClient := mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		defer mqttClient.Destroy()

		engine.AddListener(mqtt.NewEventMirror(mqttClient))
		mqtt.RegisterQueries(mqttClient, engine)
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, store)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// The announcer turns engine events into Discord messages
	engine.AddListener(discord.NewAnnouncer(discordClient, engine))

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	// Re-arm timers for open giveaways and resolve the ones that ended
	// while the bot was offline
	engine.Recover()

	logger.Success("MysteryBox Go started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down MysteryBox Go...", "Main")
}

// buildStore creates the configured storage backend. The cleanup
// function disconnects backends that hold connections.
func buildStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case "mongo":
		db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
		if err != nil {
			return nil, func() {}, err
		}
		cleanup := func() {
			if err := db.Disconnect(); err != nil {
				logger.Error(fmt.Sprintf("Error disconnecting database: %v", err), "Main")
			}
		}
		return database.NewMongoStore(db), cleanup, nil
	default:
		store, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() {}, nil
	}
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}

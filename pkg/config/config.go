// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string

	// Guilds the bot is allowed to operate in. Empty means no restriction.
	AllowedGuildIDs []string

	// Storage
	DataDir        string
	StorageBackend string // "file" or "mongo"
	MongoDBURL     string
	DBName         string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string
	DebugMode   bool

	// Webhooks
	ErrorWebhook      string
	LogsWebhook       string
	LogsWebServerHook string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Today"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:        getEnv("botToken", ""),
		DevGuildID:      getEnv("devGuildId", ""),
		AllowedGuildIDs: splitList(getEnv("allowedGuildIds", "")),

		// Storage
		DataDir:        getEnv("dataDir", "data"),
		StorageBackend: getEnv("storageBackend", "file"),
		MongoDBURL:     getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:         getEnv("dbName", "MysteryBox"),

		// MQTT (event mirroring is disabled when no host is configured)
		MQTTHost:     getEnv("MQTT_Host", ""),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),
		DebugMode:   strings.EqualFold(getEnv("DEBUG_MODE", "false"), "true"),

		// Webhooks
		ErrorWebhook:      getEnv("errorWebhook", ""),
		LogsWebhook:       getEnv("logsWebhook", ""),
		LogsWebServerHook: getEnv("logsWebServerWebhook", ""),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated env value into trimmed entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// GuildAllowed reports whether the bot may operate in the given guild.
// The whitelist is bypassed in debug mode.
func (c *Config) GuildAllowed(guildID string) bool {
	if c.DebugMode || len(c.AllowedGuildIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedGuildIDs {
		if id == guildID {
			return true
		}
	}
	return false
}

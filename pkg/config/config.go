// Package config carrega a configuração do bot a partir de variáveis
// de ambiente (com suporte a arquivo .env).
package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken       string
	DevGuildID     string
	DevUserID      string
	PrimaryGuildID string

	// Canais fixos
	AnnounceChannelID string
	LogChannelID      string

	// MongoDB
	MongoDBURL string
	DBName     string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string

	// Lavalink (rádio)
	RadioNodeHost     string
	RadioNodePort     string
	RadioNodePassword string
}

var (
	Version   = "dev-local"
	BuildTime = "hoje"
)

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
	// Ignora o erro se o .env não existir
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:       getEnv("botToken", ""),
		DevGuildID:     getEnv("devGuildId", ""),
		DevUserID:      getEnv("devUserId", ""),
		PrimaryGuildID: getEnv("guildId", ""),

		// Canais
		AnnounceChannelID: getEnv("canalAnuncios", ""),
		LogChannelID:      getEnv("canalLogs", ""),

		// MongoDB
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "Ignis"),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", "localhost"),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),

		// Lavalink
		RadioNodeHost:     getEnv("radioNode", "localhost"),
		RadioNodePort:     getEnv("radioNodePort", "2333"),
		RadioNodePassword: getEnv("radioNodePassword", ""),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
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

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

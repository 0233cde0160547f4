package config

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// APIKeySecret is the name of the secret holding the provider API key.
const APIKeySecret = "GROQ_API_KEY"

type Config struct {
	Port    string
	GinMode string

	// Logging
	LogLevel  string
	LogFormat string

	// CORS
	CORSAllowedOrigins string

	// Server
	ServerShutdownTimeoutSeconds int
	SessionIdleTimeoutMinutes    int

	// Secrets is the preconfigured secret store. Values set in the
	// environment override the file.
	Secrets map[string]string `yaml:"secrets"`

	Provider ProviderConfig `yaml:"provider"`
	UI       UIConfig       `yaml:"ui"`
}

// ProviderConfig points the completion client at a chat-completions API.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
}

// UIConfig holds display-only settings.
type UIConfig struct {
	Tips []string `yaml:"tips"`
}

const DefaultBaseURL = "https://api.groq.com/openai/v1"

var DefaultTips = []string{
	"Keep input text under 2000 words",
	"Use clear, structured content",
	"Refresh if timeout occurs",
}

// LoadConfig reads .env, the environment and the optional YAML settings file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),

		CORSAllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080"),

		ServerShutdownTimeoutSeconds: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 30),
		SessionIdleTimeoutMinutes:    getEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 60),
	}

	configFilePath := getEnvOrDefault("CONFIG_FILE", "config.yaml")
	configFile, err := os.Open(configFilePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", configFilePath)
	case err != nil:
		return nil, err
	default:
		defer configFile.Close()
		if err := LoadConfigFile(configFile, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if _, ok := cfg.Secret(APIKeySecret); !ok {
		log.Printf("Warning: %s is not configured. Users will be asked for a key.", APIKeySecret)
	}

	return cfg, nil
}

// LoadConfigFile decodes YAML settings into config.
func LoadConfigFile(reader io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Secret implements the credential secret store.
func (c *Config) Secret(name string) (string, bool) {
	v := strings.TrimSpace(c.Secrets[name])
	return v, v != ""
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(APIKeySecret); v != "" {
		if c.Secrets == nil {
			c.Secrets = make(map[string]string)
		}
		c.Secrets[APIKeySecret] = v
	}
	if v := os.Getenv("COMPLETION_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultBaseURL
	}
	if len(c.UI.Tips) == 0 {
		c.UI.Tips = DefaultTips
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as int, using default %d: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}

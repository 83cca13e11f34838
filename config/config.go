package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultModelID must stay on the cheap tier. The orchestrator carries its
// own pinned copy and refuses to run when the configured model drifts from
// it, so editing only this value takes the service down on purpose.
const defaultModelID = "gemini-2.0-flash-lite"

// Config holds all server configuration
type Config struct {
	Port            int
	WSPort          int    // Port for the WebSocket server (used when ServerType is "both")
	ServerType      string // "http", "websocket", or "both"
	RedisURL        string
	RedisPassword   string
	SessionTTL      time.Duration
	GeminiAPIKey    string
	GeminiModel     string
	AllowedOrigins  []string
	InquiryTriggers []string // trigger names routed to inquiry mode
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	config := &Config{
		Port:           8080,
		WSPort:         8081,
		ServerType:     "http",
		RedisURL:       "localhost:6379",
		RedisPassword:  "",
		SessionTTL:     30 * time.Minute,
		GeminiModel:    defaultModelID,
		AllowedOrigins: []string{"*"},
	}

	// Required: GEMINI_API_KEY
	config.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	// Optional: GEMINI_MODEL (anything but the pinned default is refused
	// downstream; the knob exists so the drift is visible, not usable)
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.GeminiModel = model
	}

	// Optional: PORT
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		config.Port = p
	}

	// Optional: WS_PORT (used when SERVER_TYPE is "both")
	if wsPort := os.Getenv("WS_PORT"); wsPort != "" {
		p, err := strconv.Atoi(wsPort)
		if err != nil {
			return nil, fmt.Errorf("invalid WS_PORT: %w", err)
		}
		config.WSPort = p
	}

	// Optional: SERVER_TYPE ("http", "websocket", or "both")
	if serverType := os.Getenv("SERVER_TYPE"); serverType != "" {
		switch serverType {
		case "http", "websocket", "both":
			config.ServerType = serverType
		default:
			return nil, fmt.Errorf("invalid SERVER_TYPE: must be 'http', 'websocket', or 'both'")
		}
	}

	// Optional: REDIS_URL
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		config.RedisURL = redisURL
	}

	// Optional: REDIS_PASSWORD
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.RedisPassword = redisPassword
	}

	// Optional: SESSION_TTL (in minutes)
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		t, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		config.SessionTTL = time.Duration(t) * time.Minute
	}

	// Optional: ALLOWED_ORIGINS (comma-separated)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = strings.Split(origins, ",")
	}

	// Optional: INQUIRY_TRIGGERS (comma-separated trigger names)
	if triggers := os.Getenv("INQUIRY_TRIGGERS"); triggers != "" {
		config.InquiryTriggers = strings.Split(triggers, ",")
	}

	return config, nil
}

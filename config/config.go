package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"smart-hostel/pkg/token"
	util "smart-hostel/pkg/utils"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type AppConfig struct {
	Port            string
	StoreDriver     string
	MONGOSTRING     string
	DBName          string
	TokenFormat     string
	PASETO_SECRET   string
	JWTSecret       string
	Location        *time.Location
	CORSOrigins     []string
	GateDevicesFile string
	QRSize          int
	SeedDemoUsers   bool
}

// LoadConfig loads configuration from the .env file and the environment.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	cfg := &AppConfig{
		Port:            getEnv("PORT", "3000"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MONGOSTRING:     getEnv("MONGOSTRING", ""),
		DBName:          getEnv("DB_NAME", "smart_hostel"),
		TokenFormat:     strings.ToLower(getEnv("TOKEN_FORMAT", token.FormatPaseto)),
		PASETO_SECRET:   getEnv("PASETO_SECRET", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		GateDevicesFile: getEnv("GATE_DEVICES_FILE", ""),
	}

	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.QRSize, err = strconv.Atoi(getEnv("QR_SIZE", "256"))
	if err != nil || cfg.QRSize < 64 {
		return nil, fmt.Errorf("QR_SIZE must be an integer of at least 64, got %q", os.Getenv("QR_SIZE"))
	}

	cfg.SeedDemoUsers, err = strconv.ParseBool(getEnv("SEED_DEMO_USERS", "false"))
	if err != nil {
		return nil, fmt.Errorf("SEED_DEMO_USERS: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *AppConfig) validate() error {
	switch cfg.StoreDriver {
	case StoreMongo:
		if cfg.MONGOSTRING == "" {
			return fmt.Errorf("MONGOSTRING is required when STORE_DRIVER=%s", StoreMongo)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMongo, StoreMemory, cfg.StoreDriver)
	}

	switch cfg.TokenFormat {
	case token.FormatPaseto:
		if cfg.PASETO_SECRET == "" {
			key, err := util.GenerateBase64Key(32)
			if err != nil {
				return err
			}
			log.Println("Warning: PASETO_SECRET is not set, using an ephemeral key. Tokens will not survive a restart.")
			cfg.PASETO_SECRET = key
		}
		secretBytes, err := util.DecodeBase64Key(cfg.PASETO_SECRET)
		if err != nil {
			return fmt.Errorf("PASETO_SECRET: %w", err)
		}
		if len(secretBytes) != 32 {
			return fmt.Errorf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
		}
	case token.FormatJWT:
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when TOKEN_FORMAT=%s", token.FormatJWT)
		}
	default:
		return fmt.Errorf("TOKEN_FORMAT must be %q or %q, got %q", token.FormatPaseto, token.FormatJWT, cfg.TokenFormat)
	}
	return nil
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

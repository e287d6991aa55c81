package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	DraftDebounce  time.Duration
	MaxUploadBytes int64
	EnvFile        string
}

// Defaults
const (
	DefaultPort           = 3318
	DefaultDatabaseURL    = "file:invoice-entry.db"
	DefaultDraftDebounce  = time.Second
	DefaultMaxUploadBytes = 20 << 20
)

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("invoice-entry", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Form behaviour
	fs.DurationVar(&cfg.DraftDebounce, "debounce", 0, "Quiet period before a draft is saved")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", 0, "Maximum PDF upload size in bytes")

	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DraftDebounce == 0 {
		if s := os.Getenv("DRAFT_DEBOUNCE"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid DRAFT_DEBOUNCE env variable")
			}
			cfg.DraftDebounce = d
		} else {
			cfg.DraftDebounce = DefaultDraftDebounce
		}
	}
	if cfg.DraftDebounce < 0 {
		return Config{}, errors.New("draft debounce must not be negative")
	}

	if cfg.MaxUploadBytes == 0 {
		if s := os.Getenv("MAX_UPLOAD_BYTES"); s != "" {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid MAX_UPLOAD_BYTES env variable")
			}
			cfg.MaxUploadBytes = n
		} else {
			cfg.MaxUploadBytes = DefaultMaxUploadBytes
		}
	}
	if cfg.MaxUploadBytes < 0 {
		return Config{}, errors.New("max upload size must not be negative")
	}

	return cfg, nil
}

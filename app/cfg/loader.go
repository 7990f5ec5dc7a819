package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for admin endpoints (optional)"`

	// Extraction service configuration
	GeminiAPIKey  string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key (required)" required:"true"`
	GeminiModel   string `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-3-flash-preview" description:"Gemini model used for extraction"`
	GeminiBaseURL string `long:"gemini-base-url" env:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta" description:"Gemini API base URL"`

	// Ingestion configuration
	SourcesFile       string `long:"sources-file" env:"SOURCES_FILE" default:"./sources.yml" description:"YAML file listing feed sources"`
	RelayURL          string `long:"relay-url" env:"RELAY_URL" default:"https://api.allorigins.win/get" description:"Cross-origin relay endpoint for feed fetches (empty disables the relay)"`
	SyncInterval      int    `long:"sync-interval" env:"SYNC_INTERVAL" default:"1800" description:"Sync cycle interval in seconds"`
	SourceItemLimit   int    `long:"source-item-limit" env:"SOURCE_ITEM_LIMIT" default:"5" description:"Maximum feed entries processed per source per cycle"`
	HTTPTimeout       int    `long:"http-timeout" env:"HTTP_TIMEOUT" default:"60" description:"HTTP request timeout in seconds"`
	LogSourceFailures bool   `long:"log-source-failures" env:"LOG_SOURCE_FAILURES" description:"Log per-source fetch failures at debug level instead of skipping silently"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"JobSync/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Asia/Kolkata)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		APIAccessKey:      raw.APIAccessKey,
		GeminiAPIKey:      raw.GeminiAPIKey,
		GeminiModel:       raw.GeminiModel,
		GeminiBaseURL:     raw.GeminiBaseURL,
		SourcesFile:       raw.SourcesFile,
		RelayURL:          raw.RelayURL,
		SyncInterval:      raw.SyncInterval,
		SourceItemLimit:   raw.SourceItemLimit,
		HTTPTimeout:       raw.HTTPTimeout,
		LogSourceFailures: raw.LogSourceFailures,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	AppName   string `json:"app_name" toml:"app_name"`
	LogLevel  string `json:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" toml:"log_format"`

	Notion NotionConfig `json:"notion" toml:"notion"`
	Sheet  SheetConfig  `json:"sheet" toml:"sheet"`
	Sync   SyncConfig   `json:"sync" toml:"sync"`
}

type NotionConfig struct {
	Token      string `json:"token" toml:"token"`
	DatabaseID string `json:"database_id" toml:"database_id"`
}

type SheetConfig struct {
	SpreadsheetID string `json:"spreadsheet_id" toml:"spreadsheet_id"`
	StartRange    string `json:"start_range" toml:"start_range"`
	// CredentialsJSON holds the service account blob verbatim.
	// CredentialsFile is read into it at load time when set.
	CredentialsJSON string `json:"credentials_json" toml:"credentials_json"`
	CredentialsFile string `json:"credentials_file" toml:"credentials_file"`
}

type SyncConfig struct {
	LookbackSeconds int           `json:"lookback_seconds" toml:"lookback_seconds"`
	PageSize        int           `json:"page_size" toml:"page_size"`
	Fields          []FieldConfig `json:"fields" toml:"fields"`
}

// FieldConfig maps one logical field to a source property name. Date
// fields get their value normalized to M/D/YYYY after extraction.
type FieldConfig struct {
	Key      string `json:"key" toml:"key"`
	Property string `json:"property" toml:"property"`
	Date     bool   `json:"date" toml:"date"`
}

// ConfigurationError reports required settings that are missing. It is
// returned before any I/O happens.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required settings: %s", strings.Join(e.Missing, ", "))
}

// DefaultFields mirrors the source database's display names. Each entry
// can be overridden in the config file without disturbing the others.
var DefaultFields = []FieldConfig{
	{Key: "company", Property: "企業名"},
	{Key: "active", Property: "Active Flag"},
	{Key: "add_date", Property: "Add Date"},
	{Key: "state", Property: "State"},
	{Key: "process", Property: "Process of VCM"},
	{Key: "category", Property: "Category"},
	{Key: "hq", Property: "HQ"},
	{Key: "opp_date", Property: "Opportunity Date", Date: true},
	{Key: "contacted", Property: "Contacted Date", Date: true},
	{Key: "negotiation", Property: "In Negotiation Date", Date: true},
	{Key: "collaboration", Property: "In Collaboration Date", Date: true},
	{Key: "closed", Property: "Closed Date", Date: true},
	{Key: "discover", Property: "Discover Date", Date: true},
	{Key: "assess", Property: "Assess Date", Date: true},
	{Key: "purchase", Property: "Purchase Date", Date: true},
	{Key: "pilot", Property: "Pilot Date", Date: true},
	{Key: "adopt", Property: "Adopt Date", Date: true},
}

var DefaultConfig = Config{
	AppName:   "pagesync",
	LogLevel:  "info",
	LogFormat: "console",
	Sheet: SheetConfig{
		StartRange: "Raw!A1",
	},
	Sync: SyncConfig{
		LookbackSeconds: 5,
		PageSize:        100,
	},
}

// LoadFromFile reads a TOML or JSON config file, applies defaults and
// environment overrides, and resolves the credentials file if any.
// Pass an empty path to run on environment variables alone.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		switch {
		case strings.HasSuffix(path, ".json"):
			if err := json.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse JSON config: %w", err)
			}
		case strings.HasSuffix(path, ".toml"):
			if _, err := toml.Decode(string(data), &config); err != nil {
				return nil, fmt.Errorf("failed to parse TOML config: %w", err)
			}
		default:
			return nil, fmt.Errorf("unsupported config file format: %s", path)
		}
	}

	config.applyEnv()

	if len(config.Sync.Fields) == 0 {
		config.Sync.Fields = DefaultFields
	}

	if config.Sheet.CredentialsJSON == "" && config.Sheet.CredentialsFile != "" {
		blob, err := os.ReadFile(config.Sheet.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		config.Sheet.CredentialsJSON = string(blob)
	}

	return &config, nil
}

// Environment variables override file values so secrets can stay out of
// the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("PAGESYNC_NOTION_TOKEN"); v != "" {
		c.Notion.Token = v
	}
	if v := os.Getenv("PAGESYNC_NOTION_DATABASE_ID"); v != "" {
		c.Notion.DatabaseID = v
	}
	if v := os.Getenv("PAGESYNC_SHEETS_ID"); v != "" {
		c.Sheet.SpreadsheetID = v
	}
	if v := os.Getenv("PAGESYNC_SHEETS_RANGE"); v != "" {
		c.Sheet.StartRange = v
	}
	if v := os.Getenv("PAGESYNC_GOOGLE_CREDENTIALS"); v != "" {
		c.Sheet.CredentialsJSON = v
	}
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Notion.Token == "" {
		missing = append(missing, "notion.token")
	}
	if c.Notion.DatabaseID == "" {
		missing = append(missing, "notion.database_id")
	}
	if c.Sheet.SpreadsheetID == "" {
		missing = append(missing, "sheet.spreadsheet_id")
	}
	if c.Sheet.CredentialsJSON == "" {
		missing = append(missing, "sheet.credentials_json")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

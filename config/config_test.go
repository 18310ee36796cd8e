package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFileTOML(t *testing.T) {
	path := writeFile(t, "pagesync.toml", `
log_level = "debug"

[notion]
token = "secret"
database_id = "db-1"

[sheet]
spreadsheet_id = "sheet-1"

[sync]
lookback_seconds = 10

[[sync.fields]]
key = "company"
property = "Company Name"

[[sync.fields]]
key = "closed"
property = "Closed Date"
date = true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "db-1", cfg.Notion.DatabaseID)
	assert.Equal(t, 10, cfg.Sync.LookbackSeconds)
	// Defaults survive partial files.
	assert.Equal(t, "Raw!A1", cfg.Sheet.StartRange)
	assert.Equal(t, 100, cfg.Sync.PageSize)

	require.Len(t, cfg.Sync.Fields, 2)
	assert.Equal(t, FieldConfig{Key: "closed", Property: "Closed Date", Date: true}, cfg.Sync.Fields[1])
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "pagesync.json", `{"notion": {"token": "t", "database_id": "db"}}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "t", cfg.Notion.Token)
	assert.Equal(t, DefaultFields, cfg.Sync.Fields)
}

func TestLoadFromFileUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "pagesync.yaml", "log_level: debug")
	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PAGESYNC_NOTION_TOKEN", "env-token")
	t.Setenv("PAGESYNC_SHEETS_ID", "env-sheet")

	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Notion.Token)
	assert.Equal(t, "env-sheet", cfg.Sheet.SpreadsheetID)
}

func TestCredentialsFileResolved(t *testing.T) {
	credsPath := writeFile(t, "sa.json", `{"type":"service_account"}`)
	path := writeFile(t, "pagesync.toml", `
[sheet]
credentials_file = "`+credsPath+`"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, cfg.Sheet.CredentialsJSON)
}

func TestValidateReportsAllMissing(t *testing.T) {
	cfg := DefaultConfig

	err := cfg.Validate()
	require.Error(t, err)

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{
		"notion.token",
		"notion.database_id",
		"sheet.spreadsheet_id",
		"sheet.credentials_json",
	}, cerr.Missing)
}

func TestValidateComplete(t *testing.T) {
	cfg := DefaultConfig
	cfg.Notion = NotionConfig{Token: "t", DatabaseID: "db"}
	cfg.Sheet.SpreadsheetID = "s"
	cfg.Sheet.CredentialsJSON = "{}"

	assert.NoError(t, cfg.Validate())
}

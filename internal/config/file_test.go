package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":        "json-key",
			"token_issuer":          "json-issuer",
			"token_duration":        "30m",
			"password_hash_cost":    8,
			"strict_note_ownership": true,
		},
		"storage": map[string]any{"driver": "sqlite", "database_dsn": "file:notes.db"},
		"server":  map[string]any{"address": ":7000", "request_timeout": "5s", "log_level": "info"},
		"adapter": map[string]any{"address": "http://localhost:7000", "request_timeout": "3s"},
	})

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 8, cfg.App.PasswordHashCost)
	assert.True(t, cfg.App.StrictNoteOwnership)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://localhost:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, name, `
app:
  token_sign_key: yaml-key
  token_duration: 90m
storage:
  database_dsn: postgres://localhost/notes
server:
  allowed_origin: https://notes.example.com
`)
			cfg, err := parseFile(path)
			require.NoError(t, err)
			assert.Equal(t, "yaml-key", cfg.App.TokenSignKey)
			assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
			assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
			assert.Equal(t, "https://notes.example.com", cfg.Server.AllowedOrigin)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantIsErr error
	}{
		{name: "malformed json", file: "bad.json", content: "{not json", wantIsErr: ErrInvalidConfigFile},
		{name: "malformed yaml", file: "bad.yaml", content: "app: [", wantIsErr: ErrInvalidConfigFile},
		{name: "bad duration", file: "dur.json", content: `{"app":{"token_duration":"eventually"}}`, wantIsErr: ErrInvalidConfigFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			_, err := parseFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIsErr)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile("/no/such/config.json")
	assert.Error(t, err)
}

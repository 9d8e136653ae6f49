package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it can be written as "30s" or "1h" in
// configuration files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return d.set(s)
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	return d.set(s)
}

func (d *Duration) set(s string) error {
	if s == "" {
		d.Duration = 0
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// fileConfig mirrors [StructuredConfig] with the field names used in
// configuration files.
type fileConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration       Duration `json:"token_duration" yaml:"token_duration"`
		PasswordHashCost    int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		StrictNoteOwnership bool     `json:"strict_note_ownership" yaml:"strict_note_ownership"`
	} `json:"app" yaml:"app"`
	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		DSN    string `json:"database_dsn" yaml:"database_dsn"`
	} `json:"storage" yaml:"storage"`
	Server struct {
		Address        string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		AllowedOrigin  string   `json:"allowed_origin" yaml:"allowed_origin"`
		LogLevel       string   `json:"log_level" yaml:"log_level"`
	} `json:"server" yaml:"server"`
	Adapter struct {
		Address        string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`
}

// parseFile reads the configuration file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfigFile, path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:        fc.App.TokenSignKey,
			TokenIssuer:         fc.App.TokenIssuer,
			TokenDuration:       fc.App.TokenDuration.Duration,
			PasswordHashCost:    fc.App.PasswordHashCost,
			StrictNoteOwnership: fc.App.StrictNoteOwnership,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.Driver,
				DSN:    fc.Storage.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.Address,
			RequestTimeout: fc.Server.RequestTimeout.Duration,
			AllowedOrigin:  fc.Server.AllowedOrigin,
			LogLevel:       fc.Server.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.Address,
			RequestTimeout: fc.Adapter.RequestTimeout.Duration,
		},
	}
}

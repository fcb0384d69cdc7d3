package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pakk/internal/envfile"
	"github.com/conn-castle/pakk/internal/messages"
	"github.com/conn-castle/pakk/internal/templates"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// validation problems from other load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads pakk.toml and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// LoadTemplate returns the embedded default pakk.toml as a validated Config.
func LoadTemplate() (*Config, error) {
	data, err := templates.Read(FileName)
	if err != nil {
		return nil, err
	}
	return Parse(data, "template "+FileName)
}

// Parse parses and validates TOML config data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigValidationPrefixFmt, ErrConfigValidation, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(messages.ConfigValidationPrefixFmt, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores, usually typos
// of optional keys.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// LoadEnv reads .pakk.env into a key-value map restricted to the PAKK_
// namespace. Secrets such as feed API keys live here rather than in
// pakk.toml so the config file can be committed.
func LoadEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return filterPakkEnv(env), nil
}

func filterPakkEnv(env map[string]string) map[string]string {
	if len(env) == 0 {
		return env
	}
	filtered := make(map[string]string, len(env))
	for key, value := range env {
		if strings.HasPrefix(key, "PAKK_") {
			filtered[key] = value
		}
	}
	return filtered
}

// Env keys recognized by ApplyEnv.
const (
	EnvAPIKey = "PAKK_API_KEY"
	EnvSource = "PAKK_SOURCE"
)

// ApplyEnv overlays .pakk.env values onto the config. Env values win over
// pakk.toml so a checked-in config never has to carry credentials.
func (c *Config) ApplyEnv(env map[string]string) {
	if key, ok := env[EnvAPIKey]; ok && key != "" {
		c.ApiKeyCommand.Key = key
	}
	if src, ok := env[EnvSource]; ok && src != "" {
		c.Sources = append(c.Sources, Source{Name: "env", URL: src})
	}
}

// Package config loads the per-experiment settings: which protocol vocabulary
// applies, which agent stands in for unattributed rows, and which role a row
// gets when the loaded table does not name one.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jtomasevic/graphedit/pkg/act"
)

var ErrConfig = errors.New("config error")

type Config struct {
	// Protocol is "A"/"suggestion" or "B"/"instruction".
	Protocol string `yaml:"protocol"`

	DefaultAgent string `yaml:"default_agent"`

	// DefaultRole is used for rows without a role column, typically the
	// executor's physical log.
	DefaultRole string `yaml:"default_role"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Protocol:     string(act.ProtocolInstruction),
		DefaultAgent: act.DefaultAgent,
		DefaultRole:  string(act.Do),
		LogLevel:     "info",
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	vocab, err := act.VocabularyFor(c.Protocol)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if strings.TrimSpace(c.DefaultAgent) == "" {
		return fmt.Errorf("%w: default_agent must not be empty", ErrConfig)
	}
	if err := act.ValidateAgent(c.DefaultAgent); err != nil {
		return fmt.Errorf("%w: default_agent: %w", ErrConfig, err)
	}
	if !vocab.WrapsEdit(act.Role(c.DefaultRole)) {
		return fmt.Errorf("%w: default_role %q is not an edit role of protocol %s", ErrConfig, c.DefaultRole, vocab.Name())
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrConfig, c.LogLevel)
	}
	return nil
}

// Vocabulary returns the protocol vocabulary the config selects.
func (c Config) Vocabulary() (act.Vocabulary, error) {
	vocab, err := act.VocabularyFor(c.Protocol)
	if err != nil {
		return act.Vocabulary{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return vocab, nil
}

// Marshal renders the config back to YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

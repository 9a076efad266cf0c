// Package style holds the user-controlled generation constraints:
// excluded terms, example copies, target keywords, and batching
// parameters. A Config lives for the session and can be snapshotted to
// a file and restored later.
package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the style configuration for content generation.
type Config struct {
	ExcludedTerms  []string `json:"excluded_terms" yaml:"excluded_terms"`
	TargetKeywords []string `json:"target_keywords" yaml:"target_keywords"`
	ExampleCopies  []string `json:"example_copies" yaml:"example_copies"`

	// BatchSize is the number of records generated between pauses.
	BatchSize int `json:"batch_size" yaml:"batch_size" validate:"min=1,max=20"`
	// Delay is the pause between batches of remote API calls.
	Delay time.Duration `json:"api_delay" yaml:"api_delay" validate:"min=0,max=10s"`
}

// Default returns the configuration a fresh session starts with.
func Default() Config {
	return Config{
		TargetKeywords: []string{"office space", "executive office", "workspace"},
		BatchSize:      5,
		Delay:          time.Second,
	}
}

var validate = validator.New()

// Validate checks batching bounds.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid style config: %w", err)
	}
	return nil
}

// AddExcludedTerm appends a term unless already present, preserving
// insertion order. Reports whether the term was added.
func (c *Config) AddExcludedTerm(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	for _, t := range c.ExcludedTerms {
		if t == term {
			return false
		}
	}
	c.ExcludedTerms = append(c.ExcludedTerms, term)
	return true
}

// AddExampleCopy appends a reference text to emulate.
func (c *Config) AddExampleCopy(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.ExampleCopies = append(c.ExampleCopies, text)
	return true
}

// SetTargetKeywords replaces the keyword list, dropping blanks.
func (c *Config) SetTargetKeywords(keywords []string) {
	c.TargetKeywords = c.TargetKeywords[:0]
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			c.TargetKeywords = append(c.TargetKeywords, k)
		}
	}
}

// Save writes a settings snapshot. The format is chosen by extension:
// .yaml/.yml for YAML, anything else JSON.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //#nosec G306 -- settings snapshot is not sensitive
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadFile restores a snapshot written by Save.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads user-specified settings file
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package generator

import (
	"fmt"
	"os"
	"slices"
)

// ProviderFactory creates providers.
type ProviderFactory func(cfg Config) (Provider, error)

// DefaultModels maps provider names to their default models.
var DefaultModels = map[string]string{
	"anthropic": "claude-sonnet-4-20250514",
	"openai":    "gpt-4o",
}

// SupportedModels is the small fixed model set selectable per provider.
var SupportedModels = map[string][]string{
	"anthropic": {
		"claude-sonnet-4-20250514",
		"claude-opus-4-20250514",
		"claude-3-5-haiku-20241022",
	},
	"openai": {
		"gpt-4o",
		"gpt-4o-mini",
	},
}

var registry = map[string]ProviderFactory{
	"anthropic": func(cfg Config) (Provider, error) {
		return NewAnthropicProvider(cfg)
	},
	"openai": func(cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg)
	},
	"template": func(cfg Config) (Provider, error) {
		return NewTemplateProvider(cfg)
	},
}

// New creates a provider by name, validating the model against the
// provider's supported set when one is configured.
func New(name string, cfg Config) (Provider, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: anthropic, openai, template)", name)
	}
	if cfg.Model != "" {
		if supported, ok := SupportedModels[name]; ok && !slices.Contains(supported, cfg.Model) {
			return nil, fmt.Errorf("model %q not supported by %s (available: %v)", cfg.Model, name, supported)
		}
	}
	return factory(cfg)
}

// Detect picks a provider based on available API keys.
// Priority: ANTHROPIC_API_KEY > OPENAI_API_KEY > template (no key needed).
func Detect() (provider string, apiKey string) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return "anthropic", key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return "openai", key
	}
	return "template", ""
}

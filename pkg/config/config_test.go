package config

import (
	"os"
	"path/filepath"
	"testing"

	"igaudit/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Scorer.PriorFake != 0.5 {
		t.Errorf("Expected default prior_fake to be 0.5, got %v", config.Scorer.PriorFake)
	}
	if config.Scorer.GenuineThreshold != 0.35 {
		t.Errorf("Expected default genuine_threshold to be 0.35, got %v", config.Scorer.GenuineThreshold)
	}
	if config.Scorer.FakeThreshold != 0.65 {
		t.Errorf("Expected default fake_threshold to be 0.65, got %v", config.Scorer.FakeThreshold)
	}
	if config.Scorer.UseSpamPatternSignal {
		t.Error("Expected spam-pattern signal to be opt-in, not default")
	}
	if config.Graph.SpamDensityThreshold != 0.8 {
		t.Errorf("Expected default spam_density_threshold to be 0.8, got %v", config.Graph.SpamDensityThreshold)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("IGAUDIT_LOG_LEVEL", "debug")
	os.Setenv("IGAUDIT_PRIOR_FAKE", "0.3")
	os.Setenv("IGAUDIT_SPAM_PATTERN_SIGNAL", "true")

	defer func() {
		os.Unsetenv("IGAUDIT_LOG_LEVEL")
		os.Unsetenv("IGAUDIT_PRIOR_FAKE")
		os.Unsetenv("IGAUDIT_SPAM_PATTERN_SIGNAL")
	}()

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}
	if config.Scorer.PriorFake != 0.3 {
		t.Errorf("Expected prior_fake to be 0.3, got %v", config.Scorer.PriorFake)
	}
	if !config.Scorer.UseSpamPatternSignal {
		t.Error("Expected spam-pattern signal to be enabled")
	}
}

func TestLoadFromEnvRejectsBadPrior(t *testing.T) {
	os.Setenv("IGAUDIT_PRIOR_FAKE", "1.5")
	defer os.Unsetenv("IGAUDIT_PRIOR_FAKE")

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}
	if config.Scorer.PriorFake != 0.5 {
		t.Errorf("Expected out-of-range prior to be ignored, got %v", config.Scorer.PriorFake)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
scorer:
  prior_fake: 0.4
  use_spam_pattern_signal: true
topics:
  travel:
    keywords: [beach, mountain, wanderlust]
  food:
    keywords: [recipe, restaurant]
    weight: 2.0
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config := DefaultConfig()
	if err := config.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if config.Scorer.PriorFake != 0.4 {
		t.Errorf("Expected prior_fake to be 0.4, got %v", config.Scorer.PriorFake)
	}
	if !config.Scorer.UseSpamPatternSignal {
		t.Error("Expected spam-pattern signal to be enabled")
	}
	// values absent from the file keep their defaults
	if config.Scorer.FakeThreshold != 0.65 {
		t.Errorf("Expected fake_threshold to keep its default, got %v", config.Scorer.FakeThreshold)
	}
	if len(config.Topics) != 2 {
		t.Fatalf("Expected 2 topics, got %d", len(config.Topics))
	}
	if config.Topics["food"].Weight != 2.0 {
		t.Errorf("Expected food weight 2.0, got %v", config.Topics["food"].Weight)
	}
	if config.Logging.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", config.Logging.Level)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected loaded config to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"prior at zero", func(c *Config) { c.Scorer.PriorFake = 0 }},
		{"prior at one", func(c *Config) { c.Scorer.PriorFake = 1 }},
		{"thresholds inverted", func(c *Config) { c.Scorer.GenuineThreshold = 0.7; c.Scorer.FakeThreshold = 0.3 }},
		{"density threshold zero", func(c *Config) { c.Graph.SpamDensityThreshold = 0 }},
		{"spam max nodes too small", func(c *Config) { c.Graph.SpamMaxNodes = 1 }},
		{"empty keyword set", func(c *Config) { c.Topics = map[string]TopicConfig{"sports": {}} }},
		{"negative topic weight", func(c *Config) {
			c.Topics = map[string]TopicConfig{"sports": {Keywords: []string{"goal"}, Weight: -1}}
		}},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.IsConfiguration(err) {
				t.Errorf("Expected configuration error, got %v", err)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	config := DefaultConfig()
	config.Scorer.PriorFake = 0.42
	config.Topics = map[string]TopicConfig{"music": {Keywords: []string{"concert", "vinyl"}}}

	if err := config.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	reloaded := DefaultConfig()
	if err := reloaded.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if reloaded.Scorer.PriorFake != 0.42 {
		t.Errorf("Expected prior_fake 0.42 after reload, got %v", reloaded.Scorer.PriorFake)
	}
	if len(reloaded.Topics["music"].Keywords) != 2 {
		t.Errorf("Expected music keywords to survive a round trip, got %v", reloaded.Topics["music"])
	}
}

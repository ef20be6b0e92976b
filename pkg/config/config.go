package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"igaudit/pkg/errors"
)

// Config holds all configuration options for the authenticity analysis engine
type Config struct {
	// Authenticity scorer configuration
	Scorer ScorerConfig `yaml:"scorer" json:"scorer"`

	// Hashtag graph analyzer configuration
	Graph GraphConfig `yaml:"graph" json:"graph"`

	// Topic keyword sets for the content classifier, keyed by topic label.
	// Topics are always supplied here, never hardcoded in the classifier.
	Topics map[string]TopicConfig `yaml:"topics" json:"topics"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ScorerConfig holds the Bayesian scorer's prior, verdict thresholds, and
// the opt-in cross-analyzer signal integrations
type ScorerConfig struct {
	PriorFake        float64 `yaml:"prior_fake" json:"prior_fake"`
	GenuineThreshold float64 `yaml:"genuine_threshold" json:"genuine_threshold"`
	FakeThreshold    float64 `yaml:"fake_threshold" json:"fake_threshold"`

	// When true, the graph analyzer's spam-pattern indicator is fed into the
	// signal vector as an extra signal. Explicit opt-in, never implicit.
	UseSpamPatternSignal bool `yaml:"use_spam_pattern_signal" json:"use_spam_pattern_signal"`

	// When true and comments were captured, a comment-quality signal derived
	// from generic/duplicate comment shares joins the vector.
	UseCommentQualitySignal bool `yaml:"use_comment_quality_signal" json:"use_comment_quality_signal"`
}

// GraphConfig holds the spam-pattern indicator thresholds: a dense graph over
// very few distinct tags means the same hashtags are reused constantly
type GraphConfig struct {
	SpamDensityThreshold float64 `yaml:"spam_density_threshold" json:"spam_density_threshold"`
	SpamMaxNodes         int     `yaml:"spam_max_nodes" json:"spam_max_nodes"`
}

// TopicConfig declares one classifier topic: its keyword set and an optional
// per-topic weight (0 means the default weight of 1.0)
type TopicConfig struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
	Weight   float64  `yaml:"weight" json:"weight"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scorer: ScorerConfig{
			PriorFake:               0.5,
			GenuineThreshold:        0.35,
			FakeThreshold:           0.65,
			UseSpamPatternSignal:    false,
			UseCommentQualitySignal: false,
		},
		Graph: GraphConfig{
			SpamDensityThreshold: 0.8,
			SpamMaxNodes:         5,
		},
		Topics: map[string]TopicConfig{},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration overrides from environment variables
func (c *Config) LoadFromEnv() error {
	if level := os.Getenv("IGAUDIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("IGAUDIT_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if prior := os.Getenv("IGAUDIT_PRIOR_FAKE"); prior != "" {
		if val, err := strconv.ParseFloat(prior, 64); err == nil && val > 0 && val < 1 {
			c.Scorer.PriorFake = val
		}
	}
	if spam := os.Getenv("IGAUDIT_SPAM_PATTERN_SIGNAL"); spam != "" {
		c.Scorer.UseSpamPatternSignal = strings.ToLower(spam) == "true"
	}
	if quality := os.Getenv("IGAUDIT_COMMENT_QUALITY_SIGNAL"); quality != "" {
		c.Scorer.UseCommentQualitySignal = strings.ToLower(quality) == "true"
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".igaudit.yaml",
		".igaudit.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "igaudit", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "igaudit", "config.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid. Topic problems surface as
// configuration errors so classifier construction can fail early.
func (c *Config) Validate() error {
	var errs []error

	if c.Scorer.PriorFake <= 0 || c.Scorer.PriorFake >= 1 {
		errs = append(errs, errors.NewConfiguration("prior_fake must be strictly between 0 and 1, got %v", c.Scorer.PriorFake))
	}
	if c.Scorer.GenuineThreshold <= 0 || c.Scorer.GenuineThreshold >= 1 {
		errs = append(errs, errors.NewConfiguration("genuine_threshold must be strictly between 0 and 1, got %v", c.Scorer.GenuineThreshold))
	}
	if c.Scorer.FakeThreshold <= 0 || c.Scorer.FakeThreshold >= 1 {
		errs = append(errs, errors.NewConfiguration("fake_threshold must be strictly between 0 and 1, got %v", c.Scorer.FakeThreshold))
	}
	if c.Scorer.GenuineThreshold >= c.Scorer.FakeThreshold {
		errs = append(errs, errors.NewConfiguration("genuine_threshold %v must be below fake_threshold %v", c.Scorer.GenuineThreshold, c.Scorer.FakeThreshold))
	}

	if c.Graph.SpamDensityThreshold <= 0 || c.Graph.SpamDensityThreshold > 1 {
		errs = append(errs, errors.NewConfiguration("spam_density_threshold must be in (0,1], got %v", c.Graph.SpamDensityThreshold))
	}
	if c.Graph.SpamMaxNodes < 2 {
		errs = append(errs, errors.NewConfiguration("spam_max_nodes must be at least 2, got %d", c.Graph.SpamMaxNodes))
	}

	for label, topic := range c.Topics {
		if strings.TrimSpace(label) == "" {
			errs = append(errs, errors.NewConfiguration("topic with empty label declared"))
			continue
		}
		if len(topic.Keywords) == 0 {
			errs = append(errs, errors.NewConfiguration("topic %q declares an empty keyword set", label))
		}
		if topic.Weight < 0 {
			errs = append(errs, errors.NewConfiguration("topic %q has negative weight %v", label, topic.Weight))
		}
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.NewConfiguration("invalid log level %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return stderrors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Environment variables > .env file > Config file > Defaults
func Load(configPath string) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".igaudit.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

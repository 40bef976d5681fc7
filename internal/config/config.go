package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/budget-tools/bankstatement/internal/normalize"
	"github.com/budget-tools/bankstatement/internal/pdftext"
)

// DefaultFile is the file name `config init` writes.
const DefaultFile = "bankstatement.yaml"

// Config represents the top-level bankstatement.yaml configuration.
type Config struct {
	Extractor ExtractorConfig `yaml:"extractor"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Output    OutputConfig    `yaml:"output"`
}

// ExtractorConfig selects the PDF-to-text command.
type ExtractorConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// NormalizeConfig controls record filtering and description cleanup.
type NormalizeConfig struct {
	NoiseDescriptions []string `yaml:"noise_descriptions"`
	Boilerplate       string   `yaml:"boilerplate"`
}

// OutputConfig controls how amounts are presented in summaries.
type OutputConfig struct {
	Currency string `yaml:"currency"` // ISO-4217 code
}

// Load reads a bankstatement.yaml file from disk. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	ex := pdftext.Default()
	rules := normalize.DefaultRules()
	return &Config{
		Extractor: ExtractorConfig{
			Command: ex.Command,
			Args:    ex.Args,
		},
		Normalize: NormalizeConfig{
			NoiseDescriptions: rules.Noise,
			Boilerplate:       rules.Boilerplate,
		},
		Output: OutputConfig{
			Currency: "USD",
		},
	}
}

// ExtractorFor returns the configured text extractor.
func (c *Config) ExtractorFor() pdftext.Extractor {
	return pdftext.Extractor{Command: c.Extractor.Command, Args: c.Extractor.Args}
}

// Rules returns the configured normalization rules.
func (c *Config) Rules() normalize.Rules {
	return normalize.Rules{
		Noise:       c.Normalize.NoiseDescriptions,
		Boilerplate: c.Normalize.Boilerplate,
	}
}

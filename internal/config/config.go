package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"diffsim/internal/diffusion"
)

const (
	DefaultDiffusivity = 100.0
	DefaultLength      = 300.0
	DefaultSpacing     = 0.5
	DefaultCLeft       = 500.0
	DefaultCRight      = 0.0
	DefaultSteps       = 5000
)

type Config struct {
	Diffusivity float64 `yaml:"diffusivity"`
	Length      float64 `yaml:"domain_length"`
	Spacing     float64 `yaml:"spacing"`
	CLeft       float64 `yaml:"c_left"`
	CRight      float64 `yaml:"c_right"`
	Steps       int     `yaml:"steps"`
	Dt          float64 `yaml:"dt"` // 0 derives the maximal stable step
	Validate    bool    `yaml:"validate"`
}

func DefaultConfig() *Config {
	return &Config{
		Diffusivity: DefaultDiffusivity,
		Length:      DefaultLength,
		Spacing:     DefaultSpacing,
		CLeft:       DefaultCLeft,
		CRight:      DefaultCRight,
		Steps:       DefaultSteps,
		Validate:    true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the file values onto the model parameters.
func (c *Config) Params() diffusion.Params {
	return diffusion.Params{
		Diffusivity: c.Diffusivity,
		Length:      c.Length,
		Spacing:     c.Spacing,
		CLeft:       c.CLeft,
		CRight:      c.CRight,
	}
}

// RunConfig maps the file values onto the run configuration.
func (c *Config) RunConfig() diffusion.Config {
	return diffusion.Config{
		Steps:    c.Steps,
		Dt:       c.Dt,
		Validate: c.Validate,
	}
}

// Check validates the configuration the same way the simulator will, so bad
// files fail before a run starts.
func (c *Config) Check() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Dt != 0 {
		if err := diffusion.CheckStability(c.Diffusivity, c.Dt, c.Spacing); err != nil {
			return err
		}
	}
	return nil
}

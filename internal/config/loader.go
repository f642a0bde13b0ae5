package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Build          BuildConfig    `yaml:"build"`
	Scoring        ScoringConfig  `yaml:"scoring"`
	Report         ReportConfig   `yaml:"report"`
	Logger         LoggerConfig   `yaml:"logger"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

package config

import "github.com/caarlos0/env/v11"

// LogConfig shapes the zerolog sink shared by the ledger server and the
// migrator. An empty File keeps output on stdout.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	cfg := LogConfig{}
	if err := env.Parse(&cfg); err != nil {
		return LogConfig{}, err
	}
	return cfg, nil
}

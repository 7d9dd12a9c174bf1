package config

import "github.com/caarlos0/env/v11"

// TestConfig points the DB-backed tests at a disposable Postgres. The suite
// skips rather than fails when the DSN is absent.
type TestConfig struct {
	TestPostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
}

func LoadTest() (TestConfig, error) {
	cfg := TestConfig{}
	if err := env.Parse(&cfg); err != nil {
		return TestConfig{}, err
	}
	return cfg, nil
}

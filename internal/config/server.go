package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	VoteUnitCost int64 `env:"VOTE_UNIT_COST" envDefault:"10"`
	SignupBonus  int64 `env:"SIGNUP_BONUS" envDefault:"1000"`

	SeedAccount1 string `env:"SEED_ACCOUNT_1"`
	SeedAccount2 string `env:"SEED_ACCOUNT_2"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

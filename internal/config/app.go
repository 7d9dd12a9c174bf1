package config

// AppConfig bundles everything the ledger server reads at boot. Logging
// loads first so a bad server config can still be reported through the
// configured sink.
type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	var app AppConfig
	var err error
	if app.Log, err = LoadLog(); err != nil {
		return AppConfig{}, err
	}
	if app.Server, err = LoadServer(); err != nil {
		return AppConfig{}, err
	}
	return app, nil
}

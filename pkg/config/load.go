package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the optional .env file and populates App from the environment.
// A missing .env file is not an error; system environment variables still
// apply.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	paths := envFilePath
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	loaded := false
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			logger.Info("Environment variables loaded", "path", path)
			loaded = true
			break
		}
	}
	if !loaded {
		logger.Warn("No .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"checkout_base_url", cfg.Checkout.BaseURL,
		"stripe_api_key", maskValue(cfg.Stripe.ApiKey),
		"encryption_key_set", cfg.Checkout.EncryptionKey != "",
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}

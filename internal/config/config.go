package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Google  GoogleConfig
	Ratp    RatpConfig
	Backend BackendConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// GoogleConfig configures the Google Places client.
type GoogleConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// RatpConfig configures the PRIM (Île-de-France Mobilités) client. The
// marketplace exposes two API roots; autocomplete lives under v2.
type RatpConfig struct {
	APIKey         string
	BaseURL        string
	BaseURLV2      string
	RequestTimeout time.Duration
}

// BackendConfig points at the internal journey computation service.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A .env file is optional; plain environment variables are enough.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Google: GoogleConfig{
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        viper.GetString("GOOGLE_MAPS_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("HTTP_TIMEOUT")) * time.Second,
		},
		Ratp: RatpConfig{
			APIKey:         viper.GetString("RATP_API_KEY"),
			BaseURL:        viper.GetString("RATP_API_ENDPOINT"),
			BaseURLV2:      viper.GetString("RATP_API_ENDPOINT_V2"),
			RequestTimeout: time.Duration(viper.GetInt("HTTP_TIMEOUT")) * time.Second,
		},
		Backend: BackendConfig{
			BaseURL:        viper.GetString("PUBLIC_BACK_ENDPOINT"),
			RequestTimeout: time.Duration(viper.GetInt("HTTP_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Google.BaseURL == "" {
		cfg.Google.BaseURL = "https://maps.googleapis.com/maps/api"
	}
	if cfg.Ratp.BaseURL == "" {
		cfg.Ratp.BaseURL = "https://prim.iledefrance-mobilites.fr/marketplace"
	}
	if cfg.Ratp.BaseURLV2 == "" {
		cfg.Ratp.BaseURLV2 = cfg.Ratp.BaseURL + "/v2"
	}
	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 10 * time.Second
	}
	if cfg.Ratp.RequestTimeout == 0 {
		cfg.Ratp.RequestTimeout = 10 * time.Second
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

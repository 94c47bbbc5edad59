package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Upstream struct {
		BaseURL      string `env:"UPSTREAM_BASE_URL" env-default:"https://api.fxtwitter.com"`
		UserAgent    string `env:"UPSTREAM_USER_AGENT" env-default:"x-media-resolver/1.0"`
		ProbeMinutes int    `env:"UPSTREAM_PROBE_MINUTES" env-default:"5"`
	}
	Resolver struct {
		Hosts          []string `env:"RESOLVER_HOSTS" env-default:"twitter.com,x.com" env-separator:","`
		BrandPrefix    string   `env:"RESOLVER_BRAND_PREFIX" env-default:"DoReMi"`
		BitrateCeiling int64    `env:"RESOLVER_BITRATE_CEILING" env-default:"5000000"`
	}
	Download struct {
		MinBytes int64  `env:"DOWNLOAD_MIN_BYTES" env-default:"1000"`
		Accept   string `env:"DOWNLOAD_ACCEPT" env-default:"video/mp4,video/*;q=0.9,*/*;q=0.8"`
		Dir      string `env:"DOWNLOAD_DIR" env-default:"./downloads"`
	}
	Telegram struct {
		Enabled  bool   `env:"TELEGRAM_ENABLED" env-default:"false"`
		BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

// New reads the configuration once per process.
func New() (*Config, error) {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		cfg = c
	})
	return cfg, nil
}

// Load reads the environment without memoizing the result.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

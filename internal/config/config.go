package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrMissingCredentials = errors.New("missing required environment variables")

type Config struct {
	Telegram  Telegram
	Practicum Practicum
	Log       Log
}

type Telegram struct {
	BotToken       string        `env:"TELEGRAM_TOKEN" env-description:"Telegram bot token"`
	ChatID         string        `env:"TELEGRAM_CHAT_ID" env-description:"chat receiving the notifications"`
	APIURL         string        `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
}

type Practicum struct {
	Token              string        `env:"PRACTICUM_TOKEN" env-description:"Practicum API OAuth token"`
	Endpoint           string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RetryPeriodSeconds int           `env:"RETRY_PERIOD" env-default:"600" env-description:"seconds between two polls"`
	LookbackWindow     time.Duration `env:"LOOKBACK_WINDOW" env-default:"720h" env-description:"offset of the first from_date"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
	// ErrorNotifyCooldown equal to zero means a single error notification per process.
	ErrorNotifyCooldown time.Duration `env:"ERROR_NOTIFY_COOLDOWN" env-default:"0s"`
}

type Log struct {
	File  string `env:"LOG_FILE" env-default:"main.log"`
	Level string `env:"LOG_LEVEL" env-default:"debug"`
}

func (p Practicum) RetryPeriod() time.Duration {
	return time.Duration(p.RetryPeriodSeconds) * time.Second
}

// NewConfig reads the configuration from the environment. Values from the
// optional envFile are loaded first and never override the real environment.
func NewConfig(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("godotenv.Load: %w", err)
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	if cfg.Practicum.RetryPeriodSeconds <= 0 {
		return nil, fmt.Errorf("RETRY_PERIOD must be positive, got %d", cfg.Practicum.RetryPeriodSeconds)
	}

	return cfg, nil
}

// Description returns the list of supported environment variables.
func Description() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return help
}

// MissingCredentials reports the names of the required variables which are empty.
func (c *Config) MissingCredentials() error {
	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.Telegram.BotToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.Telegram.ChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}

	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
}

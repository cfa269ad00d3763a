// Package config loads the gateway credentials and the notification
// listener settings from a YAML file. Environment variables take precedence
// over YAML values.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"freekassa/client/freekassa"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Merchant struct {
		Id           string `yaml:"id" env:"FK_MERCHANT_ID" env-default:""`
		FirstSecret  string `yaml:"first_secret" env:"FK_FIRST_SECRET" env-default:""`
		SecondSecret string `yaml:"second_secret" env:"FK_SECOND_SECRET" env-default:""`
	} `yaml:"merchant"`
	Wallet struct {
		Id     string `yaml:"id" env:"FK_WALLET_ID" env-default:""`
		ApiKey string `yaml:"api_key" env:"FK_WALLET_API_KEY" env-default:""`
	} `yaml:"wallet"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"FK_REQUEST_TIMEOUT" env-default:"30s"`
	Notify         struct {
		BindIP string `yaml:"bind_ip" env:"FK_NOTIFY_BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"FK_NOTIFY_PORT" env-default:"5100"`
	} `yaml:"notify"`
}

var instance *Config
var once sync.Once

// GetConfig loads the configuration once and returns the same instance on
// every later call, whatever path is passed.
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return instance, err
}

// Load reads path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	return conf, nil
}

func (c *Config) ClientConfig() *freekassa.Config {
	return &freekassa.Config{
		MerchantId:   c.Merchant.Id,
		FirstSecret:  c.Merchant.FirstSecret,
		SecondSecret: c.Merchant.SecondSecret,
		WalletId:     c.Wallet.Id,
		WalletApiKey: c.Wallet.ApiKey,
	}
}

func (c *Config) NotifyAddress() string {
	return fmt.Sprintf("%s:%s", c.Notify.BindIP, c.Notify.Port)
}

// SlogLevel maps LogLevel to a slog level. Unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

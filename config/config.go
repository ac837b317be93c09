package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"turipass.io/terminal/api"
)

const (
	ServerStartPort = ":8080"

	defaultAPITimeout = 30 * time.Second
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Terminal TerminalConfig `mapstructure:"terminal"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type TerminalConfig struct {
	PartnerID  int64         `mapstructure:"partner_id"`
	ScanWindow time.Duration `mapstructure:"scan_window"`
}

func ProvideApplicationConfig() (*Config, error) {

	viper.SetConfigFile("./config.yaml")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func ProvideAPIClient(appConfig *Config, logger *zap.Logger) *api.Client {

	timeout := appConfig.API.Timeout
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}

	return api.NewClient(appConfig.API.BaseURL, appConfig.API.Token, timeout, logger)
}

// ProvideRedis connects the optional status/terms cache. An empty addr
// disables caching and yields a nil client.
func ProvideRedis(appConfig *Config) (*redis.Client, error) {

	if appConfig.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     appConfig.Redis.Addr,
		Password: appConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewLogger() *zap.Logger {

	logger, _ := zap.NewProduction()
	return logger
}

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const ConfigPathEnv = "EXPRESSSTORES_CONFIG_PATH"

type MarketplaceConfig struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	GRPCServer    `yaml:"grpc_server"`
	HTTPServer    `yaml:"http_server"`
	Storage       `yaml:"storage"`
	LogConfig     `yaml:"log_config"`
	WalletService `yaml:"wallet-service"`
	KafkaService  `yaml:"kafka-service"`
	Suggestions   `yaml:"suggestions"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

// HTTPServer serves /metrics.
type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
}

type Storage struct {
	// Driver is "memory" or "postgres".
	Driver         string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Dsn            string `yaml:"dsn" env:"STORAGE_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"STORAGE_MIGRATIONS_PATH"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type WalletService struct {
	Host string `yaml:"host" env:"WALLET_HOST"`
	Port string `yaml:"port" env:"WALLET_PORT"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"KAFKA_HOST"`
	Port    string `yaml:"port" env:"KAFKA_PORT"`
	Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"marketplace-events"`
}

type Suggestions struct {
	AuthorizedAccounts []string `yaml:"authorized_accounts" env:"SUGGESTIONS_AUTHORIZED_ACCOUNTS" env-separator:","`
}

// Load reads the YAML file at path, applying environment overrides.
func Load(path string) (*MarketplaceConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.Storage.Driver != "memory" && cfg.Storage.Driver != "postgres" {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "postgres" && cfg.Storage.Dsn == "" {
		return nil, fmt.Errorf("storage dsn is required for the postgres driver")
	}
	if cfg.WalletService.Host == "" {
		return nil, fmt.Errorf("wallet-service host is required")
	}

	return &cfg, nil
}

func MustLoad() *MarketplaceConfig {

	// Processing env config variable and file
	configPath := os.Getenv(ConfigPathEnv)

	if configPath == "" {
		log.Fatalf("%s was not found\n", ConfigPathEnv)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	return cfg
}

func (c *MarketplaceConfig) GRPCAddress() string {
	return fmt.Sprintf("%s:%s", c.GRPCServer.Host, c.GRPCServer.Port)
}

func (c *MarketplaceConfig) HTTPAddress() string {
	return fmt.Sprintf("%s:%s", c.HTTPServer.Host, c.HTTPServer.Port)
}

func (c *MarketplaceConfig) WalletAddress() string {
	if c.WalletService.Port == "" {
		return c.WalletService.Host
	}
	return fmt.Sprintf("%s:%s", c.WalletService.Host, c.WalletService.Port)
}

func (c *MarketplaceConfig) KafkaBrokers() []string {
	return []string{fmt.Sprintf("%s:%s", c.KafkaService.Host, c.KafkaService.Port)}
}

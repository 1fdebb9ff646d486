package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env             string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      HTTPServer    `yaml:"http_server"`
	Gateway         Gateway       `yaml:"gateway"`
	Storage         Storage       `yaml:"storage"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"REFRESH_INTERVAL" env-default:"1m"`
	Sessions        []Session     `yaml:"sessions"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Gateway points at the spreadsheet-backed signup endpoint.
type Gateway struct {
	URL     string        `yaml:"url" env:"GATEWAY_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT" env-default:"10s"`
}

type Storage struct {
	Driver     string   `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string   `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"./storage/signups.db"`
	Database   Database `yaml:"database"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_signup"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Session is one event occurrence as written in the config file.
type Session struct {
	Key             string `yaml:"key"`
	Date            string `yaml:"date"`
	Time            string `yaml:"time"`
	Title           string `yaml:"title"`
	Location        string `yaml:"location"`
	Capacity        int    `yaml:"capacity"`
	TrainingEnabled bool   `yaml:"training_enabled"`
	TrainingQuota   int    `yaml:"training_quota"`
	HandRequired    bool   `yaml:"hand_required"`
	WaiverRequired  bool   `yaml:"waiver_required"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if len(cfg.Sessions) == 0 {
		return nil, fmt.Errorf("config has no sessions")
	}

	return &cfg, nil
}

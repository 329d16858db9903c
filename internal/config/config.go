package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bot      BotConfig      `yaml:"bot"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Game     GameConfig     `yaml:"game"`
}

type BotConfig struct {
	Token       string `yaml:"token" env:"BOT_TOKEN"`
	PollTimeout int    `yaml:"poll_timeout" env:"BOT_POLL_TIMEOUT"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     string `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"database" env:"DB_NAME"`
}

type ServerConfig struct {
	Port      string `yaml:"port" env:"SERVER_PORT"`
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type GameConfig struct {
	CountdownSeconds int `yaml:"countdown_seconds" env:"GAME_COUNTDOWN_SECONDS"`
	TickSeconds      int `yaml:"tick_seconds" env:"GAME_TICK_SECONDS"`
}

func defaults() *Config {
	return &Config{
		Bot: BotConfig{
			PollTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "jeopardy",
		},
		Server: ServerConfig{
			Port:      "8080",
			JWTSecret: "super-secret-key-change-me",
		},
		Game: GameConfig{
			CountdownSeconds: 20,
			TickSeconds:      1,
		},
	}
}

// Load reads the YAML config at path (if present) over built-in
// defaults, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if cfg.Game.CountdownSeconds <= 0 {
		cfg.Game.CountdownSeconds = 20
	}
	if cfg.Game.TickSeconds <= 0 {
		cfg.Game.TickSeconds = 1
	}
	if cfg.Bot.PollTimeout <= 0 {
		cfg.Bot.PollTimeout = 10
	}

	return cfg, nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name,
	)
}

func (g GameConfig) Countdown() time.Duration {
	return time.Duration(g.CountdownSeconds) * time.Second
}

func (g GameConfig) Tick() time.Duration {
	return time.Duration(g.TickSeconds) * time.Second
}

package config

import (
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   slog.Level `yaml:"log_level" env-default:"INFO"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Password   Password   `yaml:"password"`
}

type HTTPServer struct {
	Address string        `yaml:"address" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type Storage struct {
	SQLitePath string `yaml:"path" env-default:"pixology.db"`
}

type Password struct {
	// bcrypt work factor; raising it slows brute force at the price of
	// login/register latency
	Cost int `yaml:"cost" env-default:"12"`
}

func Parse(s string) (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadConfig(s, c); err != nil {
		return nil, err
	}

	return c, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedPath        string        `env:"SEED_PATH" envDefault:""`
	PageSize        int           `env:"PAGE_SIZE" envDefault:"20"`
	Operator        string        `env:"OPERATOR_NAME" envDefault:"admin"`
	MarqueeInterval time.Duration `env:"MARQUEE_INTERVAL" envDefault:"30s"`
	ChatRate        float64       `env:"CHAT_RATE" envDefault:"1"`
	ChatBurst       int           `env:"CHAT_BURST" envDefault:"3"`
}

// BoardConfig - модель настроек таблицы заказов
type BoardConfig struct {
	SeedPath string
	PageSize int
	Operator string
}

// ChatConfig - модель настроек каналов связи
type ChatConfig struct {
	Rate  float64
	Burst int
}

// Config - модель настроек сервиса
type Config struct {
	LogLevel        string
	MarqueeInterval time.Duration
	Board           BoardConfig
	Chat            ChatConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		seed     = pflag.StringP("seed", "s", args.SeedPath, "Path to seed data file (empty - builtin).")
		pageSize = pflag.IntP("page_size", "p", args.PageSize, "Default page size (10/20/50/100).")
		operator = pflag.StringP("operator", "o", args.Operator, "Operator name recorded on destructive actions.")
		interval = pflag.DurationP("marquee", "m", args.MarqueeInterval, "Announcement marquee interval.")
	)
	pflag.Parse()

	return Config{
		LogLevel:        *logLevel,
		MarqueeInterval: *interval,
		Board: BoardConfig{
			SeedPath: *seed,
			PageSize: *pageSize,
			Operator: *operator,
		},
		Chat: ChatConfig{
			Rate:  args.ChatRate,
			Burst: args.ChatBurst,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		LogLevel:        "info",
		MarqueeInterval: 30 * time.Second,
		Board: BoardConfig{
			SeedPath: "",
			PageSize: 20,
			Operator: "admin",
		},
		Chat: ChatConfig{
			Rate:  1,
			Burst: 3,
		},
	}
}

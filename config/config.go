package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidTickInterval = errors.New("tick interval must be positive")

// Config はデモドライバの設定です。値は環境変数から読み込みます。
type Config struct {
	TickInterval   time.Duration `env:"DUEL_TICK_INTERVAL" envDefault:"16ms"`
	FlightDuration time.Duration `env:"DUEL_FLIGHT_DURATION" envDefault:"5s"`
	QueueSize      int           `env:"DUEL_QUEUE_SIZE" envDefault:"64"`
	LogLevel       slog.Level    `env:"DUEL_LOG_LEVEL" envDefault:"info"`
	Settle         time.Duration `env:"DUEL_SETTLE" envDefault:"6s"` // 最終レポートまでに経過させる仮想時間
}

// Load は環境変数からConfigを読み込み、検証します。
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTickInterval, c.TickInterval)
	}
	return nil
}

// Package config loads the settings of the simon binary from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type AudioBackend string

const (
	AudioBackendMiniaudio AudioBackend = "miniaudio"
	AudioBackendPortaudio AudioBackend = "portaudio"
	AudioBackendNone      AudioBackend = "none"
)

var (
	ErrUnknownAudioBackend = errors.New("unknown audio backend")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
)

type Config struct {
	AudioBackend AudioBackend `env:"SIMON_AUDIO_BACKEND" envDefault:"miniaudio"`
	// Seed of 0 seeds the random source from crypto/rand.
	Seed         uint64        `env:"SIMON_SEED"          envDefault:"0"`
	PollInterval time.Duration `env:"SIMON_POLL_INTERVAL" envDefault:"10ms"`
	LogFile      string        `env:"SIMON_LOG_FILE"`
}

// Parse reads Config from the environment and validates it.
func Parse() (Config, error) {
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
	switch c.AudioBackend {
	case AudioBackendMiniaudio, AudioBackendPortaudio, AudioBackendNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAudioBackend, c.AudioBackend)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, c.PollInterval)
	}
	return nil
}

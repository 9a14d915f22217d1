package config

import (
	"os"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/utility"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Port              string
	SpawnInterval     time.Duration
	ShrinkFactor      float64
	TargetSize        float64
	WindowHeight      int
	FrameDelay        time.Duration
	Seed              int64
	ClearOnDeactivate bool
	LogLevel          log.Level
	Audio             bool
	SessionTTL        time.Duration
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		SpawnInterval:     getEnvDuration("SPAWN_INTERVAL", 2*time.Second),
		ShrinkFactor:      getEnvFloat("SHRINK_FACTOR", 0.99),
		TargetSize:        getEnvFloat("TARGET_SIZE", 50),
		WindowHeight:      getEnvInt("WINDOW_HEIGHT", 900),
		FrameDelay:        getEnvDuration("FRAME_DELAY", 10*time.Millisecond),
		Seed:              int64(getEnvInt("SEED", 0)),
		ClearOnDeactivate: getEnvBool("CLEAR_ON_DEACTIVATE", true),
		LogLevel:          getEnvLevel("LOG_LEVEL", log.InfoLevel),
		Audio:             getEnvBool("AUDIO", true),
		SessionTTL:        getEnvDuration("SESSION_TTL", time.Hour),
	}
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = 2 * time.Second
	}
	if !(cfg.ShrinkFactor > 0 && cfg.ShrinkFactor <= 1) {
		cfg.ShrinkFactor = 0.99
	}
	if cfg.TargetSize <= 0 {
		cfg.TargetSize = 50
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = 900
	}
	if cfg.FrameDelay < 0 {
		cfg.FrameDelay = 10 * time.Millisecond
	}
	return cfg
}

// WindowWidth follows the fixed 16:9 aspect ratio.
func (c Config) WindowWidth() int {
	return c.WindowHeight * 16 / 9
}

// Game projects the core settings for gamedata.NewGame.
func (c Config) Game() gamedata.Config {
	return gamedata.Config{
		SpawnInterval:     c.SpawnInterval,
		ShrinkFactor:      c.ShrinkFactor,
		TargetSize:        c.TargetSize,
		ClearOnDeactivate: c.ClearOnDeactivate,
		Colors:            utility.RandomColorHex,
	}
}

// Seeded returns the configured seed, or a time based one when unset.
func (c Config) Seeded() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Logger builds the root logger at the configured level.
func (c Config) Logger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           c.LogLevel,
		ReportTimestamp: true,
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("1500ms") or plain seconds ("1.5").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(f * float64(time.Second))
	}
	return fallback
}

func getEnvLevel(key string, fallback log.Level) log.Level {
	if v := os.Getenv(key); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			return lvl
		}
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"shootinggallery/internal/game"
	"shootinggallery/internal/targets"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	RoundDuration uint32 // seconds
	Ammo          uint32
	ScaleMode     string
	AssetsDir     string
	StaticDir     string
	FrameRate     int
	RespawnDelay  time.Duration
	SurfaceWidth  int
	SurfaceHeight int
	Sound         bool
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		RoundDuration: getEnvUint32("ROUND_DURATION", 60),
		Ammo:          getEnvUint32("AMMO", 3),
		ScaleMode:     getEnv("SCALE_MODE", "responsive"),
		AssetsDir:     getEnv("ASSETS_DIR", "static/images"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		FrameRate:     getEnvInt("FRAME_RATE", 60),
		RespawnDelay:  time.Duration(getEnvInt("RESPAWN_DELAY_MS", 500)) * time.Millisecond,
		SurfaceWidth:  getEnvInt("SURFACE_WIDTH", 800),
		SurfaceHeight: getEnvInt("SURFACE_HEIGHT", 600),
		Sound:         getEnvBool("SOUND", true),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt only accepts positive values; anything else falls back.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

// getEnvUint32 accepts values from 1 to math.MaxUint32; anything else falls
// back.
func getEnvUint32(key string, fallback uint32) uint32 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 32); err == nil && u > 0 {
			return uint32(u)
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

// Game returns the round rules.
func (c Config) Game() game.Config {
	return game.Config{
		RoundDuration: c.RoundDuration,
		Ammo:          c.Ammo,
		RespawnDelay:  c.RespawnDelay,
	}
}

// Mode parses ScaleMode, falling back to responsive scaling.
func (c Config) Mode() targets.Mode {
	m, err := targets.ParseMode(c.ScaleMode)
	if err != nil {
		log.Printf("[Config] %v, using %s", err, targets.Responsive)
		return targets.Responsive
	}
	return m
}

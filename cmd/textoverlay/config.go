package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds textoverlay settings that are not part of an overlay
// document.
type Config struct {
	Assets AssetsConfig
	Canvas CanvasConfig
	Log    LogConfig
}

// AssetsConfig locates bundled typefaces. Fonts are read from
// <Dir>/fonts/<name>.ttf.
type AssetsConfig struct {
	Dir string
}

// CanvasConfig is the canvas size used when a document does not set one.
type CanvasConfig struct {
	Width  int
	Height int
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string
}

// loadConfig reads configuration from an optional YAML file and the
// environment. Env var overrides use prefix PHOTOEDIT_, for example
// PHOTOEDIT_ASSETS_DIR.
func loadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("canvas.width", 1080)
	v.SetDefault("canvas.height", 1920)
	v.SetDefault("log.level", "warn")

	v.SetConfigType("yaml")
	v.SetEnvPrefix("PHOTOEDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return Config{}, fmt.Errorf("invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	return c, nil
}

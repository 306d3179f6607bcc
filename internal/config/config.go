// Package config loads server settings from defaults, an optional pig.yaml and PIG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/pig/internal/api"
	"github.com/mcoot/pig/internal/i18n"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
)

// EnvPrefix is prepended to every environment override, e.g. PIG_SERVER_PORT
const EnvPrefix = "PIG"

// Config is the full server configuration
type Config struct {
	Server ServerSettings `mapstructure:"server"`
	Log    LogSettings    `mapstructure:"log"`
	Game   GameSettings   `mapstructure:"game"`
}

// ServerSettings controls the HTTP listener
type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// LogSettings controls the application logger
type LogSettings struct {
	Level  string `mapstructure:"level"`  // debug, info, warn or error
	Format string `mapstructure:"format"` // json or text
}

// GameSettings configures the hosted table
type GameSettings struct {
	Language      string        `mapstructure:"language"`
	PlayerOne     string        `mapstructure:"playerOne"`
	PlayerTwo     string        `mapstructure:"playerTwo"`
	FrameInterval time.Duration `mapstructure:"frameInterval"`
	HistoryLimit  int           `mapstructure:"historyLimit"`
}

// Load reads the configuration.
// Priority order: environment variables > config file > defaults.
// configPath may be empty, in which case pig.yaml is looked up in ./config and the working directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pig")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is honoured as well, for hosting platforms that inject it
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.readTimeout", def.Server.ReadTimeout)
	v.SetDefault("server.shutdownTimeout", def.Server.ShutdownTimeout)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	// Empty player names mean the localized defaults
	v.SetDefault("game.language", def.Game.Language)
	v.SetDefault("game.playerOne", "")
	v.SetDefault("game.playerTwo", "")
	v.SetDefault("game.frameInterval", def.Game.FrameInterval)
	v.SetDefault("game.historyLimit", def.Game.HistoryLimit)
}

// Default returns the built-in configuration
func Default() *Config {
	server := api.DefaultServerConfig()
	return &Config{
		Server: ServerSettings{
			Host:            server.Host,
			Port:            server.Port,
			ReadTimeout:     server.ReadTimeout,
			ShutdownTimeout: server.ShutdownTimeout,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "json",
		},
		Game: GameSettings{
			Language:      "en",
			FrameInterval: game.DefaultFrameInterval,
			HistoryLimit:  512,
		},
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	if c.Game.FrameInterval <= 0 {
		return fmt.Errorf("game.frameInterval must be positive, got %s", c.Game.FrameInterval)
	}
	if c.Game.HistoryLimit < 0 {
		return fmt.Errorf("game.historyLimit must not be negative, got %d", c.Game.HistoryLimit)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

// Logger builds the application logger writing to w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ServerConfig returns the HTTP server settings
func (c *Config) ServerConfig() api.ServerConfig {
	server := api.DefaultServerConfig()
	server.Host = c.Server.Host
	server.Port = c.Server.Port
	server.ReadTimeout = c.Server.ReadTimeout
	server.ShutdownTimeout = c.Server.ShutdownTimeout
	return server
}

// EngineConfig returns the engine settings for the hosted table
func (c *Config) EngineConfig() game.Config {
	return game.Config{
		Language:      i18n.ParseLanguage(c.Game.Language),
		PlayerNames:   [model.SeatCount]string{c.Game.PlayerOne, c.Game.PlayerTwo},
		FrameInterval: c.Game.FrameInterval,
	}
}

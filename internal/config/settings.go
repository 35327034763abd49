package config

import (
	"fmt"
	"path/filepath"

	"github.com/Veraticus/portops/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyLogFile        = "logging.file"
	KeyTheme          = "theme"
	KeyHistoryEnabled = "history.enabled"
	KeyHistoryPath    = "history.path"
	KeyServePort      = "serve.port"
)

// Settings is the resolved application configuration.
type Settings struct {
	LogLevel       string
	LogFormat      string
	LogFile        string
	Theme          string
	HistoryPath    string
	ServePort      int
	HistoryEnabled bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyHistoryEnabled, false)
	v.SetDefault(KeyHistoryPath, filepath.Join("~", ".local", "share", "portops", "history.db"))
	v.SetDefault(KeyServePort, 8501)
}

// Load reads Settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		LogFile:        ExpandPath(v.GetString(KeyLogFile)),
		Theme:          v.GetString(KeyTheme),
		HistoryEnabled: v.GetBool(KeyHistoryEnabled),
		HistoryPath:    ExpandPath(v.GetString(KeyHistoryPath)),
		ServePort:      v.GetInt(KeyServePort),
	}

	if s.ServePort < 1 || s.ServePort > 65535 {
		return Settings{}, fmt.Errorf("%w: serve.port %d out of range", common.ErrInvalidConfig, s.ServePort)
	}
	if s.HistoryEnabled && s.HistoryPath == "" {
		return Settings{}, fmt.Errorf("%w: history.path is required when history is enabled", common.ErrInvalidConfig)
	}
	return s, nil
}

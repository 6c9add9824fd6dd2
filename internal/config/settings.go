package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"checkgrip/internal/ids"
)

// EnvPrefix prefixes every environment override, e.g. CHECKGRIP_ALLOCATOR
const EnvPrefix = "CHECKGRIP"

// ErrInvalidSettings is returned by Validate
var ErrInvalidSettings = errors.New("invalid settings")

// Settings represents the application configuration
type Settings struct {
	Layout            string     `mapstructure:"layout"` // layout file, empty for the built-in one
	Allocator         string     `mapstructure:"allocator"`
	IDPrefix          string     `mapstructure:"id_prefix"`
	LogFile           string     `mapstructure:"log_file"`
	HistorySize       int        `mapstructure:"history_size"`
	NormalizeOnAttach bool       `mapstructure:"normalize_on_attach"`
	UI                UISettings `mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIDs  bool `mapstructure:"show_ids"`
	ShowHelp bool `mapstructure:"show_help"`
}

// DefaultSettings returns the configuration used when nothing is set
func DefaultSettings() *Settings {
	return &Settings{
		Allocator:   ids.KindSequence,
		IDPrefix:    ids.DefaultPrefix,
		LogFile:     "checkgrip.log",
		HistorySize: 200,
		UI: UISettings{
			ShowHelp: true,
		},
	}
}

// LoadSettings reads settings from path, or from the file named by
// CHECKGRIP_CONFIG, or from checkgrip.toml in the working directory or the
// user config directory. A missing file is only an error when it was named
// explicitly. CHECKGRIP_* environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	def := DefaultSettings()
	v.SetDefault("layout", def.Layout)
	v.SetDefault("allocator", def.Allocator)
	v.SetDefault("id_prefix", def.IDPrefix)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("history_size", def.HistorySize)
	v.SetDefault("normalize_on_attach", def.NormalizeOnAttach)
	v.SetDefault("ui.show_ids", def.UI.ShowIDs)
	v.SetDefault("ui.show_help", def.UI.ShowHelp)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("checkgrip")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "checkgrip"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks values viper cannot check for us
func (s *Settings) Validate() error {
	switch s.Allocator {
	case ids.KindSequence, ids.KindUUID:
	default:
		return fmt.Errorf("%w: unknown allocator %q", ErrInvalidSettings, s.Allocator)
	}
	if s.HistorySize <= 0 {
		return fmt.Errorf("%w: history_size must be positive, got %d", ErrInvalidSettings, s.HistorySize)
	}
	return nil
}

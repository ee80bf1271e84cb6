package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	appName    = "dsec"
	configName = "config"
	configType = "toml"
	envPrefix  = "DSEC"

	StorageRootKey    = "storage.root"
	ServerListenKey   = "server.listen"
	LogLevelKey       = "log.level"
	LogFormatKey      = "log.format"
	MetricsEnabledKey = "metrics.enabled"

	DefaultListen    = "127.0.0.1:3000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type StorageConfig struct {
	Root string `mapstructure:"root"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads config.toml from the dsec config directory, then applies
// DSEC_* environment overrides. A missing file is not an error.
// When v already has a config file set, that file is used instead.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir(homeDir))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(StorageRootKey, defaultStorageRoot(homeDir))
	v.SetDefault(ServerListenKey, DefaultListen)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(LogFormatKey, DefaultLogFormat)
	v.SetDefault(MetricsEnabledKey, true)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Storage.Root, err = normalizeRoot(cfg.Storage.Root, homeDir)
	if err != nil {
		return Config{}, err
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Storage.Root == "" {
		return errors.New("storage root is empty")
	}
	if strings.TrimSpace(c.Server.Listen) == "" {
		return errors.New("server listen address is empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want %q or %q)", c.Log.Format, LogFormatConsole, LogFormatJSON)
	}

	return nil
}

func configDir(homeDir string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	return filepath.Join(homeDir, ".config", appName)
}

func defaultStorageRoot(homeDir string) string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "apps")
	}

	return filepath.Join(homeDir, ".local", "share", appName, "apps")
}

func normalizeRoot(root, homeDir string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", nil
	}
	if root == "~" {
		root = homeDir
	} else if strings.HasPrefix(root, "~/") {
		root = filepath.Join(homeDir, root[2:])
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve storage root: %w", err)
	}

	return filepath.Clean(absPath), nil
}

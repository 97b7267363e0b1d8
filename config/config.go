package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MEDIATOR_CACHE_DEFAULT_TTL.
const EnvPrefix = "MEDIATOR"

var (
	config *Config
	path   string
	once   sync.Once
	mu     sync.RWMutex
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Version  string
	Server   *Server
	Logger   *Logger
	Data     *Data
	Cache    *Cache
	Paging   *Paging
	Observes *Observes
	Viper    *viper.Viper
}

func init() {
	flag.StringVar(&path, "conf", "", "e.g: bin ./config.yaml")
	v = viper.New()
}

// Init initializes and loads the configuration.
func Init() (cfg *Config, err error) {
	once.Do(func() {
		cfg, err = loadConfiguration()
	})
	if err == nil && cfg == nil {
		cfg = current()
	}
	return cfg, err
}

// GetConfig returns the configuration.
// It does not handle errors internally; instead, it returns the error for the caller to handle.
func GetConfig() (*Config, error) {
	if cfg := current(); cfg != nil {
		return cfg, nil
	}
	cfg, err := Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

func current() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return config
}

func setCurrent(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	config = cfg
}

// SetPath overrides the -conf flag.
func SetPath(p string) {
	path = p
}

// loadConfiguration loads the configuration from the file and sets it globally.
func loadConfiguration() (*Config, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	setCurrent(cfg)
	return cfg, nil
}

// LoadConfig loads the configuration from the file. Without a path the
// usual locations are searched for config.{yaml,json}; when none exists
// the defaults and environment are used.
func LoadConfig(configPath string) (*Config, error) {
	return load(v, configPath)
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.mediator")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "mediator"),
		RunMode:  getStringOrDefault(v, "run_mode", "debug"),
		Version:  v.GetString("version"),
		Server:   getServerConfig(v),
		Logger:   getLoggerConfig(v),
		Data:     getDataConfig(v),
		Cache:    getCacheConfig(v),
		Paging:   getPagingConfig(v),
		Observes: getObservesConfig(v),
		Viper:    v,
	}, nil
}

// Reload reloads the configuration from the file.
func Reload() error {
	newConfig, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	setCurrent(newConfig)
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
// Reload failures are passed to onError, if set.
func Watch(callback func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		callback(current())
	})
	v.WatchConfig()
}

// IsProd reports whether the run mode is "release".
func (c *Config) IsProd() bool {
	return c.RunMode == "release"
}

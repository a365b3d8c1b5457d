/*
Package config manages TOML config for wordcheck.

The file is created with defaults on first use:

	[check]
	suggestion_limit = 0
	cache_size = 1024

	[server]
	max_words = 100000
	max_limit = 64
	min_prefix = 1
	max_prefix = 60

	[cli]
	dictionary = ""
	default_limit = 5
	no_filter = false

A file that fails to decode into the typed structure is parsed generically
and every value that still has the right type is kept.

A suggestion_limit of 0 returns every candidate. cli.dictionary is used when
no dictionary is given on the command line.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// CheckConfig holds spell check options.
type CheckConfig struct {
	SuggestionLimit int `toml:"suggestion_limit"`
	CacheSize       int `toml:"cache_size"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxWords  int `toml:"max_words"`
	MaxLimit  int `toml:"max_limit"`
	MinPrefix int `toml:"min_prefix"`
	MaxPrefix int `toml:"max_prefix"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Dictionary   string `toml:"dictionary"`
	DefaultLimit int    `toml:"default_limit"`
	NoFilter     bool   `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Check: CheckConfig{
			SuggestionLimit: 0,
			CacheSize:       1024,
		},
		Server: ServerConfig{
			MaxWords:  100000,
			MaxLimit:  64,
			MinPrefix: 1,
			MaxPrefix: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 5,
			NoFilter:     false,
		},
	}
}

// Validate rejects values the checker and server cannot work with.
func (c *Config) Validate() error {
	if c.Check.SuggestionLimit < 0 {
		return fmt.Errorf("check.suggestion_limit must be >= 0, got %d", c.Check.SuggestionLimit)
	}
	if c.Check.CacheSize < 0 {
		return fmt.Errorf("check.cache_size must be >= 0, got %d", c.Check.CacheSize)
	}
	if c.Server.MaxWords < 1 {
		return fmt.Errorf("server.max_words must be >= 1, got %d", c.Server.MaxWords)
	}
	if c.Server.MinPrefix < 0 || c.Server.MaxPrefix < c.Server.MinPrefix {
		return fmt.Errorf("server prefix bounds invalid: min=%d max=%d", c.Server.MinPrefix, c.Server.MaxPrefix)
	}
	return nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [ConfigDir]/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string, resolver *utils.PathResolver) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	if resolver == nil {
		return DefaultConfig(), ""
	}
	defaultPath, err := resolver.GetConfigPath(FileName)
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config := InitConfig(defaultPath)
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing.
// It never fails; problems are logged and defaults returned.
func InitConfig(configPath string) *Config {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig()
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig()
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	return config
}

// LoadConfig loads from a TOML file, recovering what it can from a
// partially invalid one. The result is validated.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// tryPartialParse keeps every correctly typed value from configPath
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not parse any valid configuration from %s: %w", configPath, err)
	}

	if section, ok := utils.ExtractSection(tempConfig, "check"); ok {
		extractCheckConfig(section, &config.Check)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractCheckConfig(data map[string]any, check *CheckConfig) {
	if val, ok := utils.ExtractInt64(data, "suggestion_limit"); ok {
		check.SuggestionLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		check.CacheSize = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		server.MaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "dictionary"); ok {
		cli.Dictionary = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

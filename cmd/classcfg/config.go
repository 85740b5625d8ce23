package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rota-app/classcfg"
	"github.com/rota-app/classcfg/internal/report"
	"github.com/spf13/cobra"
)

const configFileName = ".classcfg.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = configFileName
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; unset flags only fill missing keys)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLASSCFG_* prefix)
	if err := k.Load(env.Provider("CLASSCFG_", ".", func(s string) string {
		// CLASSCFG_FORMAT -> format
		// CLASSCFG_ROOT -> root
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CLASSCFG_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the configuration record from koanf state.
// Fields missing from every source keep their Default() value; a field that
// is present but empty stays empty so validation can report it.
func buildConfig() (classcfg.Config, error) {
	config := classcfg.Default()

	// Handle content: check flag key first, then config key
	if patterns := k.Strings("pattern"); len(patterns) > 0 {
		config.Content = patterns
	} else if k.Exists("content") {
		config.Content = k.Strings("content")
	}

	if k.Exists("theme") {
		var theme classcfg.Theme
		if err := k.Unmarshal("theme", &theme); err != nil {
			return config, fmt.Errorf("decoding theme: %w", err)
		}
		if theme.Extend == nil {
			theme.Extend = map[string]any{}
		}
		config.Theme = theme
	}

	if k.Exists("plugins") {
		config.Plugins = k.Strings("plugins")
	}

	return config.Clone(), nil
}

// reportOptions builds reporter options from koanf state.
func reportOptions() report.Options {
	return report.Options{
		Format:    report.ParseFormat(getStringWithFallback("format", "output.format", "text")),
		UseColors: getBoolWithFallback("color", "color", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
}

// configPath returns the config file path in effect.
func configPath() string {
	return getStringWithFallback("config", "config", configFileName)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

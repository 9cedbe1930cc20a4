package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/substrata-tokens/substrata"
)

const (
	defaultConfigFile = ".substrata.yaml"
	defaultTokensDir  = "./src/tokens"
	defaultOutputFile = "./tokens.json"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
// A config file that exists but does not parse is an error, never "use defaults".
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// .env never overrides variables already present in the environment
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	}

	// 2. Environment variables (SUBSTRATA_* prefix)
	if err := k.Load(env.Provider("SUBSTRATA_", ".", func(s string) string {
		// SUBSTRATA_TOKENS -> tokens
		// SUBSTRATA_OUTPUT -> output
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SUBSTRATA_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config from koanf state.
// Paths are resolved against the working directory.
func buildGenerateConfig() (substrata.Config, error) {
	tokensDir, err := filepath.Abs(getStringWithDefault("tokens", defaultTokensDir))
	if err != nil {
		return substrata.Config{}, fmt.Errorf("resolving tokens directory: %w", err)
	}
	output, err := filepath.Abs(getStringWithDefault("output", defaultOutputFile))
	if err != nil {
		return substrata.Config{}, fmt.Errorf("resolving output path: %w", err)
	}

	includes := k.Strings("include")
	if len(includes) == 0 {
		includes = substrata.DefaultIncludes
	}
	if err := substrata.ValidatePatterns(includes); err != nil {
		return substrata.Config{}, err
	}

	return substrata.Config{
		TokensDir: tokensDir,
		Output:    output,
		Includes:  includes,
		Excludes:  k.Strings("exclude"),
		Strict:    getBoolWithDefault("strict", false),
		Logger:    newLogger(os.Stderr, getBoolWithDefault("verbose", false)),
	}, nil
}

// newLogger returns a text logger that shows debug events only when verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getStringWithDefault returns the merged value for key, or defaultVal when unset or empty.
func getStringWithDefault(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithDefault returns the merged value for key, or defaultVal when unset.
func getBoolWithDefault(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

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
	"github.com/spf13/cobra"

	cssguide "github.com/j-d-b/css-guide"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssguide.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSGUIDE_* prefix)
	if err := k.Load(env.Provider("CSSGUIDE_", ".", func(s string) string {
		// CSSGUIDE_LINT_PATHS -> lint.paths
		// CSSGUIDE_STRICT -> strict
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSGUIDE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildLintConfig constructs the library's Config struct from koanf state.
func buildLintConfig() cssguide.Config {
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = []string{
			"**/*.css",
			"**/*.scss",
			"**/*.html",
			"**/*.templ",
		}
	}

	return cssguide.Config{
		Variant:          getStringWithFallback("variant", "variant", "double-underscore"),
		CustomNamespaces: customNamespaces(),
		Strict:           getBoolWithFallback("strict", "strict", false),
		ScanPaths:        scanPaths,
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		MaxIssues:        getIntWithFallback("max-issues", "lint.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// customNamespaces reads the prefix -> namespace table from config. The
// validator checks the values, so they pass through unvalidated here.
func customNamespaces() map[string]cssguide.Namespace {
	raw := k.StringMap("namespaces")
	if len(raw) == 0 {
		return nil
	}

	table := make(map[string]cssguide.Namespace, len(raw))
	for prefix, ns := range raw {
		table[prefix] = cssguide.Namespace(ns)
	}
	return table
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

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	EnvOutDir   = "SPRITEGEN_OUT"
	EnvCatalog  = "SPRITEGEN_CATALOG"
	EnvFontDirs = "SPRITEGEN_FONT_DIRS"
	EnvStdioLog = "SPRITEGEN_STDIO_LOG"
	EnvDebug    = "SPRITEGEN_DEBUG"

	defaultOutDir   = "assets"
	debugLogPath    = "./spritegen-debug.log"
	defaultFBDevice = "/dev/fb0"
)

// Config contains settings shared by all commands. Flags override it.
type Config struct {
	OutDir   string
	Catalog  string
	FontDirs []string
	StdioLog string
	Debug    bool
}

// DefaultConfigFromEnv reads SPRITEGEN_* variables on top of built-in defaults.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{OutDir: defaultOutDir}

	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	cfg.Catalog = os.Getenv(EnvCatalog)
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	if v := os.Getenv(EnvFontDirs); v != "" {
		for _, dir := range filepath.SplitList(v) {
			if dir != "" {
				cfg.FontDirs = append(cfg.FontDirs, dir)
			}
		}
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	return cfg, nil
}

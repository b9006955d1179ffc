// Package config loads pyfmt.toml, the optional per-project settings
// file discovered by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"pyfmt/internal/format"
)

// FileName is the manifest file looked up in the directory tree.
const FileName = "pyfmt.toml"

// FormatSection holds the [format] settings.
type FormatSection struct {
	MaxLineLen         int  `toml:"max_line_len"`
	IndentWidth        int  `toml:"indent_width"`
	Collapse           bool `toml:"collapse"`
	StripFStringPrefix bool `toml:"strip_fstring_prefix"`
	CheckIndent        bool `toml:"check_indent"`
	// Extensions are the file suffixes collected from directories.
	Extensions []string `toml:"extensions"`
}

// OutputSection holds the [output] settings.
type OutputSection struct {
	Format         string `toml:"format"` // pretty | json
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// Config is the decoded manifest merged over defaults.
type Config struct {
	Format FormatSection `toml:"format"`
	Output OutputSection `toml:"output"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	opts := format.DefaultOptions()
	return Config{
		Format: FormatSection{
			MaxLineLen:         opts.MaxLineLen,
			IndentWidth:        opts.IndentWidth,
			Collapse:           opts.Collapse,
			StripFStringPrefix: opts.StripFStringPrefix,
			CheckIndent:        opts.CheckIndent,
			Extensions:         []string{".py"},
		},
		Output: OutputSection{
			Format:         "pretty",
			MaxDiagnostics: 256,
		},
	}
}

// FormatOptions converts the [format] section into pipeline options.
func (c Config) FormatOptions() format.Options {
	return format.Options{
		MaxLineLen:         c.Format.MaxLineLen,
		IndentWidth:        c.Format.IndentWidth,
		Collapse:           c.Format.Collapse,
		StripFStringPrefix: c.Format.StripFStringPrefix,
		CheckIndent:        c.Format.CheckIndent,
	}
}

func (c Config) validate() error {
	if c.Format.MaxLineLen <= 0 {
		return fmt.Errorf("[format].max_line_len must be positive, got %d", c.Format.MaxLineLen)
	}
	if c.Format.IndentWidth <= 0 {
		return fmt.Errorf("[format].indent_width must be positive, got %d", c.Format.IndentWidth)
	}
	for _, ext := range c.Format.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("[format].extensions entries must start with a dot, got %q", ext)
		}
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("[output].format must be pretty or json, got %q", c.Output.Format)
	}
	return nil
}

// Load decodes the manifest at path over the defaults, so a partial
// file only overrides the keys it names.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from startDir to locate the manifest.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve returns the effective configuration: the explicit path when
// given, else the nearest manifest above startDir, else defaults. The
// returned path is empty when defaults were used.
func Resolve(startDir, explicitPath string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := Load(explicitPath)
		return cfg, explicitPath, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

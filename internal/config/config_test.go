package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Format.MaxLineLen != 200 {
		t.Errorf("MaxLineLen = %d, want 200", cfg.Format.MaxLineLen)
	}
	if cfg.Format.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4", cfg.Format.IndentWidth)
	}
	if !cfg.Format.Collapse || !cfg.Format.StripFStringPrefix || !cfg.Format.CheckIndent {
		t.Errorf("default toggles = %+v", cfg.Format)
	}
	if len(cfg.Format.Extensions) != 1 || cfg.Format.Extensions[0] != ".py" {
		t.Errorf("Extensions = %v, want [.py]", cfg.Format.Extensions)
	}
	if cfg.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[format]\nmax_line_len = 100\ncollapse = false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.MaxLineLen != 100 {
		t.Errorf("MaxLineLen = %d, want 100", cfg.Format.MaxLineLen)
	}
	if cfg.Format.Collapse {
		t.Error("Collapse not overridden")
	}
	// Untouched keys keep their defaults.
	if cfg.Format.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4", cfg.Format.IndentWidth)
	}
	if !cfg.Format.StripFStringPrefix {
		t.Error("StripFStringPrefix lost its default")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	for _, tt := range []struct {
		name    string
		content string
	}{
		{"bad toml", "[format\n"},
		{"zero line length", "[format]\nmax_line_len = 0\n"},
		{"negative indent", "[format]\nindent_width = -2\n"},
		{"unknown output format", "[output]\nformat = \"xml\"\n"},
		{"extension without dot", "[format]\nextensions = [\"py\"]\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, dir, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load accepted invalid manifest")
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[format]\nmax_line_len = 120\n")
	nested := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file under %q", path, root)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[format]\nindent_width = 2\n")

	cfg, path, err := Resolve(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Error("Resolve did not report the manifest path")
	}
	if cfg.Format.IndentWidth != 2 {
		t.Errorf("IndentWidth = %d, want 2", cfg.Format.IndentWidth)
	}

	explicit := writeManifest(t, t.TempDir(), "[format]\nmax_line_len = 80\n")
	cfg, path, err = Resolve(root, explicit)
	if err != nil {
		t.Fatal(err)
	}
	if path != explicit {
		t.Errorf("path = %q, want %q", path, explicit)
	}
	if cfg.Format.MaxLineLen != 80 {
		t.Errorf("MaxLineLen = %d, want 80", cfg.Format.MaxLineLen)
	}
}

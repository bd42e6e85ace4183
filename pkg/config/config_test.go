package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/listview/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	opts := cfg.DotOptions()
	if !opts.Highlight || opts.NewColor != "blue" || opts.ModifiedColor != "red" || !opts.OrderingEdges {
		t.Errorf("DotOptions() = %+v", opts)
	}
	if !cfg.Transcript.ReadOperations || cfg.Transcript.InlineSVG {
		t.Errorf("Transcript defaults = %+v", cfg.Transcript)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[render]
modified_color = "orange"
ordering_edges = false

[transcript]
title = "Lab 5"
read_operations = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.ModifiedColor != "orange" || cfg.Render.OrderingEdges {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Render.NewColor != "blue" || !cfg.Render.Highlight {
		t.Errorf("unset keys should keep defaults: %+v", cfg.Render)
	}
	if cfg.Transcript.Title != "Lab 5" || cfg.Transcript.ReadOperations {
		t.Errorf("Transcript = %+v", cfg.Transcript)
	}
	topts := cfg.TranscriptOptions()
	if topts.Title != "Lab 5" || !topts.Legend || topts.ModifiedColor != "orange" {
		t.Errorf("TranscriptOptions() = %+v", topts)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"syntax", "[render\n", "decode config"},
		{"unknown key", "[render]\nhighlite = true\n", "unknown keys render.highlite"},
		{"empty color", "[render]\nnew_color = \"\"\n", "render.new_color must not be empty"},
		{"same colors", "[render]\nnew_color = \"red\"\n", "must differ"},
		{"wrong type", "[render]\nhighlight = \"yes\"\n", "decode config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Fatalf("Load() error = %v, want CONFIGURATION_FAILURE", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSameColorsAllowedWithoutHighlight(t *testing.T) {
	cfg := Default()
	cfg.Render.Highlight = false
	cfg.Render.NewColor = "black"
	cfg.Render.ModifiedColor = "black"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != FileName || filepath.Base(filepath.Dir(p)) != "listview" {
		t.Errorf("DefaultPath() = %q", p)
	}
}

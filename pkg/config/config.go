// Package config loads listview settings from TOML.
//
// Settings are read from $XDG_CONFIG_HOME/listview/config.toml when present
// (see [DefaultPath]) or from an explicit path. Missing keys keep their
// [Default] values; unknown keys are rejected. Command-line flags are applied
// on top by the CLI.
//
//	[render]
//	highlight = true
//	new_color = "blue"
//	modified_color = "red"
//	ordering_edges = true
//
//	[transcript]
//	title = "LinkedList operation transcript"
//	inline_svg = false
//	read_operations = true
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/render/dot"
	"github.com/matzehuels/listview/pkg/transcript"
)

// FileName is the config file name inside the application config directory.
const FileName = "config.toml"

// Config is the full set of settings.
type Config struct {
	Render     Render     `toml:"render"`
	Transcript Transcript `toml:"transcript"`
}

// Render holds diagram settings.
type Render struct {
	Highlight     bool   `toml:"highlight"`
	NewColor      string `toml:"new_color"`
	ModifiedColor string `toml:"modified_color"`
	OrderingEdges bool   `toml:"ordering_edges"`
}

// Transcript holds HTML transcript settings.
type Transcript struct {
	Title          string `toml:"title"`
	InlineSVG      bool   `toml:"inline_svg"`
	ReadOperations bool   `toml:"read_operations"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render: Render{
			Highlight:     true,
			NewColor:      dot.DefaultNewColor,
			ModifiedColor: dot.DefaultModifiedColor,
			OrderingEdges: true,
		},
		Transcript: Transcript{
			Title:          transcript.DefaultTitle,
			ReadOperations: true,
		},
	}
}

// DefaultPath returns the XDG location of the config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "listview", FileName)
}

// Load reads path over the defaults. An empty path means [DefaultPath], in
// which case a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeConfiguration, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfiguration, err, "decode config %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeConfiguration, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the renderer cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Render.NewColor) == "" {
		return errors.New(errors.ErrCodeConfiguration, "render.new_color must not be empty")
	}
	if strings.TrimSpace(c.Render.ModifiedColor) == "" {
		return errors.New(errors.ErrCodeConfiguration, "render.modified_color must not be empty")
	}
	if c.Render.NewColor == c.Render.ModifiedColor && c.Render.Highlight {
		return errors.New(errors.ErrCodeConfiguration, "render.new_color and render.modified_color must differ")
	}
	return nil
}

// DotOptions converts the render settings.
func (c Config) DotOptions() dot.Options {
	return dot.Options{
		Highlight:     c.Render.Highlight,
		NewColor:      c.Render.NewColor,
		ModifiedColor: c.Render.ModifiedColor,
		OrderingEdges: c.Render.OrderingEdges,
	}
}

// TranscriptOptions converts the transcript settings. The legend names the
// highlight colors when highlighting is on.
func (c Config) TranscriptOptions() transcript.Options {
	return transcript.Options{
		Title:         c.Transcript.Title,
		InlineSVG:     c.Transcript.InlineSVG,
		Legend:        c.Render.Highlight,
		NewColor:      c.Render.NewColor,
		ModifiedColor: c.Render.ModifiedColor,
	}
}

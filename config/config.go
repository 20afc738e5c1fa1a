// @focus: #config { env, flags }
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lixenwraith/glyph-painter/core"
)

// Environment variables read by ApplyEnv
const (
	EnvSound  = "GLYPH_PAINTER_SOUND"
	EnvVolume = "GLYPH_PAINTER_VOLUME"
	EnvStash  = "GLYPH_PAINTER_STASH"
	EnvDebug  = "GLYPH_PAINTER_DEBUG"
)

// MaxExportScale bounds -scale; a 256x256 document at this scale is 32768x65536 pixels
const MaxExportScale = 16

var ErrNoDocument = errors.New("document path required")

// Config holds the runtime settings of one editor session
type Config struct {
	Path      string // document file, positional argument
	StashPath string // sqlite file for clipboard slots, empty disables
	Sound     bool
	Volume    float64 // 0.0-1.0
	Debug     bool
	Width     int // size of a new document
	Height    int

	ExportPNG   string // render the document to this file and exit
	ExportScale int
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		StashPath:   defaultStashPath(),
		Sound:       true,
		Volume:      0.5,
		Width:       core.DefaultWidth,
		Height:      core.DefaultHeight,
		ExportScale: 1,
	}
}

func defaultStashPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "glyph-painter", "stash.db")
}

// ApplyEnv overrides fields from environment variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if sound := os.Getenv(EnvSound); sound != "" {
		if val, err := strconv.ParseBool(sound); err == nil {
			c.Sound = val
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Volume = percent(val)
		}
	}

	// Set but empty disables the stash
	if path, ok := os.LookupEnv(EnvStash); ok {
		c.StashPath = path
	}

	if debug := os.Getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Debug = val
		}
	}
}

// BindFlags registers flags on fs using the current values as defaults,
// so parsing after ApplyEnv gives flags the last word
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging to logs/")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "enable audible feedback")
	fs.Func("volume", fmt.Sprintf("sound volume 0-100 (default %d)", int(c.Volume*100+0.5)), func(s string) error {
		val, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		c.Volume = percent(val)
		return nil
	})
	fs.StringVar(&c.StashPath, "stash", c.StashPath, "clipboard stash database, empty disables")
	fs.IntVar(&c.Width, "width", c.Width, "width of a new document")
	fs.IntVar(&c.Height, "height", c.Height, "height of a new document")
	fs.StringVar(&c.ExportPNG, "export", c.ExportPNG, "render the document to a PNG file and exit")
	fs.IntVar(&c.ExportScale, "scale", c.ExportScale, "pixel scale of -export (1-16)")
}

// Parse binds flags, parses args and takes the document path from the first positional argument
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return ErrNoDocument
	}
	c.Path = fs.Arg(0)
	return c.Validate()
}

// Validate checks ranges that flags and env cannot express
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoDocument
	}
	if c.Width < 1 || c.Width > core.MaxWidth || c.Height < 1 || c.Height > core.MaxHeight {
		return fmt.Errorf("document size %dx%d: %w", c.Width, c.Height, core.ErrInvalidResize)
	}
	if c.ExportScale < 1 || c.ExportScale > MaxExportScale {
		return fmt.Errorf("export scale %d must be between 1 and %d", c.ExportScale, MaxExportScale)
	}
	return nil
}

func percent(val int) float64 {
	v := float64(val) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

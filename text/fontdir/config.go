// Package fontdir provides fonts to the text package from the file system.
//
// It reads font configuration files in TOML, loads font files from
// directories (including the platform font directories), and can watch
// those directories so a SharedFontConfig picks up added or removed fonts.
package fontdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/canvas2d/text"
)

// ErrConfig is returned for an unreadable or malformed config file.
var ErrConfig = errors.New("fontdir: invalid config")

// FontFile names a single font file in a config file.
type FontFile struct {
	Path string `toml:"path"`
	// Family overrides the family name from the font.
	Family string `toml:"family"`
}

// File is the TOML schema of a font config file:
//
//	font_dirs = ["fonts", "/usr/share/fonts/truetype/noto"]
//	load_system_fonts = false
//	hinting = true
//
//	[generic_families]
//	sans-serif = ["Noto Sans", "Arial"]
//
//	[[fonts]]
//	path = "brand.ttf"
//	family = "Brand"
//
// Relative paths are resolved against the directory of the file.
type File struct {
	FontDirs        []string            `toml:"font_dirs"`
	LoadSystemFonts *bool               `toml:"load_system_fonts"`
	Hinting         bool                `toml:"hinting"`
	NoDefaultFonts  bool                `toml:"no_default_fonts"`
	GenericFamilies map[string][]string `toml:"generic_families"`
	Fonts           []FontFile          `toml:"fonts"`
}

// ParseFile decodes a config file held in memory.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %w", ErrConfig, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return &f, nil
}

// Config converts the file to a text.FontConfig. Paths are resolved
// against baseDir; font files listed under fonts are read and added as
// custom fonts.
func (f *File) Config(baseDir string) (text.FontConfig, error) {
	cfg := text.DefaultFontConfig()
	if f.LoadSystemFonts != nil {
		cfg.LoadSystemFonts = *f.LoadSystemFonts
	}
	cfg.Hinting = f.Hinting
	cfg.NoDefaultFonts = f.NoDefaultFonts
	for name, fams := range f.GenericFamilies {
		cfg.GenericFamilies[name] = fams
	}
	for _, dir := range f.FontDirs {
		cfg.FontDirs = append(cfg.FontDirs, resolve(baseDir, dir))
	}
	for _, ff := range f.Fonts {
		data, err := os.ReadFile(resolve(baseDir, ff.Path))
		if err != nil {
			return text.FontConfig{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		cfg.CustomFonts = append(cfg.CustomFonts, text.CustomFont{Data: data, Family: ff.Family})
	}
	return cfg, nil
}

// LoadConfig reads the config file at path and converts it with
// File.Config.
func LoadConfig(path string) (text.FontConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return text.FontConfig{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return text.FontConfig{}, err
	}
	return f.Config(filepath.Dir(path))
}

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) || baseDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

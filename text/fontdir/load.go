package fontdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/canvas2d/text"
)

// fontExts are the file extensions read as fonts.
var fontExts = []string{".ttf", ".otf", ".ttc", ".otc"}

// IsFontFile reports whether name has a font file extension.
func IsFontFile(name string) bool {
	return slices.Contains(fontExts, strings.ToLower(filepath.Ext(name)))
}

// printfLogger adapts the text logger to the fontscan logger interface.
type printfLogger struct{}

func (printfLogger) Printf(format string, args ...interface{}) {
	text.Logger().Debug("fontdir: " + fmt.Sprintf(format, args...))
}

// SystemDirs returns the platform font directories that exist.
func SystemDirs() ([]string, error) {
	dirs, err := fontscan.DefaultFontDirectories(printfLogger{})
	if err != nil {
		return nil, fmt.Errorf("fontdir: system font directories: %w", err)
	}
	return dirs, nil
}

// Dirs returns the directories Load reads for cfg: its FontDirs followed
// by the system directories when LoadSystemFonts is set.
func Dirs(cfg text.FontConfig) []string {
	dirs := slices.Clone(cfg.FontDirs)
	if cfg.LoadSystemFonts {
		sys, err := SystemDirs()
		if err != nil {
			text.Logger().Warn("fontdir: no system fonts", "err", err)
		}
		dirs = append(dirs, sys...)
	}
	return dirs
}

// Load returns a copy of cfg with the font files found under Dirs(cfg)
// appended to its custom fonts. Missing directories and unreadable files
// are logged and skipped.
func Load(cfg text.FontConfig) text.FontConfig {
	out := cfg.Clone()
	for _, dir := range Dirs(cfg) {
		fonts, err := ReadDir(dir)
		if err != nil {
			text.Logger().Warn("fontdir: skipping directory", "dir", dir, "err", err)
			continue
		}
		out.CustomFonts = append(out.CustomFonts, fonts...)
	}
	text.Logger().Debug("fontdir: fonts loaded", "custom_fonts", len(out.CustomFonts))
	return out
}

// ReadDir reads every font file below dir, in lexical order.
func ReadDir(dir string) ([]text.CustomFont, error) {
	var fonts []text.CustomFont
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			text.Logger().Warn("fontdir: walk", "path", path, "err", err)
			return nil
		}
		if d.IsDir() || !IsFontFile(d.Name()) {
			return nil
		}
		data, err := os.ReadFile(path) //nolint:gosec // paths come from configured font directories
		if err != nil {
			text.Logger().Warn("fontdir: read font", "path", path, "err", err)
			return nil
		}
		fonts = append(fonts, text.CustomFont{Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fontdir: walk %s: %w", dir, err)
	}
	return fonts, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

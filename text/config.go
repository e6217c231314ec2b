package text

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// CustomFont is font file data registered with a FontConfig.
type CustomFont struct {
	Data []byte
	// Family overrides the family name from the font's name table.
	Family string
}

// GenericFamilies maps CSS generic family names ("serif", "sans-serif",
// "monospace", "cursive", "fantasy") to concrete families in priority order.
type GenericFamilies map[string][]string

// DefaultGenericFamilies returns the browser-like generic family preferences.
// The bundled Go fonts are appended during resolution as a last resort.
func DefaultGenericFamilies() GenericFamilies {
	return GenericFamilies{
		"sans-serif": {"Arial", "Helvetica", "Liberation Sans"},
		"monospace":  {"Courier New", "Courier", "Liberation Mono", "DejaVu Sans Mono"},
		"serif":      {"Times New Roman", "Times", "Liberation Serif", "DejaVu Serif"},
		"cursive":    {"Comic Sans MS", "Apple Chancery"},
		"fantasy":    {"Impact", "Papyrus"},
	}
}

// FontConfig describes the fonts available to a FontSystem.
//
// The text package never touches the file system. FontDirs and
// LoadSystemFonts are honoured by providers such as text/fontdir, which
// read the files and append them to CustomFonts.
type FontConfig struct {
	CustomFonts     []CustomFont    `toml:"-"`
	GenericFamilies GenericFamilies `toml:"generic_families"`
	FontDirs        []string        `toml:"font_dirs"`
	LoadSystemFonts bool            `toml:"load_system_fonts"`
	// Hinting snaps glyph origins to whole device pixels.
	Hinting bool `toml:"hinting"`
	// NoDefaultFonts leaves the bundled Go fonts out of the database.
	NoDefaultFonts bool `toml:"no_default_fonts"`
}

// DefaultFontConfig returns a config with the default generic families and
// system font loading enabled.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		GenericFamilies: DefaultGenericFamilies(),
		LoadSystemFonts: true,
	}
}

// Clone returns a deep copy. Font data is shared since it is never mutated.
func (c FontConfig) Clone() FontConfig {
	c.CustomFonts = slices.Clone(c.CustomFonts)
	c.FontDirs = slices.Clone(c.FontDirs)
	if c.GenericFamilies != nil {
		g := make(GenericFamilies, len(c.GenericFamilies))
		for k, v := range c.GenericFamilies {
			g[k] = slices.Clone(v)
		}
		c.GenericFamilies = g
	}
	return c
}

// SharedFontConfig is a FontConfig shared by several canvases.
//
// Every update bumps a version counter. A FontSystem remembers the version
// its database was built from and rebuilds when the counter moves on.
// SharedFontConfig is safe for concurrent use.
type SharedFontConfig struct {
	mu      sync.RWMutex
	cfg     FontConfig
	db      *FontDB // built lazily, reset on update
	version atomic.Uint64
}

// NewSharedFontConfig creates a shared config at version 1.
func NewSharedFontConfig(cfg FontConfig) *SharedFontConfig {
	s := &SharedFontConfig{cfg: cfg.Clone()}
	s.version.Store(1)
	return s
}

// Version returns the current config version.
func (s *SharedFontConfig) Version() uint64 {
	return s.version.Load()
}

// Config returns a copy of the current config.
func (s *SharedFontConfig) Config() FontConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Set replaces the config and returns the new version.
func (s *SharedFontConfig) Set(cfg FontConfig) uint64 {
	return s.Update(func(c *FontConfig) { *c = cfg.Clone() })
}

// Update applies fn to the config under the write lock and returns the
// new version.
func (s *SharedFontConfig) Update(fn func(*FontConfig)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
	s.db = nil
	v := s.version.Add(1)
	Logger().Debug("font config updated",
		"version", v,
		"custom_fonts", len(s.cfg.CustomFonts),
		"generic_families", slices.Sorted(maps.Keys(s.cfg.GenericFamilies)))
	return v
}

// Snapshot returns the font database for the current config together with
// the version it was built from.
func (s *SharedFontConfig) Snapshot() (*FontDB, uint64) {
	s.mu.RLock()
	db, v := s.db, s.version.Load()
	s.mu.RUnlock()
	if db != nil {
		return db, v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		s.db = NewFontDB(s.cfg)
	}
	return s.db, s.version.Load()
}

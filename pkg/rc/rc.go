// Package rc implements the amath configuration file.
//
// The configuration file is in TOML, like:
//
//	decimal-sign = ","
//	max-depth = 64
//	symbol-files = ["physics.yaml"]
//
//	[style]
//	color = "black"
//	display-style = false
//
// Relative paths are resolved against the directory of the configuration file.
package rc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"amath.elv.sh/pkg/env"
	"amath.elv.sh/pkg/logutil"
	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/parse"
	"amath.elv.sh/pkg/prog"
	"amath.elv.sh/pkg/symbol"
	"github.com/BurntSushi/toml"
)

var logger = logutil.GetLogger("[rc] ")

// Config is the content of a configuration file.
type Config struct {
	DecimalSign string   `toml:"decimal-sign"`
	LegacyPhi   bool     `toml:"legacy-phi"`
	MaxDepth    int      `toml:"max-depth"`
	SymbolFiles []string `toml:"symbol-files"`
	DB          string   `toml:"db"`
	Style       Style    `toml:"style"`
}

// Style is the [style] table of a configuration file.
type Style struct {
	Color        string `toml:"color"`
	FontSize     string `toml:"font-size"`
	FontFamily   string `toml:"font-family"`
	DisplayStyle bool   `toml:"display-style"`
	Title        bool   `toml:"title"`
}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	d := mathml.DefaultDecoration
	return &Config{
		DecimalSign: ".",
		Style: Style{
			Color: d.Color, FontSize: d.FontSize, FontFamily: d.FontFamily,
			DisplayStyle: d.DisplayStyle, Title: d.Title,
		},
	}
}

// Errors returned by Load for invalid values.
var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrInvalidValue = errors.New("invalid value")
	errNoUserPaths  = errors.New("neither XDG_CONFIG_HOME nor HOME is set")
)

// Path returns the path of the configuration file: $AMATH_RC if set, or
// amath/rc.toml under the XDG config directory.
func Path() (string, error) {
	if p := os.Getenv(env.AMATH_RC); p != "" {
		return p, nil
	}
	return xdgPath(env.XDG_CONFIG_HOME, ".config", "rc.toml")
}

// DBPath returns the default path of the database: $AMATH_DB if set, or
// amath/db.bolt under the XDG data directory.
func DBPath() (string, error) {
	if p := os.Getenv(env.AMATH_DB); p != "" {
		return p, nil
	}
	return xdgPath(env.XDG_DATA_HOME, filepath.Join(".local", "share"), "db.bolt")
}

func xdgPath(xdgVar, homeDefault, name string) (string, error) {
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, "amath", name), nil
	}
	home := os.Getenv(env.HOME)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil || home == "" {
			return "", errNoUserPaths
		}
	}
	return filepath.Join(home, homeDefault, "amath", name), nil
}

// Load reads the configuration file at path. Keys missing from the file keep
// their default values. A nonexistent file is not an error and yields the
// default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("no configuration file at %s", path)
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	logger.Printf("loaded configuration from %s", path)
	return cfg, nil
}

func (cfg *Config) check() error {
	if utf8.RuneCountInString(cfg.DecimalSign) != 1 {
		return fmt.Errorf("%w: decimal-sign must be one character, got %q", ErrInvalidValue, cfg.DecimalSign)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: max-depth must not be negative, got %d", ErrInvalidValue, cfg.MaxDepth)
	}
	return nil
}

func (cfg *Config) resolve(dir string) {
	for i, file := range cfg.SymbolFiles {
		cfg.SymbolFiles[i] = resolve(dir, file)
	}
	if cfg.DB != "" {
		cfg.DB = resolve(dir, cfg.DB)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// ParseConfig returns the parser configuration, using the given symbol table.
func (cfg *Config) ParseConfig(t *symbol.Table) parse.Config {
	sign, _ := utf8.DecodeRuneInString(cfg.DecimalSign)
	if sign == utf8.RuneError {
		sign = 0
	}
	return parse.Config{
		Symbols: t, DecimalSign: sign, LegacyPhi: cfg.LegacyPhi, MaxDepth: cfg.MaxDepth,
	}
}

// Decoration returns the decoration applied to converted formulas.
func (cfg *Config) Decoration() mathml.Decoration {
	s := cfg.Style
	return mathml.Decoration{
		Color: s.Color, FontSize: s.FontSize, FontFamily: s.FontFamily,
		DisplayStyle: s.DisplayStyle, Title: s.Title,
	}
}

// RegisterSymbolFiles loads all symbol files and registers their definitions
// in r. Nothing is registered if any file cannot be loaded.
func (cfg *Config) RegisterSymbolFiles(r *symbol.Registry) error {
	var all []symbol.Def
	for _, file := range cfg.SymbolFiles {
		defs, err := loadSymbolFile(file)
		if err != nil {
			return err
		}
		all = append(all, defs...)
	}
	return r.RegisterDefinitions(all)
}

func loadSymbolFile(name string) ([]symbol.Def, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := symbol.LoadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return defs, nil
}

// Setup loads the configuration file selected by the flags and registers its
// symbol files in symbol.Default. The DB field of the result is the database
// path to use: the --db flag, the db key of the configuration file, or
// DBPath, in order of preference.
func Setup(f *prog.Flags) (*Config, error) {
	cfg := Default()
	if !f.NoRC {
		path := f.RC
		if path == "" {
			var err error
			path, err = Path()
			if err != nil {
				return nil, err
			}
		}
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.RegisterSymbolFiles(symbol.Default); err != nil {
			return nil, err
		}
	}
	switch {
	case f.DB != "":
		cfg.DB = f.DB
	case cfg.DB == "":
		if p, err := DBPath(); err == nil {
			cfg.DB = p
		} else {
			logger.Printf("no database: %v", err)
		}
	}
	return cfg, nil
}

// Package config loads reuseid configuration from YAML or TOML files.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/reuseid/internal/basekind"
	"github.com/sirkon/reuseid/internal/expand"
)

//go:embed default.yaml
var defaultConfig []byte

var (
	ErrUnknownFormat    = errors.New("unknown config format")
	ErrInvalidDirective = errors.New("invalid directive")
	ErrEmptyDirective   = errors.New("directive is empty")
	ErrUnknownDialect   = expand.ErrUnknownDialect
	ErrInvalidOutput    = errors.New("invalid output file name")
	ErrEmptyFramework   = errors.New("framework name is empty")
)

// Format of a config file.
type Format int

const (
	_ Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format-invalid(%d)", int(f))
	}
}

// FormatOf picks the config format by file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Config of reuseid hosts.
type Config struct {
	Directive  string         `yaml:"directive" toml:"directive"`
	Dialect    expand.Dialect `yaml:"dialect" toml:"dialect"`
	Output     string         `yaml:"output" toml:"output"`
	Frameworks []Framework    `yaml:"frameworks" toml:"frameworks"`
}

// Framework groups base kinds of a single host framework.
type Framework struct {
	Name  string   `yaml:"name" toml:"name"`
	Kinds []string `yaml:"kinds" toml:"kinds"`
}

// Default returns the embedded default config.
func Default() *Config {
	cfg, err := Parse(defaultConfig, FormatYAML)
	if err != nil {
		panic(fmt.Errorf("parse embedded default config: %w", err))
	}

	return cfg
}

// Load reads the config file at path. An empty path means the default config.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes config data. Fields absent from data keep their default values.
// Fields explicitly set to an empty value are rejected by Validate.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Config{
		Directive: "reuseid:identifier",
		Dialect:   expand.DialectGo,
		Output:    "reuseid_gen.go",
	}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fillDefaults sets the framework list when data had none. Slices are not
// preset before decoding since the TOML decoder reuses their elements.
func (c *Config) fillDefaults() {
	if len(c.Frameworks) == 0 {
		c.Frameworks = []Framework{
			{
				Name: basekind.FrameworkUIKit,
				Kinds: []string{
					basekind.UITableViewCell.Name,
					basekind.UICollectionViewCell.Name,
					basekind.UICollectionReusableView.Name,
				},
			},
		}
	}
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if c.Directive == "" {
		return ErrEmptyDirective
	}
	if strings.HasPrefix(c.Directive, "//") || strings.IndexFunc(c.Directive, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%q: %w", c.Directive, ErrInvalidDirective)
	}

	if filepath.Base(c.Output) != c.Output || !strings.HasSuffix(c.Output, ".go") {
		return fmt.Errorf("%q must be a bare .go file name: %w", c.Output, ErrInvalidOutput)
	}

	if _, err := c.Dialect.MarshalText(); err != nil {
		return fmt.Errorf("%s: %w", c.Dialect, ErrUnknownDialect)
	}

	for i, fw := range c.Frameworks {
		if strings.TrimSpace(fw.Name) == "" {
			return fmt.Errorf("framework #%d: %w", i+1, ErrEmptyFramework)
		}
	}

	if _, err := c.Catalog(); err != nil {
		return err
	}

	return nil
}

// Catalog builds the catalog of recognized base kinds.
func (c *Config) Catalog() (*basekind.Catalog, error) {
	var kinds []basekind.Kind
	for _, fw := range c.Frameworks {
		for _, name := range fw.Kinds {
			kinds = append(kinds, basekind.Kind{Framework: fw.Name, Name: name})
		}
	}

	catalog, err := basekind.NewCatalog(kinds...)
	if err != nil {
		return nil, fmt.Errorf("build base kinds catalog: %w", err)
	}

	return catalog, nil
}

// Engine creates an expansion engine configured with c.
func (c *Config) Engine() (*expand.Engine, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}

	return expand.NewEngine(
		expand.WithCatalog(catalog),
		expand.WithDialect(c.Dialect),
	), nil
}

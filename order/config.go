package order

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/plug-n-chug/core"
)

// Format selects the document codec
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the codec from a file extension, TOML by default
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// SectionConfig is one section as written in a recipe document
type SectionConfig struct {
	Color [3]float64 `toml:"color" yaml:"color"`
	Size  int        `toml:"size" yaml:"size"`
}

// RecipeConfig is one recipe as written in a recipe document
type RecipeConfig struct {
	Name       string          `toml:"name" yaml:"name"`
	Sections   []SectionConfig `toml:"sections" yaml:"sections"`
	Difficulty int             `toml:"difficulty" yaml:"difficulty"`
}

// RecipeList is the root of a recipe document
type RecipeList struct {
	Orders []RecipeConfig `toml:"orders" yaml:"orders"`
}

// ParseRecipes decodes and validates a recipe document
func ParseRecipes(data []byte, format Format) ([]*Recipe, error) {
	var list RecipeList

	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &list); err != nil {
			return nil, fmt.Errorf("recipe document format is incorrect: %w", err)
		}
	default:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&list)
		if err != nil {
			return nil, fmt.Errorf("recipe document format is incorrect: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("recipe document has unknown key %q", undecoded[0].String())
		}
	}

	if len(list.Orders) == 0 {
		return nil, fmt.Errorf("recipe document defines no orders")
	}

	recipes := make([]*Recipe, 0, len(list.Orders))
	for i, rc := range list.Orders {
		r, err := rc.recipe()
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (rc RecipeConfig) recipe() (*Recipe, error) {
	if rc.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if rc.Difficulty < 0 {
		return nil, fmt.Errorf("%s: negative difficulty %d", rc.Name, rc.Difficulty)
	}
	if len(rc.Sections) == 0 {
		return nil, fmt.Errorf("%s: no sections", rc.Name)
	}

	sections := make([]Section, 0, len(rc.Sections))
	for j, sc := range rc.Sections {
		if sc.Size <= 0 {
			return nil, fmt.Errorf("%s: section %d has non-positive size %d", rc.Name, j, sc.Size)
		}
		sections = append(sections, Section{
			Color: core.LinearRGB(sc.Color[0], sc.Color[1], sc.Color[2]),
			Size:  sc.Size,
		})
	}

	return &Recipe{
		Name:       rc.Name,
		Sections:   sections,
		Difficulty: rc.Difficulty,
	}, nil
}

// LoadRecipes reads a recipe document from disk
func LoadRecipes(path string) ([]*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe document is missing: %w", err)
	}
	return ParseRecipes(data, FormatFromPath(path))
}

// CupConfig holds cup geometry constants in world units
type CupConfig struct {
	CupSmallWidth       float64    `toml:"cup_small_width"`
	CupSmallInnerWidth  float64    `toml:"cup_small_inner_width"`
	CupMediumWidth      float64    `toml:"cup_medium_width"`
	CupMediumInnerWidth float64    `toml:"cup_medium_inner_width"`
	CupLargeWidth       float64    `toml:"cup_large_width"`
	CupLargeInnerWidth  float64    `toml:"cup_large_inner_width"`
	CupHeight           float64    `toml:"cup_height"`
	CupBottomThickness  float64    `toml:"cup_bottom_thickness"`
	HandleWidth         float64    `toml:"handle_width"`
	DividerColor        [3]float64 `toml:"divider_color"`
	StatusBarWidth      float64    `toml:"status_bar_width"`
}

var cupConfigKeys = []string{
	"cup_small_width", "cup_small_inner_width",
	"cup_medium_width", "cup_medium_inner_width",
	"cup_large_width", "cup_large_inner_width",
	"cup_height", "cup_bottom_thickness", "handle_width",
	"divider_color", "status_bar_width",
}

// ParseCupConfig decodes a cup geometry document, every key is required
func ParseCupConfig(data []byte) (*CupConfig, error) {
	var cfg CupConfig
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("cup config format is incorrect: %w", err)
	}
	for _, key := range cupConfigKeys {
		if !md.IsDefined(key) {
			return nil, fmt.Errorf("cup config is missing %q", key)
		}
	}
	if cfg.CupHeight <= cfg.CupBottomThickness {
		return nil, fmt.Errorf("cup height %.1f must exceed bottom thickness %.1f", cfg.CupHeight, cfg.CupBottomThickness)
	}
	return &cfg, nil
}

// LoadCupConfig reads a cup geometry document from disk
func LoadCupConfig(path string) (*CupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cup config is missing: %w", err)
	}
	return ParseCupConfig(data)
}

// Widths returns the outer and inner width of a cup size
func (c *CupConfig) Widths(size CupSize) (width, inner float64) {
	switch size {
	case Small:
		return c.CupSmallWidth, c.CupSmallInnerWidth
	case Large:
		return c.CupLargeWidth, c.CupLargeInnerWidth
	default:
		return c.CupMediumWidth, c.CupMediumInnerWidth
	}
}

// Divider returns the divider color
func (c *CupConfig) Divider() core.Color {
	return core.LinearRGB(c.DividerColor[0], c.DividerColor[1], c.DividerColor[2])
}

package mode

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgsprite/pkg/errors"
)

// Name identifies a sprite mode.
type Name string

// Sprite modes.
const (
	CSS    Name = "css"
	View   Name = "view"
	Defs   Name = "defs"
	Symbol Name = "symbol"
	Stack  Name = "stack"
)

// Names lists every mode in a stable order.
var Names = []Name{CSS, View, Defs, Symbol, Stack}

// Valid reports whether s names a known mode.
func Valid(s string) bool {
	return slices.Contains(Names, Name(s))
}

// Positioned reports whether the mode needs a computed layout.
func (n Name) Positioned() bool { return n == CSS || n == View }

// Config is the options of one requested mode.
type Config interface {
	Mode() Name
	Options() Common
	isConfig()
}

// RenderSpec selects an additional text/template output.
type RenderSpec struct {
	// Template is inline template text; File is read when Template is empty.
	Template string `yaml:"template" json:"template"`
	File     string `yaml:"file" json:"file"`
	Dest     string `yaml:"dest" json:"dest"`
}

// Common options shared by all modes. Paths are relative; Sprite and the
// other outputs are resolved against Dest.
type Common struct {
	Dest    string                `yaml:"dest" json:"dest"`
	Sprite  string                `yaml:"sprite" json:"sprite"`
	Example bool                  `yaml:"example" json:"example"`
	Render  map[string]RenderSpec `yaml:"render,omitempty" json:"render,omitempty"`
}

// Addressing options for modes with a companion stylesheet.
type Addressing struct {
	// Prefix is the selector template, "%s" is replaced by the shape name.
	Prefix string `yaml:"prefix" json:"prefix"`
	// Dimensions is appended to the selector of the size rule. When empty
	// the size goes into the main rule.
	Dimensions string `yaml:"dimensions" json:"dimensions"`
	Stylesheet string `yaml:"stylesheet" json:"stylesheet"`
}

// CSSOptions configures the css mode.
type CSSOptions struct {
	Common     `yaml:",inline"`
	Addressing `yaml:",inline"`
	Layout     string `yaml:"layout" json:"layout"`
	Bust       bool   `yaml:"bust" json:"bust"`
}

// ViewOptions configures the view mode.
type ViewOptions struct {
	Common     `yaml:",inline"`
	Addressing `yaml:",inline"`
	Layout     string `yaml:"layout" json:"layout"`
	Bust       bool   `yaml:"bust" json:"bust"`
}

// DefsOptions configures the defs mode.
type DefsOptions struct {
	Common `yaml:",inline"`
	Inline bool `yaml:"inline" json:"inline"`
}

// SymbolOptions configures the symbol mode.
type SymbolOptions struct {
	Common `yaml:",inline"`
	Inline bool `yaml:"inline" json:"inline"`
}

// StackOptions configures the stack mode.
type StackOptions struct {
	Common     `yaml:",inline"`
	Addressing `yaml:",inline"`
}

func (o *CSSOptions) Mode() Name    { return CSS }
func (o *ViewOptions) Mode() Name   { return View }
func (o *DefsOptions) Mode() Name   { return Defs }
func (o *SymbolOptions) Mode() Name { return Symbol }
func (o *StackOptions) Mode() Name  { return Stack }

func (o *CSSOptions) Options() Common    { return o.Common }
func (o *ViewOptions) Options() Common   { return o.Common }
func (o *DefsOptions) Options() Common   { return o.Common }
func (o *SymbolOptions) Options() Common { return o.Common }
func (o *StackOptions) Options() Common  { return o.Common }

func (*CSSOptions) isConfig()    {}
func (*ViewOptions) isConfig()   {}
func (*DefsOptions) isConfig()   {}
func (*SymbolOptions) isConfig() {}
func (*StackOptions) isConfig()  {}

func common(n Name) Common {
	return Common{Dest: string(n), Sprite: "svg/sprite." + string(n) + ".svg"}
}

func addressing() Addressing {
	return Addressing{Prefix: ".svg-%s", Dimensions: "-dims", Stylesheet: "sprite.css"}
}

// Default returns the default options of mode n, or nil for an unknown mode.
func Default(n Name) Config {
	switch n {
	case CSS:
		return &CSSOptions{Common: common(n), Addressing: addressing(), Layout: "horizontal"}
	case View:
		return &ViewOptions{Common: common(n), Addressing: addressing(), Layout: "horizontal"}
	case Defs:
		return &DefsOptions{Common: common(n)}
	case Symbol:
		return &SymbolOptions{Common: common(n)}
	case Stack:
		return &StackOptions{Common: common(n), Addressing: addressing()}
	}
	return nil
}

// Decode overlays raw options onto the defaults of mode n. Unknown keys
// are ignored; the "mode" key is consumed by the caller.
func Decode(n Name, raw map[string]any) (Config, error) {
	cfg := Default(n)
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown mode %q", n)
	}
	if len(raw) == 0 {
		return cfg, nil
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "mode %s", n)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "mode %s", n)
	}
	return cfg, nil
}

package config

import (
	"maps"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/meta"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// =============================================================================
// Raw Configuration
// =============================================================================

// Raw is the user-supplied, partially specified configuration.
type Raw struct {
	// Dest is the output root. Empty means the working directory.
	Dest string `yaml:"dest" toml:"dest" json:"dest"`

	// Log is a *log.Logger, a level name (info, verbose, debug) or a bool.
	Log any `yaml:"log" toml:"log" json:"log"`

	Shape     RawShape       `yaml:"shape" toml:"shape" json:"shape"`
	SVG       RawSVG         `yaml:"svg" toml:"svg" json:"svg"`
	Mode      map[string]any `yaml:"mode" toml:"mode" json:"mode"`
	Variables map[string]any `yaml:"variables" toml:"variables" json:"variables"`
}

// RawShape holds shape-level options.
type RawShape struct {
	ID        map[string]any `yaml:"id" toml:"id" json:"id"`
	Dimension map[string]any `yaml:"dimension" toml:"dimension" json:"dimension"`
	Spacing   map[string]any `yaml:"spacing" toml:"spacing" json:"spacing"`
	Dest      string         `yaml:"dest" toml:"dest" json:"dest"`
	Transform any            `yaml:"transform" toml:"transform" json:"transform"`
	Meta      any            `yaml:"meta" toml:"meta" json:"meta"`
	Align     any            `yaml:"align" toml:"align" json:"align"`

	// Sort orders shapes; nil selects shape.Compare.
	Sort shape.CompareFunc `yaml:"-" toml:"-" json:"-"`
}

// RawSVG holds document-level options.
type RawSVG struct {
	XMLDeclaration      any            `yaml:"xmlDeclaration" toml:"xmlDeclaration" json:"xmlDeclaration"`
	DoctypeDeclaration  any            `yaml:"doctypeDeclaration" toml:"doctypeDeclaration" json:"doctypeDeclaration"`
	NamespaceIDs        any            `yaml:"namespaceIDs" toml:"namespaceIDs" json:"namespaceIDs"`
	NamespaceIDPrefix   any            `yaml:"namespaceIDPrefix" toml:"namespaceIDPrefix" json:"namespaceIDPrefix"`
	NamespaceClassnames any            `yaml:"namespaceClassnames" toml:"namespaceClassnames" json:"namespaceClassnames"`
	DimensionAttributes any            `yaml:"dimensionAttributes" toml:"dimensionAttributes" json:"dimensionAttributes"`
	RootAttributes      map[string]any `yaml:"rootAttributes" toml:"rootAttributes" json:"rootAttributes"`
	Precision           any            `yaml:"precision" toml:"precision" json:"precision"`
	Transform           any            `yaml:"transform" toml:"transform" json:"transform"`
}

// =============================================================================
// Resolved Settings
// =============================================================================

// Settings is the resolved configuration of one compilation run.
type Settings struct {
	// Dest is the absolute output root.
	Dest   string
	Logger *log.Logger

	Shape ShapeSettings
	SVG   svg.Settings
	// Post is applied to every composed sprite.
	Post []transform.PostFunc

	// Modes are the requested modes in key order.
	Modes     []Mode
	Variables map[string]any
}

// ShapeSettings are the resolved shape-level options.
type ShapeSettings struct {
	ID        shape.IDOptions
	Dimension shape.DimensionOptions
	Padding   layout.Padding
	// Dest is the absolute intermediate shape directory, empty for none.
	Dest      string
	Sort      shape.CompareFunc
	Transform []transform.Step
	Meta      meta.Table
	Align     meta.AlignTable
}

// Mode is one requested output.
type Mode struct {
	// Key is the configuration key, unique per run.
	Key    string
	Config mode.Config
}

// Clone returns a copy of s whose maps and slices are not shared.
func (s Settings) Clone() Settings {
	out := s
	out.Post = append([]transform.PostFunc(nil), s.Post...)
	out.Modes = append([]Mode(nil), s.Modes...)
	out.Variables = maps.Clone(s.Variables)
	out.SVG.RootAttributes = maps.Clone(s.SVG.RootAttributes)
	out.Shape.Transform = append([]transform.Step(nil), s.Shape.Transform...)
	out.Shape.Meta = maps.Clone(s.Shape.Meta)
	out.Shape.Align = maps.Clone(s.Shape.Align)
	return out
}

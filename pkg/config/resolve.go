package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgsprite/pkg/meta"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// Resolve validates and normalizes raw into Settings.
func Resolve(raw Raw) (Settings, error) {
	s := Settings{Logger: ResolveLogger(raw.Log)}
	logger := s.Logger

	s.Dest = resolveDest(raw.Dest)
	logger.Debug("resolved destination", "dest", s.Dest)

	shapes, err := resolveShape(raw.Shape, s.Dest, logger)
	if err != nil {
		return Settings{}, err
	}
	s.Shape = shapes
	logger.Debug("resolved shape settings",
		"padding", s.Shape.Padding,
		"dest", s.Shape.Dest,
		"transform", transform.Describe(s.Shape.Transform),
		"meta", len(s.Shape.Meta),
		"align", len(s.Shape.Align))

	s.SVG = resolveSVG(raw.SVG)
	s.Post = transform.BuildPost(raw.SVG.Transform)
	logger.Debug("resolved svg settings", "settings", s.SVG, "post", len(s.Post))

	s.Modes = FilterModes(raw.Mode, logger)
	keys := make([]string, len(s.Modes))
	for i, m := range s.Modes {
		keys[i] = m.Key + ":" + string(m.Config.Mode())
	}
	logger.Debug("resolved modes", "modes", keys)

	s.Variables = make(map[string]any, len(raw.Variables))
	for k, v := range raw.Variables {
		s.Variables[k] = v
	}
	return s, nil
}

func resolveDest(dest string) string {
	if dest == "" {
		dest = "."
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		if wd, werr := os.Getwd(); werr == nil {
			return wd
		}
		return dest
	}
	return abs
}

func resolveShape(raw RawShape, dest string, logger *log.Logger) (ShapeSettings, error) {
	s := ShapeSettings{
		ID:        shape.DefaultIDOptions,
		Dimension: shape.DefaultDimensionOptions,
		Sort:      raw.Sort,
		Transform: transform.Build(raw.Transform),
	}
	if s.Sort == nil {
		s.Sort = shape.Compare
	}

	if v, ok := raw.ID["separator"].(string); ok {
		s.ID.Separator = v
	}
	if v, ok := raw.ID["whitespace"].(string); ok {
		s.ID.Whitespace = v
	}
	if v, ok := number(raw.Dimension["maxWidth"]); ok && v > 0 {
		s.Dimension.MaxWidth = v
	}
	if v, ok := number(raw.Dimension["maxHeight"]); ok && v > 0 {
		s.Dimension.MaxHeight = v
	}
	if _, ok := raw.Dimension["precision"]; ok {
		s.Dimension.Precision = Precision(raw.Dimension["precision"])
	}

	s.Padding = Padding(raw.Spacing["padding"])
	if raw.Dest != "" {
		s.Dest = raw.Dest
		if !filepath.IsAbs(s.Dest) {
			s.Dest = filepath.Join(dest, s.Dest)
		}
	}

	var err error
	if s.Meta, err = meta.LoadMeta(raw.Meta); err != nil {
		return ShapeSettings{}, err
	}
	if s.Align, err = meta.LoadAlign(raw.Align); err != nil {
		return ShapeSettings{}, err
	}
	logger.Debug("loaded side-files", "meta", raw.Meta, "align", raw.Align)
	return s, nil
}

func resolveSVG(raw RawSVG) svg.Settings {
	def := svg.DefaultSettings()
	s := svg.Settings{
		XMLDeclaration:      Bool(raw.XMLDeclaration, def.XMLDeclaration),
		DoctypeDeclaration:  Bool(raw.DoctypeDeclaration, def.DoctypeDeclaration),
		NamespaceIDs:        Bool(raw.NamespaceIDs, def.NamespaceIDs),
		NamespaceClassnames: Bool(raw.NamespaceClassnames, def.NamespaceClassnames),
		DimensionAttributes: Bool(raw.DimensionAttributes, def.DimensionAttributes),
		Precision:           def.Precision,
	}
	if v, ok := raw.NamespaceIDPrefix.(string); ok {
		s.NamespaceIDPrefix = v
	}
	if raw.Precision != nil {
		s.Precision = Precision(raw.Precision)
	}
	if len(raw.RootAttributes) > 0 {
		s.RootAttributes = make(map[string]string, len(raw.RootAttributes))
		for k, v := range raw.RootAttributes {
			if str, ok := scalar(v); ok {
				s.RootAttributes[k] = str
			}
		}
	}
	return s
}

// FilterModes keeps the entries naming a known mode. An entry is either
// true, selecting the mode named by its key, or a mapping whose "mode"
// value names the mode (the key is used when absent). Everything else is
// dropped without error.
func FilterModes(raw map[string]any, logger *log.Logger) []Mode {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var out []Mode
	for _, key := range keys {
		if cfg, ok := raw[key].(mode.Config); ok && cfg != nil {
			out = append(out, Mode{Key: key, Config: cfg})
			continue
		}
		name, opts, ok := modeEntry(key, raw[key])
		if !ok || !mode.Valid(name) {
			logger.Debug("dropping mode entry", "key", key)
			continue
		}
		cfg, err := mode.Decode(mode.Name(name), opts)
		if err != nil {
			logger.Debug("invalid mode options, using defaults", "key", key, "err", err)
			cfg = mode.Default(mode.Name(name))
		}
		out = append(out, Mode{Key: key, Config: cfg})
	}
	return out
}

func modeEntry(key string, v any) (string, map[string]any, bool) {
	switch e := v.(type) {
	case bool:
		return key, nil, e
	case map[string]any:
		name := key
		if m, ok := e["mode"].(string); ok && m != "" {
			name = m
		}
		return name, e, true
	}
	return "", nil, false
}

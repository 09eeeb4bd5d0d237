// Package pkg provides the core libraries for svgsprite.
//
// # Overview
//
// svgsprite merges independently authored SVG documents ("shapes") into
// sprites. Every shape is parsed, transformed, annotated and namespaced so
// that ids and classes never collide, then each requested mode composes its
// own sprite plus supporting artifacts (stylesheets, example pages, custom
// template renders).
//
// # Architecture
//
// The data flow through svgsprite:
//
//	SVG files (files, directories, globs)
//	         ↓
//	    [io] package (collect inputs)
//	         ↓
//	    [shape] package (parse, identify, measure)
//	         ↓
//	    [transform] package (ordered transform steps)
//	         ↓
//	    [meta] + [namespace] packages (annotate, rewrite ids/classes)
//	         ↓
//	    [layout] package (positions for css and view modes)
//	         ↓
//	    [mode] package (css, view, defs, symbol, stack)
//	         ↓
//	    sprites, stylesheets, examples, template renders
//
// # Quick Start
//
//	raw := config.Raw{
//	    Dest: "public",
//	    Mode: map[string]any{"css": true, "symbol": map[string]any{"inline": true}},
//	}
//	settings, _ := config.Resolve(raw)
//	inputs, _ := io.ImportShapes([]string{"icons/"})
//
//	result, err := pipeline.NewRunner(settings, nil).Compile(ctx, inputs)
//	if err != nil {
//	    return err // canceled
//	}
//	_ = io.WriteArtifacts(ctx, settings.Dest, result.Artifacts)
//
// # Main Packages
//
// [config] - Raw configuration, file loading (YAML, JSON, TOML) and
// resolution into immutable settings.
//
// [shape] - One SVG document with its identifier, dimensions, title,
// description and alignment templates.
//
// [svg] - Document model on top of xmlquery plus document-level settings.
//
// [transform] - Ordered transform pipeline with the built-in minifier and
// post-processing hooks for composed sprites.
//
// [meta] - Title/description and alignment tables loaded from side files.
//
// [namespace] - Collision-free id and class rewriting.
//
// [layout] - Stacking and alignment for position-addressed modes.
//
// [mode] - Sprite composition, stylesheets, examples and template renders.
//
// [pipeline] - The complete compile run used by the CLI and by library
// callers. Ensures consistent ordering and failure reporting.
//
// [observability] - Hooks for compile and output events.
//
// [errors] - Error codes, shape- and mode-scoped errors, and validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/namespace/...       # Specific package
//
// [config]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/config
// [shape]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/shape
// [svg]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/svg
// [transform]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/transform
// [meta]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/meta
// [namespace]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/namespace
// [layout]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/layout
// [mode]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/mode
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/errors
//
// [io]: https://pkg.go.dev/github.com/matzehuels/svgsprite/pkg/io
package pkg

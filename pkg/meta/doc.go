// Package meta loads the per-shape lookup tables that come from optional
// side-files: titles/descriptions ([Table]) and alignment weights
// ([AlignTable]).
//
// Both loaders accept either an inline mapping or a path to a YAML, JSON or
// TOML file. A missing file is not an error; it yields the empty default.
// A symbolic link whose target cannot be resolved, and content the parser
// rejects, are hard failures reported with [errors.ErrCodeSideFile].
//
// Keys are canonicalized to the shape path form used by [shape.PathOf]:
// "icons/home.svg" and "icons/home" address the same shape.
//
// [errors.ErrCodeSideFile]: github.com/matzehuels/svgsprite/pkg/errors.ErrCodeSideFile
// [shape.PathOf]: github.com/matzehuels/svgsprite/pkg/shape.PathOf
package meta

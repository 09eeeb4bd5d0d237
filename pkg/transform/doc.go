// Package transform builds and runs the ordered, per-shape transform
// pipeline, and the document-level post-processing chain.
//
// # Steps
//
// A [Step] is a (name, options) pair. The set of named steps is closed:
// [Optimize] ("svgo") is the only registered name and is delegated to an
// [Optimizer]. Any other behavior is supplied as a [Transformer] wrapped in
// a custom step, so no name lookup is needed to run it.
//
// # Shorthand encodings
//
// [Build] accepts the loosely typed list found in configuration files and
// normalizes each entry, first match wins:
//
//	"svgo"                      → (svgo, {})
//	TransformerFunc(...)        → (custom, fn)
//	{svgo: true}                → (svgo, {})
//	{svgo: {multipass: true}}   → (svgo, {multipass: true})
//	{mine: TransformerFunc(..)} → (mine, fn)
//
// Everything else is dropped. When the configured value is not a list the
// pipeline is the single default step (svgo, {}).
package transform

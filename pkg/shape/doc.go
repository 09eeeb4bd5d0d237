// Package shape defines the unit of work of a sprite compilation: one input
// SVG document plus the state derived from it.
//
// A [Shape] is created from an [Input] supplied by the ingestion layer. It
// is then mutated in place by the transform pipeline, the namespace
// resolver and the meta/alignment assignment, and finally read (never
// written) by the layout engine and the mode renderers.
//
// # Identifiers
//
// Every shape has two names:
//
//   - Path: the slash-separated source path without extension
//     ("icons/home"). Meta and alignment tables are keyed by it.
//   - ID: Path with separators and whitespace replaced ("icons--home"),
//     usable as an XML id and CSS class fragment.
package shape

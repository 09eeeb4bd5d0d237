// Package config turns a loosely typed configuration into the immutable
// [Settings] every compilation stage reads.
//
// # Raw configuration
//
// [Raw] mirrors the configuration file. Fields that accept shorthand
// encodings are typed any:
//
//	shape:
//	  spacing:
//	    padding: [5, 10]        # 1 to 4 values, a number, or {top, right, bottom, left}
//	  transform: [svgo]         # see package transform
//	  meta: meta.yaml           # side-file path or inline mapping
//	  align: align.toml
//	svg:
//	  precision: 2
//	mode:
//	  css: true
//	  icons: {mode: symbol, inline: true}
//
// # Resolution
//
// [Resolve] never fails on a malformed optional value: it falls back to
// the documented default and logs the fallback at debug level. The only
// errors it returns come from reading or parsing meta and alignment
// side-files.
//
// # Loading
//
// [Load] decodes YAML, JSON or TOML files by extension. Relative side-file
// paths in a loaded file are taken relative to the file's directory.
package config

// Package io reads shape documents from disk and writes compiled
// artifacts back.
//
// The compiler itself never touches the filesystem: it consumes
// [shape.Input] values and produces in-memory [mode.Artifact] values. This
// package is the boundary used by the CLI.
//
// # Import
//
// [ImportShapes] expands command-line arguments into inputs. Files are
// named by their base name, directories are walked recursively and their
// .svg files are named relative to the directory, and glob patterns are
// expanded first:
//
//	inputs, err := io.ImportShapes([]string{"icons/", "extra/*.svg"})
//
// [ReadShape] reads a single document from any io.Reader.
//
// # Export
//
// [WriteArtifacts] writes artifacts below a destination directory,
// creating intermediate directories. Artifact paths are validated so that
// nothing is written outside the destination.
//
// [WriteManifest] encodes a JSON summary of a run:
//
//	{
//	  "run_id": "5f0c...",
//	  "artifacts": [
//	    {"path": "css/sprite.css", "mode": "css", "kind": "stylesheet", "size": 412, "digest": "9a1b..."}
//	  ],
//	  "failures": ["shape \"broken\": ..."]
//	}
package io

package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/observability"
)

// WriteArtifacts writes each artifact to dest/artifact.Path.
func WriteArtifacts(ctx context.Context, dest string, artifacts []mode.Artifact) error {
	hooks := observability.Output()
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := errors.ValidatePath(a.Path); err != nil {
			return err
		}
		p := filepath.Join(dest, filepath.FromSlash(a.Path))
		if err := writeFile(p, a.Data); err != nil {
			hooks.OnWriteError(ctx, a.Path, err)
			return err
		}
		hooks.OnArtifactWritten(ctx, a.Path, len(a.Data))
	}
	return nil
}

func writeFile(p string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

type manifest struct {
	RunID     string     `json:"run_id"`
	Artifacts []artifact `json:"artifacts"`
	Failures  []string   `json:"failures,omitempty"`
}

type artifact struct {
	Path   string `json:"path"`
	Mode   string `json:"mode,omitempty"`
	Kind   string `json:"kind"`
	Size   int    `json:"size"`
	Digest string `json:"digest"`
}

// WriteManifest encodes a JSON summary of a run to w.
func WriteManifest(w io.Writer, runID string, artifacts []mode.Artifact, failures []error) error {
	out := manifest{RunID: runID, Artifacts: make([]artifact, len(artifacts))}
	for i, a := range artifacts {
		out.Artifacts[i] = artifact{
			Path:   a.Path,
			Mode:   string(a.Mode),
			Kind:   string(a.Kind),
			Size:   len(a.Data),
			Digest: a.Digest,
		}
	}
	for _, f := range failures {
		out.Failures = append(out.Failures, f.Error())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportManifest writes the run manifest to a file at path.
// This is a convenience wrapper around [WriteManifest] for file-based output.
func ExportManifest(path, runID string, artifacts []mode.Artifact, failures []error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteManifest(f, runID, artifacts, failures)
}

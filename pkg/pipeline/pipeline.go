// Package pipeline compiles a set of shapes into sprite artifacts.
//
// This package implements the complete ingest → transform → namespace →
// render pipeline that the CLI and library callers use. By centralizing
// this logic, every entry point gets the same ordering, concurrency and
// failure semantics.
//
// # Architecture
//
// The pipeline consists of these stages:
//
//  1. Ingest: parse every input into a shape (concurrent)
//  2. Transform: run the configured transform steps per shape (concurrent)
//  3. Annotate: attach title, description and alignment templates
//  4. Sort: order shapes with the configured comparator
//  5. Namespace: rewrite ids and classes, tokens taken from sort position (concurrent)
//  6. Render: compose every requested mode (concurrent, one goroutine per mode)
//
// A shape failing in any stage is dropped and reported; its siblings are
// unaffected. A mode failing to compose is reported; other modes still
// complete. If the context is canceled nothing is returned.
//
// # Usage
//
//	settings, err := config.Resolve(raw)
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(settings, nil)
//	result, err := runner.Compile(ctx, inputs)
//	if err != nil {
//	    return err // canceled
//	}
//	if err := result.Err(); err != nil {
//	    // partial or complete failure, see result.Failures
//	}
//	for _, a := range result.Artifacts {
//	    fmt.Println(a.Path, a.Digest)
//	}
package pipeline

import (
	stderrors "errors"
	"time"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

// DefaultWorkers bounds per-shape concurrency.
const DefaultWorkers = 8

// Result contains the outputs of a compilation run.
type Result struct {
	// RunID identifies the run in logs and manifests.
	RunID string

	// Shapes are the successfully processed shapes in sort order.
	Shapes []*shape.Shape

	// Outputs holds one entry per mode that rendered, in key order.
	Outputs []*mode.Output

	// Artifacts are all outputs sorted by path, including per-shape
	// documents when a shape destination is configured.
	Artifacts []mode.Artifact

	// Failures are shape- and mode-scoped errors.
	Failures []error

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Inputs        int
	Shapes        int
	Modes         int
	IngestTime    time.Duration
	TransformTime time.Duration
	NamespaceTime time.Duration
	RenderTime    time.Duration
	TotalTime     time.Duration
}

// Err summarizes the run: nil when nothing failed, a PARTIAL error when at
// least one mode produced output from at least one shape, and a FAILED
// error otherwise.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	cause := stderrors.Join(r.Failures...)
	if len(r.Outputs) > 0 && len(r.Shapes) > 0 {
		return errors.Wrap(errors.ErrCodePartial, cause, "%d of %d modes rendered, %d failures", len(r.Outputs), r.Stats.Modes, len(r.Failures))
	}
	return errors.Wrap(errors.ErrCodeFailed, cause, "no sprite rendered, %d failures", len(r.Failures))
}

// Output returns the rendered output of the mode configured under key.
func (r *Result) Output(key string) (*mode.Output, bool) {
	for _, o := range r.Outputs {
		if o.Key == key {
			return o, true
		}
	}
	return nil, false
}

package pipeline

import (
	"context"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/svgsprite/pkg/config"
	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/observability"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// Runner compiles shapes under one resolved configuration.
//
// The Runner holds no per-run state. Multiple goroutines can safely call
// Compile on the same Runner.
type Runner struct {
	Settings  config.Settings
	Optimizer transform.Optimizer
	Logger    *log.Logger
	Workers   int
}

// NewRunner creates a runner. A nil optimizer selects the built-in
// minifier.
func NewRunner(s config.Settings, opt transform.Optimizer) *Runner {
	logger := s.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opt == nil {
		opt = transform.Minifier{}
	}
	return &Runner{Settings: s, Optimizer: opt, Logger: logger, Workers: DefaultWorkers}
}

// run is the isolated state of one compilation.
type run struct {
	*Runner
	settings config.Settings
	logger   *log.Logger
	hooks    observability.CompileHooks
	result   *Result
	elapsed  map[string]time.Duration
}

// Compile runs the complete pipeline over inputs. The error is non-nil
// only when ctx is canceled; shape and mode failures are reported through
// the Result.
func (r *Runner) Compile(ctx context.Context, inputs []shape.Input) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	c := &run{
		Runner:   r,
		settings: r.Settings.Clone(),
		logger:   r.Logger.With("run", id[:8]),
		hooks:    observability.Compile(),
		result:   &Result{RunID: id},
		elapsed:  map[string]time.Duration{},
	}
	c.result.Stats.Inputs = len(inputs)
	c.result.Stats.Modes = len(c.settings.Modes)

	keys := make([]string, len(c.settings.Modes))
	for i, m := range c.settings.Modes {
		keys[i] = m.Key
	}
	c.hooks.OnCompileStart(ctx, id, len(inputs), keys)

	result, err := c.compile(ctx, inputs)
	c.hooks.OnCompileComplete(ctx, id, time.Since(start), err)
	if err != nil {
		c.logger.Debug("compilation canceled", "err", err)
		return nil, errors.Wrap(errors.ErrCodeCanceled, err, "compile")
	}
	result.Stats.TotalTime = time.Since(start)
	c.logger.Info("compiled sprites",
		"shapes", result.Stats.Shapes,
		"modes", len(result.Outputs),
		"artifacts", len(result.Artifacts),
		"failures", len(result.Failures),
		"duration", result.Stats.TotalTime)
	return result, nil
}

func (c *run) compile(ctx context.Context, inputs []shape.Input) (*Result, error) {
	res := c.result

	// Stage 1: Ingest
	stageStart := time.Now()
	shapes, err := c.ingest(ctx, inputs)
	if err != nil {
		return nil, err
	}
	res.Stats.IngestTime = time.Since(stageStart)
	c.logger.Debug("ingested shapes", "shapes", len(shapes), "duration", res.Stats.IngestTime)

	// Stage 2: Transform
	stageStart = time.Now()
	if shapes, err = c.transform(ctx, shapes); err != nil {
		return nil, err
	}
	res.Stats.TransformTime = time.Since(stageStart)
	c.logger.Debug("transformed shapes",
		"steps", transform.Describe(c.settings.Shape.Transform),
		"duration", res.Stats.TransformTime)

	// Stage 3: Annotate
	c.annotate(shapes)

	// Stage 4: Sort
	order := c.settings.Shape.Sort
	if order == nil {
		order = shape.Compare
	}
	slices.SortStableFunc(shapes, order)
	shapes = c.dedupe(ctx, shapes)

	// Stage 5: Namespace
	stageStart = time.Now()
	if shapes, err = c.namespace(ctx, shapes); err != nil {
		return nil, err
	}
	res.Stats.NamespaceTime = time.Since(stageStart)
	res.Shapes = shapes
	res.Stats.Shapes = len(shapes)
	for _, s := range shapes {
		c.finish(ctx, s.ID, nil)
	}

	// Stage 6: Render
	stageStart = time.Now()
	if err := c.shapeArtifacts(); err != nil {
		res.Failures = append(res.Failures, err)
	}
	if err := c.render(ctx, shapes); err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(stageStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(res.Artifacts, func(a, b mode.Artifact) int { return strings.Compare(a.Path, b.Path) })
	return res, nil
}

// fail records a shape-scoped failure.
func (c *run) fail(ctx context.Context, s string, err error) {
	c.logger.Warn("shape failed", "shape", s, "err", err)
	c.result.Failures = append(c.result.Failures, errors.ForShape(s, err))
	c.finish(ctx, s, err)
}

func (c *run) finish(ctx context.Context, s string, err error) {
	c.hooks.OnShapeComplete(ctx, s, c.elapsed[s], err)
}

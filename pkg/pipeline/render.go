package pipeline

import (
	"context"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

// shapeArtifacts emits every processed shape as a standalone document
// when an intermediate shape destination is configured.
func (c *run) shapeArtifacts() error {
	if c.settings.Shape.Dest == "" {
		return nil
	}
	dir, err := filepath.Rel(c.settings.Dest, c.settings.Shape.Dest)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "shape destination")
	}
	dir = filepath.ToSlash(dir)
	for _, s := range c.result.Shapes {
		p := path.Join(dir, s.ID+".svg")
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
		c.result.Artifacts = append(c.result.Artifacts, mode.NewArtifact("", mode.KindShape, p, s.Doc.Bytes()))
	}
	return nil
}

// render composes every requested mode concurrently. Each mode reads the
// same finalized shapes and writes only its own output slot.
func (c *run) render(ctx context.Context, shapes []*shape.Shape) error {
	modes := c.settings.Modes
	outputs := make([]*mode.Output, len(modes))
	errs := make([]error, len(modes))

	in := mode.Input{
		Shapes:    shapes,
		Settings:  c.settings.SVG,
		Padding:   c.settings.Shape.Padding,
		Variables: c.settings.Variables,
		Post:      c.settings.Post,
		Logger:    c.logger,
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		g.Go(func() error {
			start := time.Now()
			out, err := mode.Render(gctx, m.Key, m.Config, in)
			if gctx.Err() != nil {
				return gctx.Err()
			}
			outputs[i], errs[i] = out, err

			n := 0
			if out != nil {
				n = len(out.Artifacts)
			}
			c.hooks.OnModeComplete(gctx, m.Key, n, time.Since(start), err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, m := range modes {
		if errs[i] != nil {
			c.logger.Warn("mode failed", "mode", m.Key, "err", errs[i])
			c.result.Failures = append(c.result.Failures, errs[i])
			continue
		}
		out := outputs[i]
		c.logger.Info("rendered mode", "mode", m.Key, "artifacts", len(out.Artifacts), "skipped", len(out.Failures))
		c.result.Outputs = append(c.result.Outputs, out)
		c.result.Artifacts = append(c.result.Artifacts, out.Artifacts...)
		c.result.Failures = append(c.result.Failures, out.Failures...)
	}
	return nil
}

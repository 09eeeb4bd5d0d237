package pipeline

import (
	"cmp"
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/meta"
	"github.com/matzehuels/svgsprite/pkg/namespace"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// =============================================================================
// Ingest
// =============================================================================

// ingest parses every input into a shape. Inputs that fail are recorded
// and dropped.
func (c *run) ingest(ctx context.Context, inputs []shape.Input) ([]*shape.Shape, error) {
	shapes := make([]*shape.Shape, len(inputs))
	errs := make([]error, len(inputs))
	took := make([]time.Duration, len(inputs))

	err := c.each(ctx, len(inputs), func(i int) {
		start := time.Now()
		shapes[i], errs[i] = shape.New(inputs[i], c.settings.Shape.ID, c.settings.Shape.Dimension)
		took[i] = time.Since(start)
	})
	if err != nil {
		return nil, err
	}

	out := make([]*shape.Shape, 0, len(shapes))
	for i, s := range shapes {
		name := shape.Identifier(shape.PathOf(inputs[i].Path), c.settings.Shape.ID)
		c.elapsed[name] += took[i]
		if errs[i] != nil {
			c.fail(ctx, name, errs[i])
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// =============================================================================
// Transform
// =============================================================================

// transform runs the configured steps on every shape.
func (c *run) transform(ctx context.Context, shapes []*shape.Shape) ([]*shape.Shape, error) {
	p := transform.New(c.settings.Shape.Transform, c.Optimizer)
	errs := make([]error, len(shapes))
	took := make([]time.Duration, len(shapes))

	err := c.each(ctx, len(shapes), func(i int) {
		start := time.Now()
		doc, err := p.Apply(ctx, shapes[i].Doc)
		if err == nil {
			shapes[i].Doc = doc
		}
		errs[i] = err
		took[i] = time.Since(start)
	})
	if err != nil {
		return nil, err
	}
	return c.keep(ctx, shapes, errs, took), nil
}

// =============================================================================
// Annotate
// =============================================================================

// annotate attaches meta entries and alignment templates.
func (c *run) annotate(shapes []*shape.Shape) {
	for _, s := range shapes {
		if e, ok := c.settings.Shape.Meta.Lookup(s.Path); ok {
			s.ApplyMeta(e.Title, e.Description)
		}
		s.Align = alignments(c.settings.Shape.Align.For(s.Path))
	}
}

// alignments orders templates with the bare placeholder first and the
// rest lexicographically.
func alignments(m map[string]float64) []shape.Alignment {
	out := make([]shape.Alignment, 0, len(m))
	for tmpl, w := range m {
		out = append(out, shape.Alignment{Template: tmpl, Weight: w})
	}
	slices.SortFunc(out, func(a, b shape.Alignment) int {
		switch {
		case a.Template == b.Template:
			return 0
		case a.Template == meta.Placeholder:
			return -1
		case b.Template == meta.Placeholder:
			return 1
		}
		return cmp.Compare(a.Template, b.Template)
	})
	return out
}

// dedupe drops shapes whose identifier is already taken by an earlier
// shape in sort order.
func (c *run) dedupe(ctx context.Context, shapes []*shape.Shape) []*shape.Shape {
	seen := make(map[string]bool, len(shapes))
	out := shapes[:0]
	for _, s := range shapes {
		if seen[s.ID] {
			c.fail(ctx, s.ID, errors.New(errors.ErrCodeInvalidInput, "duplicate shape identifier from %s", s.Source))
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

// =============================================================================
// Namespace
// =============================================================================

// namespace rewrites ids and classes. Tokens follow the sort order, so
// the output is identical across runs for the same input set.
func (c *run) namespace(ctx context.Context, shapes []*shape.Shape) ([]*shape.Shape, error) {
	opts := namespace.Options{
		IDs:     c.settings.SVG.NamespaceIDs,
		Classes: c.settings.SVG.NamespaceClassnames,
		Prefix:  c.settings.SVG.NamespaceIDPrefix,
	}
	errs, err := namespace.Resolve(ctx, shapes, opts)
	if err != nil {
		return nil, err
	}
	return c.keep(ctx, shapes, errs, nil), nil
}

// =============================================================================
// Helpers
// =============================================================================

// each runs fn for every index on a bounded worker pool.
func (c *run) each(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.Workers))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// keep returns the shapes without an error, recording the others.
func (c *run) keep(ctx context.Context, shapes []*shape.Shape, errs []error, took []time.Duration) []*shape.Shape {
	out := make([]*shape.Shape, 0, len(shapes))
	for i, s := range shapes {
		if took != nil {
			c.elapsed[s.ID] += took[i]
		}
		if errs[i] != nil {
			c.fail(ctx, s.ID, errs[i])
			continue
		}
		out = append(out, s)
	}
	return out
}

package transform

import (
	"context"
	"fmt"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/svg"
)

// Names of the built-in steps.
const (
	Optimize = "svgo"
	Custom   = "custom"
)

// Transformer rewrites one shape document.
type Transformer interface {
	Transform(ctx context.Context, doc *svg.Document) (*svg.Document, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, doc *svg.Document) (*svg.Document, error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, doc *svg.Document) (*svg.Document, error) {
	return f(ctx, doc)
}

// Optimizer is the opaque optimization collaborator invoked by the svgo step.
type Optimizer interface {
	Optimize(ctx context.Context, doc *svg.Document, opts map[string]any) (*svg.Document, error)
}

// Step is one configured pipeline stage.
type Step struct {
	Name    string
	Options map[string]any
	Func    Transformer
}

// String returns the step name.
func (s Step) String() string { return s.Name }

// Pipeline runs steps in order.
type Pipeline struct {
	Steps     []Step
	Optimizer Optimizer
}

// New returns a pipeline over steps. A nil optimizer selects [Minifier].
func New(steps []Step, opt Optimizer) *Pipeline {
	if opt == nil {
		opt = Minifier{}
	}
	return &Pipeline{Steps: steps, Optimizer: opt}
}

// Apply runs every step against doc and returns the resulting document.
func (p *Pipeline) Apply(ctx context.Context, doc *svg.Document) (*svg.Document, error) {
	for _, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := p.apply(ctx, step, doc)
		if err != nil {
			return nil, err
		}
		if next != nil {
			doc = next
		}
	}
	return doc, nil
}

func (p *Pipeline) apply(ctx context.Context, step Step, doc *svg.Document) (*svg.Document, error) {
	var (
		out *svg.Document
		err error
	)
	switch {
	case step.Func != nil:
		out, err = step.Func.Transform(ctx, doc)
	case step.Name == Optimize:
		out, err = p.Optimizer.Optimize(ctx, doc, step.Options)
	default:
		return nil, errors.New(errors.ErrCodeUnknownTransform, "unknown transform %q", step.Name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransform, err, "%s", step.Name)
	}
	return out, nil
}

// Build normalizes a configured transform list into steps.
func Build(raw any) []Step {
	switch v := raw.(type) {
	case []Step:
		return append([]Step(nil), v...)
	case []any:
		steps := make([]Step, 0, len(v))
		for _, entry := range v {
			if s, ok := buildStep(entry); ok {
				steps = append(steps, s)
			}
		}
		return steps
	case []string:
		steps := make([]Step, 0, len(v))
		for _, name := range v {
			steps = append(steps, Step{Name: name, Options: map[string]any{}})
		}
		return steps
	}
	return Default()
}

// Default returns the pipeline used when none is configured.
func Default() []Step {
	return []Step{{Name: Optimize, Options: map[string]any{}}}
}

func buildStep(entry any) (Step, bool) {
	if fn, ok := asTransformer(entry); ok {
		return Step{Name: Custom, Func: fn}, true
	}
	switch v := entry.(type) {
	case string:
		return Step{Name: v, Options: map[string]any{}}, true
	case Step:
		return v, true
	case map[string]any:
		if len(v) != 1 {
			return Step{}, false
		}
		for key, value := range v {
			if b, ok := value.(bool); ok && b {
				return Step{Name: key, Options: map[string]any{}}, true
			}
			if fn, ok := asTransformer(value); ok {
				return Step{Name: key, Func: fn}, true
			}
			if opts, ok := value.(map[string]any); ok {
				return Step{Name: key, Options: opts}, true
			}
		}
	}
	return Step{}, false
}

func asTransformer(v any) (Transformer, bool) {
	switch fn := v.(type) {
	case Transformer:
		return fn, true
	case func(context.Context, *svg.Document) (*svg.Document, error):
		return TransformerFunc(fn), true
	}
	return nil, false
}

// Describe renders steps for debug logging.
func Describe(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		switch {
		case s.Func != nil:
			out[i] = s.Name + "(func)"
		case len(s.Options) > 0:
			out[i] = fmt.Sprintf("%s%v", s.Name, s.Options)
		default:
			out[i] = s.Name
		}
	}
	return out
}

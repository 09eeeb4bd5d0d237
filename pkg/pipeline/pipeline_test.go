package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/svgsprite/pkg/config"
	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/observability"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

func square(name string, size int) shape.Input {
	doc := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
		`<defs><linearGradient id="g"/></defs>`+
		`<rect id="r" class="c" fill="url(#g)" width="%d" height="%d"/></svg>`, size, size, size, size)
	return shape.Input{Path: name + ".svg", Data: []byte(doc)}
}

func settings(t *testing.T, raw config.Raw) config.Settings {
	t.Helper()
	if raw.Dest == "" {
		raw.Dest = t.TempDir()
	}
	s, err := config.Resolve(raw)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func compile(t *testing.T, raw config.Raw, inputs ...shape.Input) *Result {
	t.Helper()
	res, err := NewRunner(settings(t, raw), nil).Compile(context.Background(), inputs)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func find(res *Result, p string) (mode.Artifact, bool) {
	for _, a := range res.Artifacts {
		if a.Path == p {
			return a, true
		}
	}
	return mode.Artifact{}, false
}

func TestCompileCSS(t *testing.T) {
	res := compile(t, config.Raw{Mode: map[string]any{"css": true}},
		square("c", 30), square("a", 10), square("b", 20))
	if err := res.Err(); err != nil {
		t.Fatal(err)
	}

	var ids []string
	for _, s := range res.Shapes {
		ids = append(ids, s.ID)
	}
	if !slices.Equal(ids, []string{"a", "b", "c"}) {
		t.Errorf("shapes = %v", ids)
	}

	out, ok := res.Output("css")
	if !ok || out.Layout == nil {
		t.Fatal("missing css output")
	}
	var offsets []float64
	for _, it := range out.Layout.Items {
		offsets = append(offsets, it.X)
	}
	if !slices.Equal(offsets, []float64{0, 10, 30}) {
		t.Errorf("offsets = %v", offsets)
	}

	sheet, ok := find(res, "css/sprite.css")
	if !ok {
		t.Fatal("missing stylesheet")
	}
	for _, want := range []string{"0 0 no-repeat", "-10px 0 no-repeat", "-30px 0 no-repeat"} {
		if !strings.Contains(string(sheet.Data), want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}

	if !slices.IsSortedFunc(res.Artifacts, func(a, b mode.Artifact) int { return strings.Compare(a.Path, b.Path) }) {
		t.Error("artifacts not sorted")
	}
	if res.Stats.Inputs != 3 || res.Stats.Shapes != 3 || res.Stats.Modes != 1 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestCompileNamespaceDeterministic(t *testing.T) {
	raw := config.Raw{Dest: t.TempDir(), Mode: map[string]any{"symbol": true, "defs": true}}
	inputs := []shape.Input{square("b", 20), square("a", 10), square("c", 30)}

	first := compile(t, raw, inputs...)
	slices.Reverse(inputs)
	second := compile(t, raw, inputs...)

	if first.RunID == second.RunID {
		t.Error("run ids should differ")
	}
	if len(first.Artifacts) != len(second.Artifacts) {
		t.Fatalf("artifacts %d != %d", len(first.Artifacts), len(second.Artifacts))
	}
	for i := range first.Artifacts {
		if first.Artifacts[i].Digest != second.Artifacts[i].Digest {
			t.Errorf("%s differs between runs", first.Artifacts[i].Path)
		}
	}

	sprite, _ := find(first, "symbol/svg/sprite.symbol.svg")
	for _, want := range []string{`id="a-g"`, `id="b-g"`, `id="c-g"`, `url(#a-g)`, `class="b-c"`} {
		if !strings.Contains(string(sprite.Data), want) {
			t.Errorf("sprite missing %s", want)
		}
	}
}

func TestCompileShapeFailure(t *testing.T) {
	broken := shape.Input{Path: "broken.svg", Data: []byte("<svg")}
	res := compile(t, config.Raw{Mode: map[string]any{"css": true}}, square("a", 10), broken)

	if len(res.Shapes) != 1 || len(res.Outputs) != 1 {
		t.Fatalf("shapes = %d, outputs = %d", len(res.Shapes), len(res.Outputs))
	}
	if len(res.Failures) != 1 || errors.ShapeOf(res.Failures[0]) != "broken" {
		t.Fatalf("failures = %v", res.Failures)
	}
	if !errors.Is(res.Err(), errors.ErrCodePartial) {
		t.Errorf("Err() = %v, want PARTIAL", res.Err())
	}
}

func TestCompileModeFailure(t *testing.T) {
	corrupt := func(_ context.Context, b []byte) ([]byte, error) { return b[:len(b)/2], nil }
	raw := config.Raw{
		SVG:  config.RawSVG{Transform: []any{corrupt}},
		Mode: map[string]any{"css": true, "stack": true},
	}
	res := compile(t, raw, square("a", 10))

	if len(res.Outputs) != 0 || len(res.Failures) != 2 {
		t.Fatalf("outputs = %d, failures = %v", len(res.Outputs), res.Failures)
	}
	for _, f := range res.Failures {
		if errors.ModeOf(f) == "" || !errors.Is(f, errors.ErrCodeCompose) {
			t.Errorf("failure %v should be a COMPOSE mode error", f)
		}
	}
	if !errors.Is(res.Err(), errors.ErrCodeFailed) {
		t.Errorf("Err() = %v, want FAILED", res.Err())
	}
}

func TestCompileDuplicateIdentifier(t *testing.T) {
	dup := square("a", 20)
	dup.Path = "./a.svg"
	res := compile(t, config.Raw{Mode: map[string]any{"symbol": true}}, square("a", 10), dup)
	if len(res.Shapes) != 1 || len(res.Failures) != 1 {
		t.Fatalf("shapes = %d, failures = %v", len(res.Shapes), res.Failures)
	}
	if !errors.Is(res.Failures[0], errors.ErrCodeInvalidInput) {
		t.Errorf("failure = %v", res.Failures[0])
	}
}

func TestCompileAnnotate(t *testing.T) {
	raw := config.Raw{
		Shape: config.RawShape{
			Dest:  "shapes",
			Meta:  map[string]any{"a.svg": map[string]any{"title": "Alpha"}},
			Align: map[string]any{"*": map[string]any{"-hover": 1, "%s": 0.5}},
		},
		Mode: map[string]any{"view": true},
	}
	res := compile(t, raw, square("a", 10))
	if err := res.Err(); err != nil {
		t.Fatal(err)
	}

	s := res.Shapes[0]
	if s.Title != "Alpha" {
		t.Errorf("Title = %q", s.Title)
	}
	want := []shape.Alignment{{Template: "%s", Weight: 0.5}, {Template: "%s-hover", Weight: 1}}
	if !slices.Equal(s.Align, want) {
		t.Errorf("Align = %+v", s.Align)
	}

	a, ok := find(res, "shapes/a.svg")
	if !ok || a.Kind != mode.KindShape {
		t.Fatalf("missing shape artifact in %v", res.Artifacts)
	}
	if !strings.Contains(string(a.Data), "<title") {
		t.Errorf("shape document missing title: %s", a.Data)
	}
}

func TestCompileMultipleAlignments(t *testing.T) {
	raw := config.Raw{
		Shape: config.RawShape{
			Align: map[string]any{"*": map[string]any{"%s": 0, "%s-bottom": 1}},
		},
		Mode: map[string]any{"css": true, "view": true},
	}
	res := compile(t, raw, square("a", 10), square("b", 20))
	if err := res.Err(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []mode.Name{"css", "view"} {
		t.Run(string(name), func(t *testing.T) {
			out, ok := res.Output(string(name))
			if !ok || len(out.Layout.Items) != 4 {
				t.Fatalf("layout = %+v", out)
			}
			var sprite string
			for _, a := range res.Artifacts {
				if a.Mode == name && a.Kind == mode.KindSprite {
					sprite = string(a.Data)
				}
			}
			for _, id := range []string{`id="a-g"`, `id="a-r"`, `id="b-g"`, `id="b-r"`} {
				if n := strings.Count(sprite, id); n != 1 {
					t.Errorf("%s appears %d times in\n%s", id, n, sprite)
				}
			}
			for _, ref := range []string{`xlink:href="#a-shape"`, `xlink:href="#b-shape"`} {
				if !strings.Contains(sprite, ref) {
					t.Errorf("missing <use %s> in\n%s", ref, sprite)
				}
			}
		})
	}
}

func TestCompileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewRunner(settings(t, config.Raw{Mode: map[string]any{"css": true}}), nil).
		Compile(ctx, []shape.Input{square("a", 10)})
	if res != nil || !errors.Is(err, errors.ErrCodeCanceled) {
		t.Errorf("Compile() = %v, %v", res, err)
	}
}

type recorder struct {
	observability.NoopCompileHooks
	mu     sync.Mutex
	shapes map[string]error
	modes  []string
	done   bool
}

func (r *recorder) OnShapeComplete(_ context.Context, s string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes[s] = err
}

func (r *recorder) OnModeComplete(_ context.Context, key string, _ int, _ time.Duration, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes = append(r.modes, key)
}

func (r *recorder) OnCompileComplete(context.Context, string, time.Duration, error) { r.done = true }

func TestCompileHooks(t *testing.T) {
	rec := &recorder{shapes: map[string]error{}}
	observability.SetCompileHooks(rec)
	defer observability.Reset()

	compile(t, config.Raw{Mode: map[string]any{"css": true, "defs": true}},
		square("a", 10), shape.Input{Path: "bad.svg", Data: []byte("nope")})

	if !rec.done {
		t.Error("OnCompileComplete not called")
	}
	if len(rec.shapes) != 2 || rec.shapes["a"] != nil || rec.shapes["bad"] == nil {
		t.Errorf("shapes = %v", rec.shapes)
	}
	slices.Sort(rec.modes)
	if !slices.Equal(rec.modes, []string{"css", "defs"}) {
		t.Errorf("modes = %v", rec.modes)
	}
}

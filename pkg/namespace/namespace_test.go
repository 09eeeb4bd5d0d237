package namespace

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

func TestToken(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
	}
	for _, tt := range tests {
		if got := Token(tt.index); got != tt.want {
			t.Errorf("Token(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestTokenUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := range 2000 {
		tok := Token(i)
		if seen[tok] {
			t.Fatalf("Token(%d) = %q repeats", i, tok)
		}
		seen[tok] = true
	}
}

const grad = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 10 10" aria-labelledby="t">` +
	`<title id="t">T</title>` +
	`<style>.st0{fill:url(#g)} #g stop{stop-color:#fff}</style>` +
	`<linearGradient id="g"><stop offset="0"/></linearGradient>` +
	`<rect class="st0 big" fill="url(#g)" width="10" height="10"/>` +
	`<use xlink:href="#g"/>` +
	`<a href="https://example.com">x</a>` +
	`</svg>`

func newShape(t *testing.T, name, src string) *shape.Shape {
	t.Helper()
	s, err := shape.New(shape.Input{Path: name + ".svg", Data: []byte(src)}, shape.DefaultIDOptions, shape.DefaultDimensionOptions)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestApply(t *testing.T) {
	s := newShape(t, "grad", grad)
	if err := Apply(s, "b", Options{IDs: true, Classes: true}); err != nil {
		t.Fatal(err)
	}
	got := string(s.Doc.Bytes())
	for _, want := range []string{
		`id="b-g"`,
		`id="b-t"`,
		`aria-labelledby="b-t"`,
		`fill="url(#b-g)"`,
		`xlink:href="#b-g"`,
		`class="b-st0 b-big"`,
		`.b-st0{fill:url(#b-g)}`,
		`#b-g stop{stop-color:#fff}`,
		`href="https://example.com"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in\n%s", want, got)
		}
	}
	if s.Namespace != "b" {
		t.Errorf("Namespace = %q", s.Namespace)
	}
}

func TestApplyIDsOnly(t *testing.T) {
	s := newShape(t, "grad", grad)
	if err := Apply(s, "a", Options{IDs: true}); err != nil {
		t.Fatal(err)
	}
	got := string(s.Doc.Bytes())
	if !strings.Contains(got, `class="st0 big"`) {
		t.Errorf("classes rewritten: %s", got)
	}
	if !strings.Contains(got, `id="a-g"`) {
		t.Errorf("ids not rewritten: %s", got)
	}
}

func TestApplyInvalidShape(t *testing.T) {
	err := Apply(&shape.Shape{ID: "broken"}, "a", Options{IDs: true})
	if !errors.Is(err, errors.ErrCodeNamespace) {
		t.Errorf("got %v, want NAMESPACE", err)
	}
}

func TestResolveDeterministic(t *testing.T) {
	build := func() []*shape.Shape {
		var out []*shape.Shape
		for _, n := range []string{"a", "b", "c", "d"} {
			out = append(out, newShape(t, n, grad))
		}
		return out
	}
	opts := Options{IDs: true}

	var runs [2][]string
	for r := range runs {
		shapes := build()
		failures, err := Resolve(context.Background(), shapes, opts)
		if err != nil {
			t.Fatal(err)
		}
		for i, s := range shapes {
			if failures[i] != nil {
				t.Fatalf("shape %s: %v", s.ID, failures[i])
			}
			runs[r] = append(runs[r], string(s.Doc.Bytes()))
		}
	}
	for i := range runs[0] {
		if runs[0][i] != runs[1][i] {
			t.Errorf("shape %d differs between runs", i)
		}
	}
	if !strings.Contains(runs[0][3], `id="d-g"`) {
		t.Errorf("fourth shape token: %s", runs[0][3])
	}
}

func TestResolveIsolatesFailures(t *testing.T) {
	shapes := []*shape.Shape{newShape(t, "a", grad), {ID: "broken"}, newShape(t, "c", grad)}
	failures, err := Resolve(context.Background(), shapes, Options{IDs: true, Prefix: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if failures[0] != nil || failures[2] != nil {
		t.Errorf("healthy shapes failed: %v", failures)
	}
	if failures[1] == nil {
		t.Error("broken shape did not fail")
	}
	if shapes[2].Namespace != "xc" {
		t.Errorf("token = %q, want xc", shapes[2].Namespace)
	}
}

func TestResolveDisabled(t *testing.T) {
	s := newShape(t, "a", grad)
	before := string(s.Doc.Bytes())
	if _, err := Resolve(context.Background(), []*shape.Shape{s}, Options{}); err != nil {
		t.Fatal(err)
	}
	if string(s.Doc.Bytes()) != before || s.Namespace != "" {
		t.Error("document changed with namespacing disabled")
	}
}

func TestResolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Resolve(ctx, []*shape.Shape{newShape(t, "a", grad)}, Options{IDs: true})
	if err == nil {
		t.Error("expected cancellation error")
	}
}

func TestTokensAvoidShapeIDs(t *testing.T) {
	const inner = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect id="b" width="10" height="10"/></svg>`
	const plain = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`

	tests := []struct {
		name   string
		shapes func() []*shape.Shape
		want   []string
	}{
		{
			name: "no clash",
			shapes: func() []*shape.Shape {
				return []*shape.Shape{newShape(t, "a", inner), newShape(t, "c", plain)}
			},
			want: []string{"a", "b"},
		},
		{
			name: "shape id",
			shapes: func() []*shape.Shape {
				return []*shape.Shape{newShape(t, "a", inner), newShape(t, "a-b", plain)}
			},
			want: []string{"aa", "b"},
		},
		{
			name: "alignment name",
			shapes: func() []*shape.Shape {
				c := newShape(t, "c", plain)
				c.Align = []shape.Alignment{{Template: "%s"}, {Template: "a-b"}}
				return []*shape.Shape{newShape(t, "a", inner), c}
			},
			want: []string{"aa", "b"},
		},
		{
			name: "extended token taken",
			shapes: func() []*shape.Shape {
				return []*shape.Shape{newShape(t, "a", inner), newShape(t, "a-b", plain), newShape(t, "aa-b", plain)}
			},
			want: []string{"ab", "b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.shapes(), Options{IDs: true})
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveAvoidsShapeIDs(t *testing.T) {
	shapes := []*shape.Shape{
		newShape(t, "a", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect id="b" width="10" height="10"/></svg>`),
		newShape(t, "a-b", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"/>`),
	}
	if _, err := Resolve(context.Background(), shapes, Options{IDs: true}); err != nil {
		t.Fatal(err)
	}
	got := string(shapes[0].Doc.Bytes())
	if strings.Contains(got, `id="a-b"`) || !strings.Contains(got, `id="aa-b"`) {
		t.Errorf("inner id collides with shape a-b: %s", got)
	}
}

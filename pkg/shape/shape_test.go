package shape

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/svgsprite/pkg/errors"
)

func TestPathOf(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"home.svg", "home"},
		{"icons/home.svg", "icons/home"},
		{"./icons/home.svg", "icons/home"},
		{"icons/nested/arrow.left.svg", "icons/nested/arrow.left"},
		{"noext", "noext"},
		{"u\u0308ber.svg", "\u00fcber"}, // NFD input normalized to NFC
	}

	for _, tt := range tests {
		if got := PathOf(tt.in); got != tt.want {
			t.Errorf("PathOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		path string
		opts IDOptions
		want string
	}{
		{"flat", "home", DefaultIDOptions, "home"},
		{"nested", "icons/home", DefaultIDOptions, "icons--home"},
		{"whitespace", "my icons/big  home", DefaultIDOptions, "my_icons--big_home"},
		{"custom separator", "a/b", IDOptions{Separator: "-", Whitespace: "_"}, "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identifier(tt.path, tt.opts); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("dimensions from input", func(t *testing.T) {
		s, err := New(Input{Path: "a.svg", Data: []byte(`<svg/>`), Width: 10, Height: 20}, DefaultIDOptions, DefaultDimensionOptions)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if s.Width != 10 || s.Height != 20 {
			t.Errorf("dimensions = %vx%v, want 10x20", s.Width, s.Height)
		}
		if s.ViewBox() != "0 0 10 20" {
			t.Errorf("ViewBox() = %q", s.ViewBox())
		}
	})

	t.Run("dimensions from document", func(t *testing.T) {
		s, err := New(Input{Path: "icons/b.svg", Data: []byte(`<svg viewBox="0 0 16 8"/>`)}, DefaultIDOptions, DefaultDimensionOptions)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if s.ID != "icons--b" || s.Path != "icons/b" {
			t.Errorf("ID/Path = %q/%q", s.ID, s.Path)
		}
		if s.Width != 16 || s.Height != 8 {
			t.Errorf("dimensions = %vx%v, want 16x8", s.Width, s.Height)
		}
	})

	t.Run("capped and rounded", func(t *testing.T) {
		dims := DimensionOptions{MaxWidth: 100, MaxHeight: 100, Precision: 2}
		s, err := New(Input{Path: "c.svg", Data: []byte(`<svg width="300" height="100"/>`)}, DefaultIDOptions, dims)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if s.Width != 100 || s.Height != 33.33 {
			t.Errorf("dimensions = %vx%v, want 100x33.33", s.Width, s.Height)
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := New(Input{Path: "d.svg", Data: []byte(`<svg><g></svg>`)}, DefaultIDOptions, DefaultDimensionOptions)
		if !errors.Is(err, errors.ErrCodeParseDocument) {
			t.Errorf("New() error = %v, want PARSE_DOCUMENT", err)
		}
	})

	t.Run("no dimensions", func(t *testing.T) {
		_, err := New(Input{Path: "e.svg", Data: []byte(`<svg/>`)}, DefaultIDOptions, DefaultDimensionOptions)
		if err == nil {
			t.Error("New() should fail without any dimensions")
		}
	})
}

func TestCompare(t *testing.T) {
	shapes := []*Shape{{ID: "c"}, {ID: "a"}, {ID: "b"}, {ID: "a"}}
	slices.SortStableFunc(shapes, Compare)

	var ids []string
	for _, s := range shapes {
		ids = append(ids, s.ID)
	}
	if got := strings.Join(ids, ","); got != "a,a,b,c" {
		t.Errorf("sorted = %s, want a,a,b,c", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      float64
	}{
		{1.23456, -1, 1.23456},
		{1.23456, 0, 1},
		{1.23456, 2, 1.23},
		{-0.5, 0, -1},
	}

	for _, tt := range tests {
		if got := Round(tt.v, tt.precision); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestApplyMeta(t *testing.T) {
	s, err := New(Input{Path: "home.svg", Data: []byte(`<svg width="1" height="1"><title>old</title><path d="M0 0"/></svg>`)}, DefaultIDOptions, DefaultDimensionOptions)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	s.ApplyMeta("Home", "Go home & rest")

	out := string(s.Doc.Bytes())
	if strings.Contains(out, "old") {
		t.Errorf("existing title should be replaced: %s", out)
	}
	if !strings.Contains(out, `aria-labelledby="home-title home-desc"`) {
		t.Errorf("missing aria-labelledby: %s", out)
	}
	if !strings.Contains(out, `<title id="home-title">Home</title>`) {
		t.Errorf("missing title: %s", out)
	}
	if !strings.Contains(out, "&amp;") {
		t.Errorf("description should be escaped: %s", out)
	}
	if s.Title != "Home" || s.Description != "Go home & rest" {
		t.Errorf("Title/Description = %q/%q", s.Title, s.Description)
	}
}

func TestValidate(t *testing.T) {
	ok, err := New(Input{Path: "a.svg", Data: []byte(`<svg width="1" height="1"/>`)}, DefaultIDOptions, DefaultDimensionOptions)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		shape   *Shape
		wantErr bool
	}{
		{"nil", nil, true},
		{"no document", &Shape{ID: "a"}, true},
		{"parsed", ok, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeRender) {
				t.Errorf("Validate() = %v, want RENDER", err)
			}
		})
	}
}

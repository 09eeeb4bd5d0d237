package layout

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/svgsprite/pkg/shape"
)

func square(id string, size float64, align ...shape.Alignment) *shape.Shape {
	return &shape.Shape{ID: id, Width: size, Height: size, Align: align}
}

func TestComputeHorizontal(t *testing.T) {
	shapes := []*shape.Shape{square("a", 10), square("b", 20), square("c", 30)}
	sp := Compute(shapes, Horizontal, Padding{}, -1)

	want := [][2]float64{{0, 0}, {10, 0}, {30, 0}}
	if len(sp.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(sp.Items), len(want))
	}
	for i, it := range sp.Items {
		if it.X != want[i][0] || it.Y != want[i][1] {
			t.Errorf("item %s at (%v,%v), want (%v,%v)", it.Name, it.X, it.Y, want[i][0], want[i][1])
		}
	}
	if sp.Width != 60 || sp.Height != 30 {
		t.Errorf("sprite = %vx%v, want 60x30", sp.Width, sp.Height)
	}
}

func TestComputeKinds(t *testing.T) {
	shapes := []*shape.Shape{square("a", 10), square("b", 20)}
	pad := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	tests := []struct {
		kind Kind
		pos  [][2]float64
		w, h float64
	}{
		{Horizontal, [][2]float64{{0, 0}, {16, 0}}, 42, 24},
		{Vertical, [][2]float64{{0, 0}, {0, 14}}, 26, 38},
		{Diagonal, [][2]float64{{0, 0}, {16, 14}}, 42, 38},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sp := Compute(shapes, tt.kind, pad, -1)
			for i, it := range sp.Items {
				if it.X != tt.pos[i][0] || it.Y != tt.pos[i][1] {
					t.Errorf("item %d at (%v,%v), want %v", i, it.X, it.Y, tt.pos[i])
				}
			}
			if sp.Width != tt.w || sp.Height != tt.h {
				t.Errorf("sprite = %vx%v, want %vx%v", sp.Width, sp.Height, tt.w, tt.h)
			}
			if got := sp.Items[1].InnerX(); got != sp.Items[1].X+4 {
				t.Errorf("InnerX = %v", got)
			}
		})
	}
}

func TestComputeAlignment(t *testing.T) {
	shapes := []*shape.Shape{
		square("big", 40),
		square("small", 10, shape.Alignment{Template: "%s", Weight: 1}, shape.Alignment{Template: "%s-mid", Weight: 0.5}),
	}
	sp := Compute(shapes, Horizontal, Padding{}, -1)
	if len(sp.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(sp.Items))
	}
	tests := []struct {
		name string
		x, y float64
	}{
		{"big", 0, 0},
		{"small", 40, 30},
		{"small-mid", 50, 15},
	}
	for i, tt := range tests {
		it := sp.Items[i]
		if it.Name != tt.name || it.X != tt.x || it.Y != tt.y {
			t.Errorf("item %d = %s (%v,%v), want %s (%v,%v)", i, it.Name, it.X, it.Y, tt.name, tt.x, tt.y)
		}
	}
}

func TestComputeNonOverlap(t *testing.T) {
	var shapes []*shape.Shape
	for i, size := range []float64{3.333, 7.125, 1.5, 10.01, 2.999} {
		shapes = append(shapes, square(fmt.Sprintf("s%d", i), size))
	}
	for _, kind := range []Kind{Horizontal, Vertical, Diagonal} {
		for _, prec := range []int{-1, 0, 1, 2} {
			sp := Compute(shapes, kind, Padding{Top: 1, Right: 1, Bottom: 1, Left: 1}, prec)
			for i := 1; i < len(sp.Items); i++ {
				prev, cur := sp.Items[i-1], sp.Items[i]
				switch kind {
				case Vertical:
					if cur.Y < prev.Y+prev.Height {
						t.Errorf("%s/%d: item %d overlaps predecessor", kind, prec, i)
					}
				default:
					if cur.X < prev.X+prev.Width {
						t.Errorf("%s/%d: item %d overlaps predecessor", kind, prec, i)
					}
				}
			}
			for _, it := range sp.Items {
				if it.X+it.Width > sp.Width+1e-9 || it.Y+it.Height > sp.Height+1e-9 {
					t.Errorf("%s/%d: %s exceeds sprite", kind, prec, it.Name)
				}
			}
		}
	}
}

func TestComputePrecision(t *testing.T) {
	shapes := []*shape.Shape{square("a", 1.0/3), square("b", 2.0/3), square("c", 1)}
	sp := Compute(shapes, Horizontal, Padding{}, 2)
	for _, it := range sp.Items {
		if _, frac, ok := strings.Cut(Format(it.X), "."); ok && len(frac) > 2 {
			t.Errorf("%s: x = %v not rounded to 2 digits", it.Name, it.X)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	shapes := []*shape.Shape{square("a", 1.0/3), square("b", 2.0/7), square("c", 5.55)}
	sp := Compute(shapes, Horizontal, Padding{Left: 1}, 2)
	for _, it := range sp.Items {
		fields := strings.Fields(Position(it))
		x := parsePx(t, fields[0])
		if -x != it.X {
			t.Errorf("%s: stylesheet x %v, document x %v", it.Name, -x, it.X)
		}
		if doc, _ := strconv.ParseFloat(Format(it.X), 64); doc != it.X {
			t.Errorf("%s: Format(%v) = %s", it.Name, it.X, Format(it.X))
		}
	}
}

func parsePx(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"horizontal", Horizontal, true},
		{"vertical", Vertical, true},
		{"diagonal", Diagonal, true},
		{"packed", Horizontal, false},
		{"", Horizontal, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = %v, %v", tt.in, got, ok)
		}
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10px"},
		{-2.5, "-2.5px"},
	}
	for _, tt := range tests {
		if got := Px(tt.in); got != tt.want {
			t.Errorf("Px(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

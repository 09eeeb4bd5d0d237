package layout

import (
	"math"
	"strconv"

	"github.com/matzehuels/svgsprite/pkg/shape"
)

// Kind is the stacking direction.
type Kind string

// Supported layouts.
const (
	Horizontal Kind = "horizontal"
	Vertical   Kind = "vertical"
	Diagonal   Kind = "diagonal"
)

// ParseKind returns the layout named s, or Horizontal and false.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case Horizontal, Vertical, Diagonal:
		return k, true
	}
	return Horizontal, false
}

// Padding is the spacing around each shape, in user units.
type Padding struct {
	Top    int `yaml:"top" json:"top"`
	Right  int `yaml:"right" json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left" json:"left"`
}

// Horizontal returns left + right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns top + bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Item is one placed (shape, alignment) pair.
type Item struct {
	Shape     *shape.Shape
	Alignment shape.Alignment

	// Name is the alignment template expanded with the shape id.
	Name string

	// X, Y, Width and Height describe the padded box.
	X, Y          float64
	Width, Height float64

	// Padding copied from the sprite for convenience.
	Padding Padding
}

// InnerX returns the x offset of the shape itself.
func (i Item) InnerX() float64 { return i.X + float64(i.Padding.Left) }

// InnerY returns the y offset of the shape itself.
func (i Item) InnerY() float64 { return i.Y + float64(i.Padding.Top) }

// Sprite is a finished layout.
type Sprite struct {
	Kind      Kind
	Padding   Padding
	Precision int
	Items     []Item
	Width     float64
	Height    float64
}

// Compute lays out shapes in the given order.
func Compute(shapes []*shape.Shape, kind Kind, pad Padding, precision int) *Sprite {
	sp := &Sprite{Kind: kind, Padding: pad, Precision: precision}

	for _, s := range shapes {
		aligns := s.Align
		if len(aligns) == 0 {
			aligns = []shape.Alignment{{Template: "%s"}}
		}
		for _, a := range aligns {
			sp.Items = append(sp.Items, Item{
				Shape:     s,
				Alignment: a,
				Name:      a.Name(s.ID),
				Width:     s.Width + float64(pad.Horizontal()),
				Height:    s.Height + float64(pad.Vertical()),
				Padding:   pad,
			})
		}
	}

	var maxW, maxH float64
	for _, it := range sp.Items {
		maxW = math.Max(maxW, it.Width)
		maxH = math.Max(maxH, it.Height)
	}

	var x, y float64
	for i := range sp.Items {
		it := &sp.Items[i]
		switch kind {
		case Vertical:
			it.X = floor(weight(it)*(maxW-it.Width), precision)
			it.Y = y
			y = ceil(y+it.Height, precision)
		case Diagonal:
			it.X, it.Y = x, y
			x = ceil(x+it.Width, precision)
			y = ceil(y+it.Height, precision)
		default:
			it.X = x
			it.Y = floor(weight(it)*(maxH-it.Height), precision)
			x = ceil(x+it.Width, precision)
		}
	}

	switch kind {
	case Vertical:
		sp.Width, sp.Height = ceil(maxW, precision), y
	case Diagonal:
		sp.Width, sp.Height = x, y
	default:
		sp.Width, sp.Height = x, ceil(maxH, precision)
	}
	return sp
}

func weight(it *Item) float64 {
	w := it.Alignment.Weight
	switch {
	case math.IsNaN(w), w < 0:
		return 0
	case w > 1:
		return 1
	}
	return w
}

// epsilon absorbs float noise before rounding up or down.
const epsilon = 1e-9

// ceil rounds v up to precision digits. Stacking offsets use it so that
// rounded items never overlap their predecessor.
func ceil(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow10(precision)
	return math.Ceil(v*p-epsilon) / p
}

// floor rounds v down to precision digits. Cross-axis offsets use it so
// that items stay inside the sprite.
func floor(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow10(precision)
	return math.Floor(v*p+epsilon) / p
}

// Format prints a coordinate without trailing zeros.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px prints v as a CSS pixel length.
func Px(v float64) string {
	if v == 0 {
		return "0"
	}
	return Format(v) + "px"
}

// Position returns the CSS background-position that shows item.
func Position(it Item) string {
	return Px(-it.X) + " " + Px(-it.Y)
}

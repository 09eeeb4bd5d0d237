package shape

import (
	"cmp"
	"math"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/svg"
)

// Input is one raw document handed over by the ingestion layer.
type Input struct {
	// Path is the source path relative to the shape root ("icons/home.svg").
	Path string
	// Data holds the raw document bytes.
	Data []byte
	// Width and Height are optional intrinsic dimensions. When zero they are
	// read from the document.
	Width, Height float64
}

// IDOptions control identifier derivation.
type IDOptions struct {
	Separator  string `yaml:"separator" json:"separator"`
	Whitespace string `yaml:"whitespace" json:"whitespace"`
}

// DimensionOptions cap and round intrinsic shape dimensions.
type DimensionOptions struct {
	MaxWidth  float64 `yaml:"maxWidth" json:"maxWidth"`
	MaxHeight float64 `yaml:"maxHeight" json:"maxHeight"`
	Precision int     `yaml:"precision" json:"precision"`
}

// Defaults.
var (
	DefaultIDOptions        = IDOptions{Separator: "--", Whitespace: "_"}
	DefaultDimensionOptions = DimensionOptions{MaxWidth: 2000, MaxHeight: 2000, Precision: 2}
)

// Alignment is one positioning template with its cross-axis weight.
type Alignment struct {
	Template string
	Weight   float64
}

// Name expands the template for the given identifier.
func (a Alignment) Name(id string) string {
	return strings.ReplaceAll(a.Template, "%s", id)
}

// Shape is one document being merged into a sprite.
type Shape struct {
	ID     string
	Path   string
	Source string
	Doc    *svg.Document

	// Width and Height are the (possibly capped) rendered dimensions.
	Width, Height float64

	Title       string
	Description string
	Align       []Alignment

	// Namespace is the token prepended to internal ids and classes, empty
	// when namespacing is disabled.
	Namespace string

	// viewBox is captured at ingestion so that later transforms stripping
	// dimension attributes do not change the coordinate system.
	viewBox string
}

// New parses in and derives the shape's identity and dimensions.
func New(in Input, ids IDOptions, dims DimensionOptions) (*Shape, error) {
	p := PathOf(in.Path)
	id := Identifier(p, ids)
	if err := errors.ValidateIdentifier(id); err != nil {
		return nil, err
	}

	doc, err := svg.Parse(in.Data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseDocument, err, "parse %s", in.Path)
	}

	s := &Shape{ID: id, Path: p, Source: in.Path, Doc: doc}
	if err := s.measure(in.Width, in.Height, dims); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shape) measure(w, h float64, opts DimensionOptions) error {
	if w <= 0 || h <= 0 {
		var ok bool
		w, h, ok = s.Doc.Dimensions()
		if !ok {
			return errors.New(errors.ErrCodeParseDocument, "%s: cannot determine dimensions", s.Source)
		}
	}
	if vb, ok := s.Doc.Attr("viewBox"); ok {
		s.viewBox = strings.Join(strings.Fields(strings.ReplaceAll(vb, ",", " ")), " ")
	} else {
		s.viewBox = "0 0 " + formatFloat(w) + " " + formatFloat(h)
	}

	if opts.MaxWidth > 0 && w > opts.MaxWidth {
		h, w = h*opts.MaxWidth/w, opts.MaxWidth
	}
	if opts.MaxHeight > 0 && h > opts.MaxHeight {
		w, h = w*opts.MaxHeight/h, opts.MaxHeight
	}
	s.Width = Round(w, opts.Precision)
	s.Height = Round(h, opts.Precision)
	return nil
}

// ViewBox returns the shape's coordinate system as a viewBox attribute value.
func (s *Shape) ViewBox() string { return s.viewBox }

// Aligned reports whether the shape has more than the default placement.
func (s *Shape) Aligned() bool { return len(s.Align) > 1 }

// String returns the shape identifier.
func (s *Shape) String() string { return s.ID }

var whitespace = regexp.MustCompile(`\s+`)

// PathOf normalizes a source path: slash separators, no extension,
// NFC-normalized. "icons\\Home.svg" becomes "icons/Home".
func PathOf(source string) string {
	p := path.Clean(filepath.ToSlash(norm.NFC.String(source)))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return strings.TrimSuffix(p, path.Ext(p))
}

// Identifier derives the shape id from its normalized path.
func Identifier(p string, opts IDOptions) string {
	id := strings.ReplaceAll(p, "/", opts.Separator)
	return whitespace.ReplaceAllString(id, opts.Whitespace)
}

// CompareFunc orders shapes.
type CompareFunc func(a, b *Shape) int

// Compare orders shapes lexicographically by identifier.
func Compare(a, b *Shape) int {
	return cmp.Compare(a.ID, b.ID)
}

// Round rounds v to precision fractional digits. A negative precision
// returns v unchanged.
func Round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate is a guard used before rendering.
func (s *Shape) Validate() error {
	if s == nil || s.Doc == nil {
		return errors.New(errors.ErrCodeRender, "shape has no document")
	}
	return nil
}

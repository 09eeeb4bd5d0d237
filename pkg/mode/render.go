package mode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// Input is the finalized, read-only state every mode renders from.
type Input struct {
	// Shapes are namespaced and in sort order.
	Shapes    []*shape.Shape
	Settings  svg.Settings
	Padding   layout.Padding
	Variables map[string]any
	Post      []transform.PostFunc
	Logger    *log.Logger
}

// Output is the result of rendering one requested mode.
type Output struct {
	Key       string
	Mode      Name
	Artifacts []Artifact
	// Failures are shape-scoped errors for shapes left out of the sprite.
	Failures []error
	// Layout is set for position-addressed modes.
	Layout *layout.Sprite
}

// Sprite returns the sprite artifact.
func (o *Output) Sprite() (Artifact, bool) {
	for _, a := range o.Artifacts {
		if a.Kind == KindSprite {
			return a, true
		}
	}
	return Artifact{}, false
}

// Render renders cfg under the configuration key. Input is not modified.
func Render(ctx context.Context, key string, cfg Config, in Input) (*Output, error) {
	if in.Logger == nil {
		in.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	r := &renderer{key: key, mode: cfg.Mode(), common: cfg.Options(), in: in}
	r.out = &Output{Key: key, Mode: r.mode}
	r.shapes = r.usable()

	var err error
	switch c := cfg.(type) {
	case *CSSOptions:
		r.addr = c.Addressing
		err = r.css(ctx, c)
	case *ViewOptions:
		r.addr = c.Addressing
		err = r.view(ctx, c)
	case *DefsOptions:
		err = r.defs(ctx, c)
	case *SymbolOptions:
		err = r.symbol(ctx, c)
	case *StackOptions:
		r.addr = c.Addressing
		err = r.stack(ctx, c)
	default:
		err = errors.New(errors.ErrCodeInvalidConfig, "unsupported options %T", cfg)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.ForMode(key, err)
	}

	if err := r.templates(ctx); err != nil {
		return nil, errors.ForMode(key, err)
	}
	slices.SortFunc(r.out.Artifacts, func(a, b Artifact) int { return strings.Compare(a.Path, b.Path) })
	return r.out, nil
}

type renderer struct {
	key    string
	mode   Name
	common Common
	addr   Addressing
	in     Input
	out    *Output
	shapes []*shape.Shape

	// sprite is the final sprite artifact, set by compose.
	sprite Artifact

	// stylesheet is the stylesheet path when one is emitted.
	stylesheet string

	// inlineSprite embeds the sprite into the example page.
	inlineSprite bool
}

// usable filters out shapes that cannot be rendered, recording a failure
// for each.
func (r *renderer) usable() []*shape.Shape {
	out := make([]*shape.Shape, 0, len(r.in.Shapes))
	for _, s := range r.in.Shapes {
		err := s.Validate()
		if err == nil && r.mode.Positioned() && (s.Width <= 0 || s.Height <= 0) {
			err = errors.New(errors.ErrCodeRender, "no dimensions")
		}
		if err != nil {
			r.fail(s, errors.Wrap(errors.ErrCodeRender, err, "render"))
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *renderer) fail(s *shape.Shape, err error) {
	r.in.Logger.Debug("shape skipped", "mode", r.key, "shape", s.ID, "err", err)
	r.out.Failures = append(r.out.Failures, &errors.ShapeError{Shape: s.ID, Mode: r.key, Err: err})
}

func (r *renderer) path(rel string) string {
	return path.Join(r.common.Dest, rel)
}

// compose validates the merged document, runs post-processing and stores
// the sprite artifact.
func (r *renderer) compose(ctx context.Context, data []byte, bustName bool) error {
	if err := svg.WellFormed(data); err != nil {
		return errors.Wrap(errors.ErrCodeCompose, err, "merged sprite")
	}
	data, err := transform.RunPost(ctx, r.in.Post, data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTransform, err, "post-processing")
	}
	if err := svg.WellFormed(data); err != nil {
		return errors.Wrap(errors.ErrCodeCompose, err, "post-processed sprite")
	}

	p := r.path(r.common.Sprite)
	if err := errors.ValidatePath(p); err != nil {
		return err
	}
	a := NewArtifact(r.mode, KindSprite, p, data)
	if bustName {
		a.Path = bust(a.Path, a.Digest)
	}
	r.sprite = a
	r.out.Artifacts = append(r.out.Artifacts, a)
	return nil
}

func (r *renderer) emit(kind Kind, rel string, data []byte) error {
	p := r.path(rel)
	if err := errors.ValidatePath(p); err != nil {
		return err
	}
	r.out.Artifacts = append(r.out.Artifacts, NewArtifact(r.mode, kind, p, data))
	return nil
}

// spriteURL is the sprite location as referenced from an artifact at p.
func (r *renderer) spriteURL(p string) string {
	return relative(r.path(p), r.sprite.Path)
}

// ============================================================================
// Document writing
// ============================================================================

// document accumulates a merged sprite.
type document struct {
	buf bytes.Buffer
}

// root describes the sprite's root element.
type root struct {
	width, height float64
	viewBox       bool
	inline        bool
	extra         [][2]string
}

func (r *renderer) open(d *document, rt root) {
	set := r.in.Settings
	if !rt.inline {
		if set.XMLDeclaration {
			d.buf.WriteString(svg.XMLDeclaration + "\n")
		}
		if set.DoctypeDeclaration {
			d.buf.WriteString(svg.Doctype + "\n")
		}
	}
	fmt.Fprintf(&d.buf, `<svg xmlns="%s" xmlns:xlink="%s"`, svg.NamespaceSVG, svg.NamespaceXLink)
	for _, ns := range namespaces(r.shapes) {
		fmt.Fprintf(&d.buf, ` xmlns:%s="%s"`, ns[0], escape(ns[1]))
	}
	if rt.width > 0 && rt.height > 0 {
		if set.DimensionAttributes {
			fmt.Fprintf(&d.buf, ` width="%s" height="%s"`, layout.Format(rt.width), layout.Format(rt.height))
		}
		if rt.viewBox {
			fmt.Fprintf(&d.buf, ` viewBox="0 0 %s %s"`, layout.Format(rt.width), layout.Format(rt.height))
		}
	}
	for _, kv := range rt.extra {
		fmt.Fprintf(&d.buf, ` %s="%s"`, kv[0], escape(kv[1]))
	}
	keys := make([]string, 0, len(set.RootAttributes))
	for k := range set.RootAttributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&d.buf, ` %s="%s"`, k, escape(set.RootAttributes[k]))
	}
	d.buf.WriteString(">")
}

func (d *document) close() []byte {
	d.buf.WriteString("</svg>\n")
	return d.buf.Bytes()
}

// element writes <name attrs...>shape content</name>. attrs are name/value
// pairs written before the shape's own root attributes.
func (d *document) element(name string, s *shape.Shape, attrs ...string) {
	d.buf.WriteString("<" + name)
	for i := 0; i+1 < len(attrs); i += 2 {
		fmt.Fprintf(&d.buf, ` %s="%s"`, attrs[i], escape(attrs[i+1]))
	}
	for _, a := range s.Doc.Root().Attr {
		if skipRootAttr(a.Name.Space, a.Name.Local) {
			continue
		}
		n := a.Name.Local
		if a.Name.Space != "" {
			n = a.Name.Space + ":" + n
		}
		fmt.Fprintf(&d.buf, ` %s="%s"`, n, escape(a.Value))
	}
	d.buf.WriteString(">")
	d.buf.WriteString(s.Doc.Inner())
	d.buf.WriteString("</" + name + ">")
}

// skipRootAttr reports whether a shape root attribute is replaced by the
// sprite's own placement attributes.
func skipRootAttr(space, local string) bool {
	if space == "xmlns" || (space == "" && local == "xmlns") {
		return true
	}
	switch local {
	case "id", "x", "y", "width", "height", "viewBox", "version", "preserveAspectRatio", "enable-background":
		return true
	}
	return false
}

// namespaces collects prefixed namespace declarations from shape roots so
// the merged document stays well-formed.
func namespaces(shapes []*shape.Shape) [][2]string {
	seen := map[string]string{}
	for _, s := range shapes {
		for _, a := range s.Doc.Root().Attr {
			if a.Name.Space == "xmlns" && a.Name.Local != "xlink" {
				if _, ok := seen[a.Name.Local]; !ok {
					seen[a.Name.Local] = a.Value
				}
			}
		}
	}
	out := make([][2]string, 0, len(seen))
	for k, v := range seen {
		out = append(out, [2]string{k, v})
	}
	slices.SortFunc(out, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return out
}

var escaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }

// selector expands a selector template for name.
func selector(prefix, name string) string {
	if strings.Contains(prefix, "%s") {
		return strings.ReplaceAll(prefix, "%s", name)
	}
	return prefix + name
}

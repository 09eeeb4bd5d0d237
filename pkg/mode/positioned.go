package mode

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
)

func (r *renderer) css(ctx context.Context, o *CSSOptions) error {
	if err := r.positioned(ctx, o.Layout, o.Bust, false); err != nil {
		return err
	}
	if err := r.emit(KindStylesheet, o.Stylesheet, r.backgroundSheet(o.Addressing, o.Stylesheet)); err != nil {
		return err
	}
	r.stylesheet = o.Stylesheet
	return r.example(o.Addressing)
}

func (r *renderer) view(ctx context.Context, o *ViewOptions) error {
	if err := r.positioned(ctx, o.Layout, o.Bust, true); err != nil {
		return err
	}
	if err := r.emit(KindStylesheet, o.Stylesheet, r.fragmentSheet(o.Addressing, o.Stylesheet)); err != nil {
		return err
	}
	r.stylesheet = o.Stylesheet
	return r.example(o.Addressing)
}

// positioned lays out the shapes and composes the sprite. With views set
// each item also gets a <view> addressing its region. A shape placed by
// several alignments is written once; later items <use> the first copy.
func (r *renderer) positioned(ctx context.Context, layoutName string, bustName, views bool) error {
	kind, ok := layout.ParseKind(layoutName)
	if !ok {
		r.in.Logger.Warn("unknown layout, using horizontal", "mode", r.key, "layout", layoutName)
	}
	sp := layout.Compute(r.shapes, kind, r.in.Padding, r.in.Settings.Precision)
	r.out.Layout = sp

	anchor := anchors(r.shapes, sp.Items)
	first := map[*shape.Shape]layout.Item{}

	var d document
	r.open(&d, root{width: sp.Width, height: sp.Height, viewBox: true})
	for _, it := range sp.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := it.Shape
		x, y := layout.Format(it.InnerX()), layout.Format(it.InnerY())
		w, h := layout.Format(s.Width), layout.Format(s.Height)
		if views {
			fmt.Fprintf(&d.buf, `<view id="%s" viewBox="%s %s %s %s"/>`, escape(it.Name), x, y, w, h)
		}
		if f, ok := first[s]; ok {
			dx, dy := layout.Format(it.InnerX()-f.InnerX()), layout.Format(it.InnerY()-f.InnerY())
			fmt.Fprintf(&d.buf, `<use xlink:href="#%s" x="%s" y="%s"/>`, escape(anchor[s]), dx, dy)
			continue
		}
		first[s] = it
		attrs := []string{"viewBox", s.ViewBox(), "width", w, "height", h, "x", x, "y", y}
		if id, ok := anchor[s]; ok {
			attrs = append([]string{"id", id}, attrs...)
		}
		d.element("svg", s, attrs...)
	}
	r.in.Logger.Debug("layout computed", "mode", r.key, "layout", kind, "items", len(sp.Items), "width", sp.Width, "height", sp.Height)
	return r.compose(ctx, d.close(), bustName)
}

// anchors names the first copy of every shape that is laid out more than
// once. Names avoid shape ids, item names and every id inside a shape.
func anchors(shapes []*shape.Shape, items []layout.Item) map[*shape.Shape]string {
	count := map[*shape.Shape]int{}
	taken := map[string]bool{}
	for _, it := range items {
		count[it.Shape]++
		taken[it.Name] = true
	}
	for _, s := range shapes {
		taken[s.ID] = true
		for _, n := range s.Doc.Select(svg.WithID) {
			if id, _ := svg.LocalAttr(n, "id"); id != "" {
				taken[id] = true
			}
		}
	}

	out := map[*shape.Shape]string{}
	for _, it := range items {
		s := it.Shape
		if _, ok := out[s]; ok || count[s] < 2 {
			continue
		}
		id := s.ID + "-shape"
		for n := 2; taken[id]; n++ {
			id = s.ID + "-shape-" + strconv.Itoa(n)
		}
		taken[id] = true
		out[s] = id
	}
	return out
}

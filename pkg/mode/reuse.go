package mode

import (
	"context"

	"github.com/matzehuels/svgsprite/pkg/layout"
)

const stackStyle = `:root>svg{display:none}:root>svg:target{display:inline}`

var hidden = [][2]string{
	{"width", "0"},
	{"height", "0"},
	{"style", "position:absolute"},
	{"aria-hidden", "true"},
}

func (r *renderer) defs(ctx context.Context, o *DefsOptions) error {
	var d document
	rt := root{inline: o.Inline}
	if o.Inline {
		rt.extra = hidden
		r.inlineSprite = true
	}
	r.open(&d, rt)
	d.buf.WriteString("<defs>")
	for _, s := range r.shapes {
		if err := ctx.Err(); err != nil {
			return err
		}
		attrs := []string{"id", s.ID, "viewBox", s.ViewBox()}
		if r.in.Settings.DimensionAttributes {
			attrs = append(attrs, "width", layout.Format(s.Width), "height", layout.Format(s.Height))
		}
		d.element("svg", s, attrs...)
	}
	d.buf.WriteString("</defs>")
	if err := r.compose(ctx, d.close(), false); err != nil {
		return err
	}
	return r.example(Addressing{})
}

func (r *renderer) symbol(ctx context.Context, o *SymbolOptions) error {
	var d document
	rt := root{inline: o.Inline}
	if o.Inline {
		rt.extra = hidden
		r.inlineSprite = true
	}
	r.open(&d, rt)
	for _, s := range r.shapes {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.element("symbol", s, "id", s.ID, "viewBox", s.ViewBox())
	}
	if err := r.compose(ctx, d.close(), false); err != nil {
		return err
	}
	return r.example(Addressing{})
}

func (r *renderer) stack(ctx context.Context, o *StackOptions) error {
	var d document
	r.open(&d, root{})
	d.buf.WriteString("<style><![CDATA[" + stackStyle + "]]></style>")
	for _, s := range r.shapes {
		if err := ctx.Err(); err != nil {
			return err
		}
		attrs := []string{"id", s.ID, "viewBox", s.ViewBox()}
		if r.in.Settings.DimensionAttributes {
			attrs = append(attrs, "width", layout.Format(s.Width), "height", layout.Format(s.Height))
		}
		d.element("svg", s, attrs...)
	}
	if err := r.compose(ctx, d.close(), false); err != nil {
		return err
	}
	if err := r.emit(KindStylesheet, o.Stylesheet, r.fragmentSheet(o.Addressing, o.Stylesheet)); err != nil {
		return err
	}
	r.stylesheet = o.Stylesheet
	return r.example(o.Addressing)
}

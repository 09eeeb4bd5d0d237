package mode

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

// backgroundSheet addresses items of a position-addressed sprite by
// background-position.
func (r *renderer) backgroundSheet(a Addressing, at string) []byte {
	var buf bytes.Buffer
	url := r.spriteURL(at)
	for _, it := range r.out.Layout.Items {
		r.rule(&buf, a, it.Name, fmt.Sprintf(`background: url("%s") %s no-repeat;`, url, layout.Position(it)), it.Width, it.Height)
	}
	return buf.Bytes()
}

// fragmentSheet addresses shapes by fragment identifier.
func (r *renderer) fragmentSheet(a Addressing, at string) []byte {
	var buf bytes.Buffer
	url := r.spriteURL(at)
	if r.mode == Stack {
		buf.WriteString(":root>svg {\n\tdisplay: none;\n}\n\n:root>svg:target {\n\tdisplay: inline;\n}\n\n")
	}
	if r.out.Layout != nil {
		for _, it := range r.out.Layout.Items {
			r.rule(&buf, a, it.Name, fmt.Sprintf(`background: url("%s#%s") no-repeat;`, url, it.Name), it.Width, it.Height)
		}
		return buf.Bytes()
	}
	for _, s := range r.shapes {
		r.rule(&buf, a, s.ID, fmt.Sprintf(`background: url("%s#%s") no-repeat;`, url, s.ID), s.Width, s.Height)
	}
	return buf.Bytes()
}

func (r *renderer) rule(buf *bytes.Buffer, a Addressing, name, decl string, w, h float64) {
	sel := selector(a.Prefix, name)
	dims := r.in.Settings.DimensionAttributes
	prec := r.in.Settings.Precision
	size := fmt.Sprintf("\twidth: %s;\n\theight: %s;\n", layout.Px(shape.Round(w, prec)), layout.Px(shape.Round(h, prec)))

	fmt.Fprintf(buf, "%s {\n\t%s\n", sel, decl)
	if dims && a.Dimensions == "" {
		buf.WriteString(size)
	}
	buf.WriteString("}\n\n")
	if dims && a.Dimensions != "" {
		fmt.Fprintf(buf, "%s%s {\n%s}\n\n", sel, a.Dimensions, size)
	}
}

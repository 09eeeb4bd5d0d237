package mode

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/matzehuels/svgsprite/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var exampleTemplate = template.Must(template.ParseFS(templatesFS, "templates/example.html"))

type examplePage struct {
	Title      string
	Sprite     string
	Stylesheet string
	Inline     template.HTML
	Items      []exampleItem
}

type exampleItem struct {
	Name   string
	Title  string
	Markup template.HTML
}

// examplePath is where the preview page of the mode is written.
func (r *renderer) examplePath() string {
	return "sprite." + string(r.mode) + ".html"
}

// example renders the HTML preview when enabled.
func (r *renderer) example(a Addressing) error {
	if !r.common.Example {
		return nil
	}
	at := r.examplePath()
	page := examplePage{
		Title:  fmt.Sprintf("%s sprite (%s)", r.mode, r.key),
		Sprite: r.spriteURL(at),
	}
	if r.stylesheet != "" {
		page.Stylesheet = relative(r.path(at), r.path(r.stylesheet))
	}
	inline := r.inlineSprite
	if inline {
		page.Inline = template.HTML(stripDeclarations(r.sprite.Data))
	}

	if r.out.Layout != nil {
		for _, it := range r.out.Layout.Items {
			page.Items = append(page.Items, exampleItem{
				Name:   it.Name,
				Title:  it.Shape.Title,
				Markup: r.markup(a, it.Name, page.Sprite, inline),
			})
		}
	} else {
		for _, s := range r.shapes {
			page.Items = append(page.Items, exampleItem{
				Name:   s.ID,
				Title:  s.Title,
				Markup: r.markup(a, s.ID, page.Sprite, inline),
			})
		}
	}

	var buf bytes.Buffer
	if err := exampleTemplate.Execute(&buf, page); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "example")
	}
	return r.emit(KindExample, at, buf.Bytes())
}

// markup returns the HTML showing one shape.
func (r *renderer) markup(a Addressing, name, sprite string, inline bool) template.HTML {
	ref := sprite + "#" + name
	if inline {
		ref = "#" + name
	}
	ref = html.EscapeString(ref)
	switch r.mode {
	case CSS, View:
		if class, ok := className(a, name); ok {
			return template.HTML(fmt.Sprintf(`<i class="%s"></i>`, html.EscapeString(class)))
		}
		if r.mode == View {
			return template.HTML(fmt.Sprintf(`<img src="%s" alt="%s">`, ref, html.EscapeString(name)))
		}
		return ""
	case Stack:
		return template.HTML(fmt.Sprintf(`<img src="%s" alt="%s">`, ref, html.EscapeString(name)))
	}
	return template.HTML(fmt.Sprintf(`<svg width="32" height="32"><use xlink:href="%s"></use></svg>`, ref))
}

// className returns the classes applying a simple ".class" selector and its
// size rule.
func className(a Addressing, name string) (string, bool) {
	sel := selector(a.Prefix, name)
	if !strings.HasPrefix(sel, ".") || strings.ContainsAny(sel[1:], " .#:>[") {
		return "", false
	}
	class := sel[1:]
	if a.Dimensions != "" {
		class += " " + class + a.Dimensions
	}
	return class, true
}

// stripDeclarations strips the declarations from a sprite for embedding in HTML.
func stripDeclarations(data []byte) string {
	s := string(data)
	if i := strings.Index(s, "<svg"); i > 0 {
		s = s[i:]
	}
	return strings.TrimSpace(s)
}

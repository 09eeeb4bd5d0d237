package mode

import (
	"bytes"
	"context"
	"os"
	"slices"
	"text/template"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/layout"
)

// TemplateData is the value custom render templates execute against.
type TemplateData struct {
	Mode      Name
	Key       string
	Sprite    string
	Digest    string
	Width     float64
	Height    float64
	Shapes    []TemplateShape
	Variables map[string]any
}

// TemplateShape describes one addressable shape.
type TemplateShape struct {
	Name        string
	ID          string
	Title       string
	Description string
	Selector    string
	Width       float64
	Height      float64
	X           float64
	Y           float64
	Position    string
}

var templateFuncs = template.FuncMap{
	"px":     layout.Px,
	"format": layout.Format,
}

// templates renders every configured custom output in format order.
func (r *renderer) templates(ctx context.Context) error {
	formats := make([]string, 0, len(r.common.Render))
	for f := range r.common.Render {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		spec := r.common.Render[format]
		src := spec.Template
		if src == "" && spec.File != "" {
			data, err := os.ReadFile(spec.File)
			if err != nil {
				return errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
			}
			src = string(data)
		}
		if src == "" {
			r.in.Logger.Warn("render template is empty", "mode", r.key, "format", format)
			continue
		}
		tmpl, err := template.New(format).Funcs(templateFuncs).Parse(src)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
		}
		dest := spec.Dest
		if dest == "" {
			dest = "sprite." + format
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, r.templateData(dest)); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
		}
		if err := r.emit(KindTemplate, dest, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) templateData(at string) TemplateData {
	data := TemplateData{
		Mode:      r.mode,
		Key:       r.key,
		Sprite:    r.spriteURL(at),
		Digest:    r.sprite.Digest,
		Variables: r.in.Variables,
	}
	if sp := r.out.Layout; sp != nil {
		data.Width, data.Height = sp.Width, sp.Height
		for _, it := range sp.Items {
			data.Shapes = append(data.Shapes, TemplateShape{
				Name:        it.Name,
				ID:          it.Shape.ID,
				Title:       it.Shape.Title,
				Description: it.Shape.Description,
				Selector:    selector(r.addr.Prefix, it.Name),
				Width:       it.Width,
				Height:      it.Height,
				X:           it.X,
				Y:           it.Y,
				Position:    layout.Position(it),
			})
		}
		return data
	}
	for _, s := range r.shapes {
		data.Shapes = append(data.Shapes, TemplateShape{
			Name:        s.ID,
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Selector:    selector(r.addr.Prefix, s.ID),
			Width:       s.Width,
			Height:      s.Height,
		})
	}
	return data
}

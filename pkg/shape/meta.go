package shape

import (
	"github.com/matzehuels/svgsprite/pkg/svg"
)

// ApplyMeta stores title and description on the shape and injects them
// into its document as <title>/<desc> children referenced by
// aria-labelledby.
func (s *Shape) ApplyMeta(title, description string) {
	s.Title, s.Description = title, description
	if title == "" && description == "" {
		return
	}

	root := s.Doc.Root()
	var labels []string
	if description != "" {
		for _, n := range svg.Children(root, "desc") {
			svg.Remove(n)
		}
		id := s.ID + "-desc"
		desc := svg.Element("desc", "id", id)
		svg.Prepend(desc, svg.Text(description))
		svg.Prepend(root, desc)
		labels = append(labels, id)
	}
	if title != "" {
		for _, n := range svg.Children(root, "title") {
			svg.Remove(n)
		}
		id := s.ID + "-title"
		t := svg.Element("title", "id", id)
		svg.Prepend(t, svg.Text(title))
		svg.Prepend(root, t)
		labels = append([]string{id}, labels...)
	}

	value := labels[0]
	for _, l := range labels[1:] {
		value += " " + l
	}
	root.RemoveAttr("aria-labelledby")
	root.SetAttr("aria-labelledby", value)
}

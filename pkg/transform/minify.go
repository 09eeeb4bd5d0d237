package transform

import (
	"context"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/matzehuels/svgsprite/pkg/svg"
)

// editorPrefixes are namespace prefixes written by drawing tools that carry
// no rendering information.
var editorPrefixes = map[string]bool{
	"sodipodi": true,
	"inkscape": true,
	"sketch":   true,
	"serif":    true,
}

// Minifier is the built-in [Optimizer]. It removes comments, <metadata>
// elements, editor namespaces and whitespace-only text.
//
// Recognized options:
//
//	comments: false   keep comments
//	metadata: false   keep <metadata>
//	editor:   false   keep editor namespaces
type Minifier struct{}

// Optimize implements Optimizer. The input document is not modified.
func (Minifier) Optimize(ctx context.Context, doc *svg.Document, opts map[string]any) (*svg.Document, error) {
	out, err := doc.Clone()
	if err != nil {
		return nil, err
	}
	if enabled(opts, "comments") {
		for _, n := range out.Select(svg.Comments) {
			svg.Remove(n)
		}
	}
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			switch c.Type {
			case xmlquery.ElementNode:
				if dropElement(c, opts) {
					svg.Remove(c)
				} else {
					c.Attr = keepAttrs(c.Attr, opts)
					walk(c)
				}
			case xmlquery.TextNode:
				if strings.TrimSpace(c.Data) == "" && !preserveSpace(n) {
					svg.Remove(c)
				}
			}
			c = next
		}
	}
	walk(out.Root())
	out.Root().Attr = keepAttrs(out.Root().Attr, opts)
	return out, ctx.Err()
}

func dropElement(n *xmlquery.Node, opts map[string]any) bool {
	if n.Data == "metadata" && enabled(opts, "metadata") {
		return true
	}
	return editorPrefixes[n.Prefix] && enabled(opts, "editor")
}

func keepAttrs(attrs []xmlquery.Attr, opts map[string]any) []xmlquery.Attr {
	if !enabled(opts, "editor") {
		return attrs
	}
	out := attrs[:0]
	for _, a := range attrs {
		if editorPrefixes[a.Name.Space] {
			continue
		}
		if a.Name.Space == "xmlns" && editorPrefixes[a.Name.Local] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// preserveSpace reports whether whitespace text below n is significant.
func preserveSpace(n *xmlquery.Node) bool {
	switch n.Data {
	case "text", "tspan", "textPath", "style", "title", "desc":
		return true
	}
	return false
}

func enabled(opts map[string]any, key string) bool {
	if v, ok := opts[key].(bool); ok {
		return v
	}
	return true
}

package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Namespace URIs used by sprite documents.
const (
	NamespaceSVG   = "http://www.w3.org/2000/svg"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
)

// Precompiled queries shared by all documents.
var (
	WithID    = xpath.MustCompile("//*[@id]")
	WithClass = xpath.MustCompile("//*[@class]")
	Styles    = xpath.MustCompile("//*[local-name()='style']")
	Comments  = xpath.MustCompile("//comment()")
)

// Document is a parsed SVG document.
type Document struct {
	tree *xmlquery.Node
	root *xmlquery.Node
}

// Parse parses data into a Document. The root element must be <svg>.
func Parse(data []byte) (*Document, error) {
	tree, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	var root *xmlquery.Node
	for c := tree.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			root = c
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parsing svg: no root element")
	}
	if root.Data != "svg" {
		return nil, fmt.Errorf("parsing svg: root element is <%s>, want <svg>", root.Data)
	}
	return &Document{tree: tree, root: root}, nil
}

// Root returns the <svg> root element.
func (d *Document) Root() *xmlquery.Node { return d.root }

// Select returns all nodes matching a compiled expression.
func (d *Document) Select(expr *xpath.Expr) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.root, expr)
}

// Bytes serializes the root element and everything below it.
func (d *Document) Bytes() []byte {
	return []byte(d.root.OutputXML(true))
}

// Inner serializes the children of the root element.
func (d *Document) Inner() string {
	var b strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(c.OutputXML(true))
	}
	return b.String()
}

// Clone returns an independent deep copy of d.
func (d *Document) Clone() (*Document, error) {
	return Parse(d.Bytes())
}

// Attr returns the value of the root attribute with the given local name.
func (d *Document) Attr(local string) (string, bool) {
	return LocalAttr(d.root, local)
}

// ViewBox returns the root viewBox as min-x, min-y, width, height.
func (d *Document) ViewBox() ([4]float64, bool) {
	var vb [4]float64
	raw, ok := d.Attr("viewBox")
	if !ok {
		return vb, false
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return vb, false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return vb, false
		}
		vb[i] = v
	}
	return vb, vb[2] > 0 && vb[3] > 0
}

// Dimensions returns the intrinsic width and height of the document.
// Explicit width/height attributes win; otherwise the viewBox is used.
func (d *Document) Dimensions() (w, h float64, ok bool) {
	w, wok := d.length("width")
	h, hok := d.length("height")
	if wok && hok {
		return w, h, true
	}
	vb, vbok := d.ViewBox()
	if !vbok {
		return 0, 0, false
	}
	switch {
	case wok:
		return w, w * vb[3] / vb[2], true
	case hok:
		return h * vb[2] / vb[3], h, true
	}
	return vb[2], vb[3], true
}

func (d *Document) length(name string) (float64, bool) {
	raw, ok := d.Attr(name)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "px")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// LocalAttr returns the value of the attribute with the given local name,
// regardless of its namespace prefix.
func LocalAttr(n *xmlquery.Node, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == local && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// Element creates a detached element node.
func Element(name string, attrs ...string) *xmlquery.Node {
	n := &xmlquery.Node{Type: xmlquery.ElementNode, Data: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, xmlquery.Attr{Name: xml.Name{Local: attrs[i]}, Value: attrs[i+1]})
	}
	return n
}

// Text creates a detached text node.
func Text(data string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: data}
}

// Prepend inserts n as the first child of parent.
func Prepend(parent, n *xmlquery.Node) {
	n.Parent = parent
	n.PrevSibling = nil
	n.NextSibling = parent.FirstChild
	if parent.FirstChild != nil {
		parent.FirstChild.PrevSibling = n
	} else {
		parent.LastChild = n
	}
	parent.FirstChild = n
}

// Remove detaches n from its tree.
func Remove(n *xmlquery.Node) {
	xmlquery.RemoveFromTree(n)
}

// Children returns the element children of n whose local name is name.
func Children(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// WellFormed reports whether data parses as an <svg> document.
func WellFormed(data []byte) error {
	_, err := Parse(data)
	return err
}

package namespace

import (
	"context"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
)

const workers = 8

// Options selects what is rewritten.
type Options struct {
	IDs     bool
	Classes bool
	Prefix  string
}

// Enabled reports whether any rewriting is requested.
func (o Options) Enabled() bool { return o.IDs || o.Classes }

// Token returns the alphabetic counter for a zero-based index.
func Token(index int) string {
	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return string(b)
}

// Resolve namespaces shapes, which must already be in sorted order. The
// returned slice holds one error per shape (nil on success). The second
// return value is non-nil only when ctx is canceled.
func Resolve(ctx context.Context, shapes []*shape.Shape, opts Options) ([]error, error) {
	failures := make([]error, len(shapes))
	if !opts.Enabled() {
		return failures, nil
	}
	tokens := Tokens(shapes, opts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range shapes {
		token := tokens[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			failures[i] = Apply(s, token, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return failures, ctx.Err()
}

// Tokens assigns each shape its namespace token. Shape i starts from
// Prefix+Token(i); when one of its rewritten ids would equal a shape id or
// an alignment name, the token is extended until nothing clashes. Tokens
// stay alphabetic and distinct, so rewritten ids of different shapes never
// meet either.
func Tokens(shapes []*shape.Shape, opts Options) []string {
	reserved := map[string]bool{}
	for _, s := range shapes {
		reserved[s.ID] = true
		for _, a := range s.Align {
			reserved[a.Name(s.ID)] = true
		}
	}

	used := map[string]bool{}
	tokens := make([]string, len(shapes))
	for i, s := range shapes {
		var ids []string
		if opts.IDs {
			ids = localIDs(s)
		}
		base := opts.Prefix + Token(i)
		t := base
		for k := 0; used[t] || clashes(t, ids, reserved); k++ {
			t = base + Token(k)
		}
		used[t] = true
		tokens[i] = t
	}
	return tokens
}

func localIDs(s *shape.Shape) []string {
	if s == nil || s.Doc == nil {
		return nil
	}
	var ids []string
	for _, n := range s.Doc.Select(svg.WithID) {
		if id, _ := svg.LocalAttr(n, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func clashes(token string, ids []string, reserved map[string]bool) bool {
	for _, id := range ids {
		if reserved[token+"-"+id] {
			return true
		}
	}
	return false
}

// Apply rewrites the ids and classes of one shape under token.
func Apply(s *shape.Shape, token string, opts Options) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeNamespace, err, "%s", s.ID)
	}
	doc, err := s.Doc.Clone()
	if err != nil {
		return errors.Wrap(errors.ErrCodeNamespace, err, "%s", s.ID)
	}

	r := &rewriter{ids: map[string]string{}, classes: map[string]string{}}
	if opts.IDs {
		for _, n := range doc.Select(svg.WithID) {
			if id, _ := svg.LocalAttr(n, "id"); id != "" {
				r.ids[id] = token + "-" + id
			}
		}
	}
	if opts.Classes {
		for _, n := range doc.Select(svg.WithClass) {
			v, _ := svg.LocalAttr(n, "class")
			for _, c := range strings.Fields(v) {
				r.classes[c] = token + "-" + c
			}
		}
	}

	r.element(doc.Root())
	for _, st := range doc.Select(svg.Styles) {
		for c := st.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
				c.Data = r.stylesheet(c.Data)
			}
		}
	}

	out, err := doc.Clone()
	if err != nil {
		return errors.Wrap(errors.ErrCodeNamespace, err, "%s", s.ID)
	}
	s.Doc = out
	s.Namespace = token
	return nil
}

var (
	urlRef   = regexp.MustCompile(`url\(\s*(['"]?)#([^'")\s]+)(['"]?)\s*\)`)
	selector = regexp.MustCompile(`([#.])(-?[_a-zA-Z][\w-]*)`)
)

type rewriter struct {
	ids     map[string]string
	classes map[string]string
}

func (r *rewriter) element(n *xmlquery.Node) {
	if n.Type == xmlquery.ElementNode {
		for i := range n.Attr {
			a := &n.Attr[i]
			if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
				continue
			}
			a.Value = r.attr(a.Name.Local, a.Value)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.element(c)
	}
}

func (r *rewriter) attr(name, value string) string {
	switch name {
	case "id":
		return r.id(value)
	case "href":
		if strings.HasPrefix(value, "#") {
			return "#" + r.id(value[1:])
		}
		return value
	case "aria-labelledby", "aria-describedby":
		return mapFields(value, r.id)
	case "class":
		return mapFields(value, r.class)
	case "style":
		return r.urls(value)
	}
	if strings.Contains(value, "url(") {
		return r.urls(value)
	}
	return value
}

func (r *rewriter) id(v string) string {
	if nv, ok := r.ids[v]; ok {
		return nv
	}
	return v
}

func (r *rewriter) class(v string) string {
	if nv, ok := r.classes[v]; ok {
		return nv
	}
	return v
}

func (r *rewriter) urls(v string) string {
	return urlRef.ReplaceAllStringFunc(v, func(m string) string {
		sub := urlRef.FindStringSubmatch(m)
		return "url(" + sub[1] + "#" + r.id(sub[2]) + sub[3] + ")"
	})
}

// stylesheet rewrites selectors and url() references in CSS text.
// Selectors are the preludes before "{" that are not at-rules.
func (r *rewriter) stylesheet(css string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(css); i++ {
		switch css[i] {
		case '{':
			prelude := css[start:i]
			if !strings.HasPrefix(strings.TrimSpace(prelude), "@") {
				prelude = r.selectors(prelude)
			}
			b.WriteString(prelude)
			b.WriteByte('{')
			start = i + 1
		case '}', ';':
			b.WriteString(r.urls(css[start : i+1]))
			start = i + 1
		}
	}
	b.WriteString(r.urls(css[start:]))
	return b.String()
}

func (r *rewriter) selectors(s string) string {
	return selector.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == '#' {
			return "#" + r.id(m[1:])
		}
		return "." + r.class(m[1:])
	})
}

func mapFields(v string, f func(string) string) string {
	fields := strings.Fields(v)
	for i, x := range fields {
		fields[i] = f(x)
	}
	return strings.Join(fields, " ")
}

// Package svg provides the owned document model that every compilation stage
// operates on.
//
// A [Document] wraps an xmlquery tree parsed from one shape's bytes. Each
// shape owns its document exclusively: stages mutate it in place and never
// share nodes between shapes, so per-shape work can run concurrently.
//
// # Parsing
//
//	doc, err := svg.Parse(data)
//	if err != nil {
//	    return err // not well-formed, or the root element is not <svg>
//	}
//
// # Querying
//
// XPath expressions are compiled once and evaluated with xmlquery:
//
//	for _, n := range doc.Select(svg.WithID) {
//	    fmt.Println(n.SelectAttr("id"))
//	}
//
// # Serialization
//
// [Document.Bytes] serializes the root element; [Document.Inner] serializes
// its children only, which is what sprite composition embeds.
package svg

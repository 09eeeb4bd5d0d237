package meta

import (
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Placeholder marks where the shape identifier goes in a template.
const Placeholder = "%s"

// Wildcard is the table key applying to every shape.
const Wildcard = "*"

// AlignTable maps canonical shape paths (or Wildcard) to positioning
// templates and their cross-axis weights in [0,1].
type AlignTable map[string]map[string]float64

// DefaultAlign is the table used when no alignment is configured.
func DefaultAlign() AlignTable {
	return AlignTable{Wildcard: {Placeholder: 0}}
}

// LoadAlign builds an AlignTable from an inline mapping, a side-file path,
// or an existing AlignTable. A missing file yields DefaultAlign.
func LoadAlign(src any) (AlignTable, error) {
	if t, ok := src.(AlignTable); ok {
		src = t.raw()
	}

	raw, ok, err := load(src)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultAlign(), nil
	}

	table := AlignTable{}
	for key, value := range raw {
		templates, ok := asMap(value)
		if !ok {
			continue
		}
		entry := map[string]float64{}
		for tmpl, w := range templates {
			weight, ok := number(w)
			if !ok {
				continue
			}
			entry[Template(tmpl)] = Clamp(weight)
		}
		table[Key(key)] = entry
	}
	return table, nil
}

// Template normalizes a positioning template. Templates without a
// placeholder get one prepended; the empty template becomes the bare
// placeholder. A placeholder in the middle of the string is kept as is.
func Template(tmpl string) string {
	tmpl = strings.TrimSpace(tmpl)
	switch {
	case tmpl == "":
		return Placeholder
	case strings.Contains(tmpl, Placeholder):
		return tmpl
	}
	return Placeholder + tmpl
}

// Clamp limits a weight to [0,1].
func Clamp(w float64) float64 {
	return max(0, min(1, w))
}

// For returns the templates applying to a shape path, nearest match first:
// an exact key, then the longest matching glob pattern, then the wildcard,
// then the bare placeholder with weight 0.
func (t AlignTable) For(shapePath string) map[string]float64 {
	if e, ok := t[shapePath]; ok && len(e) > 0 {
		return e
	}

	var patterns []string
	for k := range t {
		if k != Wildcard && strings.ContainsAny(k, "*?[") {
			patterns = append(patterns, k)
		}
	}
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})
	for _, p := range patterns {
		if ok, _ := path.Match(p, shapePath); ok && len(t[p]) > 0 {
			return t[p]
		}
	}

	if e, ok := t[Wildcard]; ok && len(e) > 0 {
		return e
	}
	return map[string]float64{Placeholder: 0}
}

func (t AlignTable) raw() map[string]any {
	out := make(map[string]any, len(t))
	for k, e := range t {
		m := make(map[string]any, len(e))
		for tmpl, w := range e {
			m[tmpl] = w
		}
		out[k] = m
	}
	return out
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}

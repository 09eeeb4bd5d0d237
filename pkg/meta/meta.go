package meta

import "fmt"

// Entry holds the accessible name and description of a shape.
type Entry struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Table maps canonical shape paths to their meta entries.
type Table map[string]Entry

// LoadMeta builds a Table from an inline mapping, a side-file path, or an
// existing Table. A missing file yields an empty table.
func LoadMeta(src any) (Table, error) {
	if t, ok := src.(Table); ok {
		out := make(Table, len(t))
		for k, e := range t {
			out[Key(k)] = e
		}
		return out, nil
	}

	raw, ok, err := load(src)
	if err != nil {
		return nil, err
	}
	table := Table{}
	if !ok {
		return table, nil
	}

	for key, value := range raw {
		m, ok := asMap(value)
		if !ok {
			continue
		}
		table[Key(key)] = Entry{
			Title:       text(m["title"]),
			Description: text(m["description"]),
		}
	}
	return table, nil
}

// Lookup returns the entry for a shape path.
func (t Table) Lookup(path string) (Entry, bool) {
	e, ok := t[path]
	return e, ok
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}

package io

import (
	"cmp"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

// ReadShape reads one shape document from r. name is the shape's relative
// path and determines its identifier. ReadShape does not close r.
func ReadShape(r io.Reader, name string) (shape.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return shape.Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", name)
	}
	return shape.Input{Path: filepath.ToSlash(name), Data: data}, nil
}

// ImportShape reads the file at path and names it name.
func ImportShape(path, name string) (shape.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return shape.Input{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadShape(f, name)
}

// ImportShapes reads every shape named by args. Glob patterns are expanded,
// directories are walked for .svg files. Inputs are returned in name order;
// the same file matched twice is read once. Distinct files sharing a name
// are all returned.
func ImportShapes(args []string) ([]shape.Input, error) {
	type source struct{ path, name string }
	var sources []source

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "pattern %s", arg)
		}
		if len(matches) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "no such file: %s", arg)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", m)
			}
			if !info.IsDir() {
				sources = append(sources, source{path: filepath.Clean(m), name: filepath.Base(m)})
				continue
			}
			err = filepath.WalkDir(m, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".svg") {
					return nil
				}
				rel, err := filepath.Rel(m, p)
				if err != nil {
					return err
				}
				sources = append(sources, source{path: p, name: rel})
				return nil
			})
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk %s", m)
			}
		}
	}

	slices.SortFunc(sources, func(a, b source) int {
		return cmp.Or(strings.Compare(a.name, b.name), strings.Compare(a.path, b.path))
	})
	sources = slices.Compact(sources)

	inputs := make([]shape.Input, 0, len(sources))
	for _, s := range sources {
		in, err := ImportShape(s.path, s.name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

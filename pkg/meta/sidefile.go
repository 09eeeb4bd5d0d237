package meta

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgsprite/pkg/errors"
)

// readSideFile resolves symbolic links and reads the target. The boolean
// result is false when the file does not exist.
func readSideFile(name string) ([]byte, string, bool, error) {
	fi, err := os.Lstat(name)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, name, false, nil
	}
	if err != nil {
		return nil, name, false, errors.Wrap(errors.ErrCodeSideFile, err, "stat %s", name)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(name)
		if err != nil {
			return nil, name, false, errors.Wrap(errors.ErrCodeSideFile, err, "resolve link %s", name)
		}
		if _, err := os.Stat(target); err != nil {
			return nil, name, false, errors.Wrap(errors.ErrCodeSideFile, err, "stat link target %s", target)
		}
		name = target
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, name, false, errors.Wrap(errors.ErrCodeSideFile, err, "read %s", name)
	}
	return data, name, true, nil
}

// parseSideFile decodes a side-file into a nested mapping. TOML is chosen
// by extension; everything else goes through the YAML decoder, which also
// accepts JSON.
func parseSideFile(name string, data []byte) (map[string]any, error) {
	out := map[string]any{}
	var err error
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		err = toml.Unmarshal(data, &out)
	} else {
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSideFile, err, "parse %s", name)
	}
	return out, nil
}

// load turns src into a mapping. A string is a side-file path; a mapping is
// used inline. The boolean result is false when there is nothing to load.
func load(src any) (map[string]any, bool, error) {
	switch v := src.(type) {
	case nil:
		return nil, false, nil
	case string:
		if v == "" {
			return nil, false, nil
		}
		data, name, ok, err := readSideFile(v)
		if err != nil || !ok {
			return nil, false, err
		}
		m, err := parseSideFile(name, data)
		return m, err == nil, err
	case map[string]any:
		return v, true, nil
	}
	return nil, false, nil
}

// Key canonicalizes a table key to the shape path form: directory joined
// with the file name stripped of its extension.
func Key(k string) string {
	k = filepath.ToSlash(strings.TrimSpace(k))
	if k == "*" {
		return k
	}
	base := path.Base(k)
	return path.Join(path.Dir(k), strings.TrimSuffix(base, path.Ext(base)))
}

// asMap normalizes the mapping types produced by the YAML and TOML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

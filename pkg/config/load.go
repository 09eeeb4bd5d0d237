package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgsprite/pkg/errors"
)

// Load reads a configuration file. ".toml" files are decoded as TOML,
// everything else as YAML (which includes JSON).
func Load(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Raw{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	raw, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Raw{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	dir := filepath.Dir(path)
	raw.Shape.Meta = relativeTo(dir, raw.Shape.Meta)
	raw.Shape.Align = relativeTo(dir, raw.Shape.Align)
	return raw, nil
}

// Parse decodes configuration data. ext selects the format.
func Parse(data []byte, ext string) (Raw, error) {
	var raw Raw
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return Raw{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Raw{}, err
		}
	}
	return raw, nil
}

// relativeTo anchors a relative side-file path at dir.
func relativeTo(dir string, src any) any {
	p, ok := src.(string)
	if !ok || p == "" || filepath.IsAbs(p) {
		return src
	}
	return filepath.Join(dir, p)
}

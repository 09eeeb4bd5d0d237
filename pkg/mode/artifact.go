package mode

import (
	"encoding/hex"
	"path"
	"strings"

	"github.com/zeebo/blake3"
)

// Kind classifies an artifact.
type Kind string

// Artifact kinds.
const (
	KindSprite     Kind = "sprite"
	KindStylesheet Kind = "stylesheet"
	KindExample    Kind = "example"
	KindTemplate   Kind = "template"
	KindShape      Kind = "shape"
)

// Artifact is one output file held in memory.
type Artifact struct {
	Mode Name
	Kind Kind
	// Path is slash-separated and relative to the compilation destination.
	Path   string
	Data   []byte
	Digest string
}

// NewArtifact builds an artifact and computes its digest.
func NewArtifact(mode Name, kind Kind, p string, data []byte) Artifact {
	return Artifact{Mode: mode, Kind: kind, Path: path.Clean(p), Data: data, Digest: Digest(data)}
}

// Digest returns the hex BLAKE3-256 of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// bust inserts a short digest before the extension of p.
// "svg/sprite.css.svg" becomes "svg/sprite.css-1a2b3c4d.svg".
func bust(p, digest string) string {
	ext := path.Ext(p)
	return strings.TrimSuffix(p, ext) + "-" + digest[:8] + ext
}

// relative returns target as seen from the directory holding from. Both
// are slash-separated paths relative to the same root.
func relative(from, target string) string {
	fromDir := strings.Split(path.Dir(path.Clean(from)), "/")
	to := strings.Split(path.Clean(target), "/")
	if fromDir[0] == "." {
		fromDir = nil
	}
	i := 0
	for i < len(fromDir) && i < len(to)-1 && fromDir[i] == to[i] {
		i++
	}
	parts := make([]string, 0, len(fromDir)-i+len(to)-i)
	for range fromDir[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[i:]...)
	return strings.Join(parts, "/")
}

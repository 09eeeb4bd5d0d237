package svg

// Settings are the document-level options shared by every sprite mode.
type Settings struct {
	XMLDeclaration      bool              `yaml:"xmlDeclaration" json:"xmlDeclaration"`
	DoctypeDeclaration  bool              `yaml:"doctypeDeclaration" json:"doctypeDeclaration"`
	NamespaceIDs        bool              `yaml:"namespaceIDs" json:"namespaceIDs"`
	NamespaceIDPrefix   string            `yaml:"namespaceIDPrefix" json:"namespaceIDPrefix"`
	NamespaceClassnames bool              `yaml:"namespaceClassnames" json:"namespaceClassnames"`
	DimensionAttributes bool              `yaml:"dimensionAttributes" json:"dimensionAttributes"`
	RootAttributes      map[string]string `yaml:"rootAttributes,omitempty" json:"rootAttributes,omitempty"`
	// Precision is the number of fractional digits kept in emitted
	// coordinates; -1 keeps full precision.
	Precision int `yaml:"precision" json:"precision"`
}

// DefaultSettings returns the document defaults.
func DefaultSettings() Settings {
	return Settings{
		XMLDeclaration:      true,
		DoctypeDeclaration:  true,
		NamespaceIDs:        true,
		NamespaceClassnames: true,
		DimensionAttributes: true,
		Precision:           -1,
	}
}

const (
	// XMLDeclaration is emitted when Settings.XMLDeclaration is set.
	XMLDeclaration = `<?xml version="1.0" encoding="utf-8"?>`
	// Doctype is emitted when Settings.DoctypeDeclaration is set.
	Doctype = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
)

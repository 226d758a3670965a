package manifest

// Entry kinds.
const (
	KindDir  = "dir"
	KindFile = "file"
)

// Layouts an entry can belong to. LayoutAny entries appear in every layout.
const (
	LayoutAny   = "any"
	LayoutFlat  = "flat"
	LayoutTests = "tests"
)

// CatalogManifest describes a template catalog.
type CatalogManifest struct {
	Name        string  `yaml:"name" json:"name"`
	Version     string  `yaml:"version" json:"version"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Entries     []Entry `yaml:"entries" json:"entries"`
}

// Entry is one directory or file of a generated project. Path is relative to
// the project root; "." names the root itself.
type Entry struct {
	ID          string `yaml:"id" json:"id"`
	Kind        string `yaml:"kind" json:"kind"`
	Path        string `yaml:"path" json:"path"`
	Template    string `yaml:"template,omitempty" json:"template,omitempty"` // empty: file is written empty
	Layout      string `yaml:"layout,omitempty" json:"layout,omitempty"`
	Scripts     bool   `yaml:"scripts,omitempty" json:"scripts,omitempty"` // platform-gated helper script
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// InLayout reports whether the entry belongs to layout.
func (e Entry) InLayout(layout string) bool {
	return e.Layout == "" || e.Layout == LayoutAny || e.Layout == layout
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

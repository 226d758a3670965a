package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/pyskel-labs/pyskel/internal/manifest"
)

//go:embed catalog.yaml templates
var catalogFS embed.FS

const (
	manifestFile = "catalog.yaml"
	templatesDir = "templates"
)

// ErrUnknownEntry is returned when an entry ID is not in the catalog.
var ErrUnknownEntry = errors.New("unknown catalog entry")

// Catalog is a validated manifest with its templates parsed.
type Catalog struct {
	manifest  *manifest.CatalogManifest
	index     map[string]int
	templates map[string]*template.Template // keyed by entry ID
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(catalogFS)
	})
	return defaultCatalog, defaultErr
}

// Load reads catalog.yaml from the root of fsys, validates it, checks its
// version and parses every template it references from templates/.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestFile, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifestFile, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid %s:\n  %s", manifestFile, strings.Join(msgs, "\n  "))
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := CheckVersion(m.Version); err != nil {
		return nil, err
	}

	c := &Catalog{
		manifest:  m,
		index:     make(map[string]int, len(m.Entries)),
		templates: make(map[string]*template.Template),
	}

	for i, e := range m.Entries {
		c.index[e.ID] = i
		if e.IsDir() || e.Template == "" {
			continue
		}

		tmplPath := path.Join(templatesDir, e.Template)
		src, err := fs.ReadFile(fsys, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}
		tmpl, err := template.New(e.Template).Option("missingkey=error").Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
		}
		c.templates[e.ID] = tmpl
	}

	return c, nil
}

// Name returns the catalog name from its manifest.
func (c *Catalog) Name() string { return c.manifest.Name }

// Version returns the catalog version from its manifest.
func (c *Catalog) Version() string { return c.manifest.Version }

// Entries returns the catalog entries in creation order.
func (c *Catalog) Entries() []manifest.Entry {
	out := make([]manifest.Entry, len(c.manifest.Entries))
	copy(out, c.manifest.Entries)
	return out
}

// Entry looks up an entry by ID.
func (c *Catalog) Entry(id string) (manifest.Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return manifest.Entry{}, false
	}
	return c.manifest.Entries[i], true
}

// Render produces the content of a file entry. Entries without a template
// render as the empty string.
func (c *Catalog) Render(id string, data Data) (string, error) {
	e, ok := c.Entry(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntry, id)
	}
	if e.IsDir() {
		return "", fmt.Errorf("entry %q is a directory and has no content", id)
	}

	tmpl, ok := c.templates[id]
	if !ok {
		return "", nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", e.Template, err)
	}
	return buf.String(), nil
}

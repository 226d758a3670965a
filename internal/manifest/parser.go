package manifest

import (
	"fmt"
	"os"
	"path"

	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without validating it.
func Parse(data []byte) (*CatalogManifest, error) {
	var m CatalogManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes a manifest file.
func ParseFile(p string) (*CatalogManifest, error) {
	data, err := readFile(p)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// CheckEntries verifies the rules the schema cannot: entry IDs are unique,
// the first entry is the project root, directories carry no template, and
// every entry's parent directory is declared by an earlier dir entry in a
// layout that includes it.
func CheckEntries(m *CatalogManifest) []ValidationIssue {
	var issues []ValidationIssue

	if len(m.Entries) == 0 || m.Entries[0].Path != "." || !m.Entries[0].IsDir() {
		issues = append(issues, ValidationIssue{
			Path:    "/entries/0",
			Message: "first entry must be the project root directory (path \".\")",
			Keyword: "order",
		})
	}

	seenIDs := make(map[string]bool)
	declared := make(map[string]Entry)
	for i, e := range m.Entries {
		loc := fmt.Sprintf("/entries/%d", i)

		if seenIDs[e.ID] {
			issues = append(issues, ValidationIssue{
				Path:    loc + "/id",
				Message: fmt.Sprintf("duplicate entry id %q", e.ID),
				Keyword: "unique",
			})
		}
		seenIDs[e.ID] = true

		if e.IsDir() && e.Template != "" {
			issues = append(issues, ValidationIssue{
				Path:    loc + "/template",
				Message: "directory entries cannot have a template",
				Keyword: "template",
			})
		}

		if e.Path != "." {
			parent := path.Dir(e.Path)
			dir, ok := declared[parent]
			switch {
			case !ok:
				issues = append(issues, ValidationIssue{
					Path:    loc + "/path",
					Message: fmt.Sprintf("parent directory %q is not declared before %q", parent, e.Path),
					Keyword: "order",
				})
			case !coversLayout(dir, e):
				issues = append(issues, ValidationIssue{
					Path:    loc + "/layout",
					Message: fmt.Sprintf("parent directory %q is not created in layout %q", parent, e.Layout),
					Keyword: "order",
				})
			}
		}

		if e.IsDir() {
			declared[e.Path] = e
		}
	}

	return issues
}

// coversLayout reports whether dir exists in every layout child appears in.
func coversLayout(dir, child Entry) bool {
	if dir.InLayout(LayoutFlat) && dir.InLayout(LayoutTests) {
		return true
	}
	return child.Layout != "" && child.Layout != LayoutAny && dir.InLayout(child.Layout)
}

func readFile(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}
	return data, nil
}

package plan

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pyskel-labs/pyskel/internal/catalog"
	"github.com/pyskel-labs/pyskel/internal/manifest"
	"github.com/pyskel-labs/pyskel/internal/platform"
)

// ErrEmptyName is returned by Build when the project name is empty.
var ErrEmptyName = errors.New("project name must not be empty")

// StepKind distinguishes directory steps from file steps.
type StepKind int

const (
	StepDir StepKind = iota
	StepFile
)

func (k StepKind) String() string {
	if k == StepDir {
		return "dir"
	}
	return "file"
}

// Step is one directory to ensure or one file to write.
type Step struct {
	Kind    StepKind
	EntryID string // catalog entry that produced the step
	RelPath string // slash-separated, relative to the project root
	Path    string // RelPath joined onto the project root
	Content string // file steps only
}

// Options tune a plan. Zero values fall back to the catalog defaults.
type Options struct {
	Layout       string // manifest.LayoutFlat (default) or manifest.LayoutTests
	ScriptsOS    string // OS family helper scripts are generated for; default windows
	VenvDir      string
	GitUserName  string
	GitUserEmail string
}

// Plan is the ordered set of steps for one project.
type Plan struct {
	ProjectName    string
	Root           string
	Steps          []Step
	ScriptsSkipped bool
	Notice         string // informational message when helper scripts were skipped
}

// Build renders the plan for name under parent. Helper-script entries are
// only included when detector reports opts.ScriptsOS.
func Build(cat *catalog.Catalog, parent, name string, opts Options, detector platform.Detector) (*Plan, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	layout := opts.Layout
	if layout == "" {
		layout = manifest.LayoutFlat
	}
	if layout != manifest.LayoutFlat && layout != manifest.LayoutTests {
		return nil, fmt.Errorf("unknown layout %q (want %q or %q)", layout, manifest.LayoutFlat, manifest.LayoutTests)
	}

	scriptsOS := opts.ScriptsOS
	if scriptsOS == "" {
		scriptsOS = platform.Windows
	}
	withScripts := platform.Matches(detector, scriptsOS)

	data := catalog.Data{
		ProjectName:  name,
		Layout:       layout,
		VenvDir:      opts.VenvDir,
		GitUserName:  opts.GitUserName,
		GitUserEmail: opts.GitUserEmail,
	}.WithDefaults()

	p := &Plan{
		ProjectName: name,
		Root:        filepath.Join(parent, name),
	}

	for _, e := range cat.Entries() {
		if !e.InLayout(layout) {
			continue
		}
		if e.Scripts && !withScripts {
			p.ScriptsSkipped = true
			continue
		}

		step := Step{
			EntryID: e.ID,
			RelPath: e.Path,
			Path:    p.resolve(e.Path),
		}
		if e.IsDir() {
			step.Kind = StepDir
		} else {
			content, err := cat.Render(e.ID, data)
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", e.Path, err)
			}
			step.Kind = StepFile
			step.Content = content
		}
		p.Steps = append(p.Steps, step)
	}

	if p.ScriptsSkipped {
		p.Notice = fmt.Sprintf("Batch file creation skipped (only supported on %s).", platform.DisplayName(scriptsOS))
	}
	return p, nil
}

func (p *Plan) resolve(rel string) string {
	if rel == "." {
		return p.Root
	}
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// Files returns the relative paths of all file steps, in order.
func (p *Plan) Files() []string {
	var out []string
	for _, s := range p.Steps {
		if s.Kind == StepFile {
			out = append(out, s.RelPath)
		}
	}
	return out
}

// Describe writes a human-readable listing of the plan without touching the
// filesystem.
func (p *Plan) Describe(w io.Writer) {
	fmt.Fprintf(w, "Plan for %s (%d steps):\n", p.Root, len(p.Steps))
	for _, s := range p.Steps {
		if s.Kind == StepDir {
			fmt.Fprintf(w, "  mkdir  %s\n", s.Path)
			continue
		}
		fmt.Fprintf(w, "  write  %s (%d bytes)\n", s.Path, len(s.Content))
	}
	if p.Notice != "" {
		fmt.Fprintf(w, "\n%s\n", p.Notice)
	}
}

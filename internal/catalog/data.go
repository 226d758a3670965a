package catalog

import (
	"unicode/utf8"

	"github.com/pyskel-labs/pyskel/internal/manifest"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults used when the caller leaves a Data field empty.
const (
	DefaultVenvDir      = ".venv"
	DefaultGitUserName  = "Your Name"
	DefaultGitUserEmail = "you@example.com"
)

// Data holds every variable available to catalog templates.
type Data struct {
	ProjectName  string // verbatim, e.g. "widget"
	Title        string // display title, e.g. "Widget"
	Layout       string // manifest.LayoutFlat or manifest.LayoutTests
	VenvDir      string // virtual environment directory, e.g. ".venv"
	GitUserName  string
	GitUserEmail string
}

// NewData creates Data for name with defaults filled in.
func NewData(name string) Data {
	return Data{
		ProjectName:  name,
		Title:        Capitalize(name),
		Layout:       manifest.LayoutFlat,
		VenvDir:      DefaultVenvDir,
		GitUserName:  DefaultGitUserName,
		GitUserEmail: DefaultGitUserEmail,
	}
}

// WithDefaults returns d with empty fields replaced by defaults.
func (d Data) WithDefaults() Data {
	def := NewData(d.ProjectName)
	if d.Title == "" {
		d.Title = def.Title
	}
	if d.Layout == "" {
		d.Layout = def.Layout
	}
	if d.VenvDir == "" {
		d.VenvDir = def.VenvDir
	}
	if d.GitUserName == "" {
		d.GitUserName = def.GitUserName
	}
	if d.GitUserEmail == "" {
		d.GitUserEmail = def.GitUserEmail
	}
	return d
}

// Capitalize title-cases the first rune of s and lower-cases the rest:
// "widget" → "Widget", "myAPP" → "Myapp", "ßeta" → "Sseta".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	// Casers carry state, so each call gets its own.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

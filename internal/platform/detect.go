package platform

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Known operating-system families, spelled the way runtime.GOOS spells them.
const (
	Windows = "windows"
	Linux   = "linux"
	Darwin  = "darwin"
)

// Detector reports the operating-system family.
type Detector interface {
	OS() string
}

type hostDetector struct{}

func (hostDetector) OS() string { return runtime.GOOS }

// Host returns a Detector backed by the running process.
func Host() Detector { return hostDetector{} }

type fixedDetector string

func (f fixedDetector) OS() string { return string(f) }

// Fixed returns a Detector that always reports os, normalized to lower case.
func Fixed(os string) Detector { return fixedDetector(Normalize(os)) }

// Normalize lower-cases and trims an OS name so "Windows " matches Windows.
func Normalize(os string) string {
	return strings.ToLower(strings.TrimSpace(os))
}

var displayNames = map[string]string{
	Windows: "Windows",
	Linux:   "Linux",
	Darwin:  "macOS",
}

// DisplayName returns the user-facing name of an OS family, e.g. "Windows"
// for "windows". Unknown families are title-cased.
func DisplayName(os string) string {
	os = Normalize(os)
	if name, ok := displayNames[os]; ok {
		return name
	}
	return cases.Title(language.Und).String(os)
}

// Matches reports whether d reports the target family.
func Matches(d Detector, target string) bool {
	return Normalize(d.OS()) == Normalize(target)
}

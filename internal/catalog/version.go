package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the range of catalog manifest versions this build
// can render.
const SupportedVersions = "^1.0.0"

// CheckVersion returns an error unless version satisfies SupportedVersions.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported range %q: %w", SupportedVersions, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing catalog version %q: %w", version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("catalog version %s is not supported (supported: %s)", version, SupportedVersions)
	}
	return nil
}

// pkg/pyversion/version.go
package pyversion

import (
	"errors"
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/snakeyard/pipkit/pkg/markers"
)

// ErrInvalidVersion indicates the Python version string could not be parsed
var ErrInvalidVersion = errors.New("invalid python version")

// PythonVersion is a user-supplied target Python version such as "3.9" or
// "3.9.2". It replaces the running interpreter's measured version when
// resolving for a foreign environment.
type PythonVersion struct {
	raw     string
	version *semver.Version
}

// Parse parses a Python version. Major-only and major.minor forms are
// accepted; missing components are treated as zero.
func Parse(s string) (PythonVersion, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return PythonVersion{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return PythonVersion{}, fmt.Errorf("%w: %q: pre-release and build segments are not supported", ErrInvalidVersion, s)
	}
	return PythonVersion{raw: s, version: v}, nil
}

// MustParse is Parse for static version strings; it panics on error.
func MustParse(s string) PythonVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the major version component
func (v PythonVersion) Major() int {
	return int(v.version.Major())
}

// Minor returns the minor version component
func (v PythonVersion) Minor() int {
	return int(v.version.Minor())
}

// Patch returns the patch version component, zero when not given
func (v PythonVersion) Patch() int {
	return int(v.version.Patch())
}

// String returns the version as originally written
func (v PythonVersion) String() string {
	return v.raw
}

// Markers layers the version markers on top of base: python_version becomes
// "major.minor" and python_full_version the full three-component version.
// Platform and implementation markers pass through untouched.
func (v PythonVersion) Markers(base markers.Environment) markers.Environment {
	env := base
	env.PythonVersion = fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	env.PythonFullVersion = fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	return env
}

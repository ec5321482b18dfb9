// pkg/platform/triple.go
package platform

import (
	"errors"
	"fmt"

	"github.com/snakeyard/pipkit/pkg/markers"
)

// ErrUnknownTriple indicates the target triple is not recognized
var ErrUnknownTriple = errors.New("unknown target triple")

// Triple is a user-supplied target platform. It replaces the running
// interpreter's measured platform when resolving for a foreign environment.
type Triple string

const (
	// TripleWindows is an alias for x86_64-pc-windows-msvc
	TripleWindows Triple = "windows"
	// TripleLinux is an alias for x86_64-unknown-linux-gnu
	TripleLinux Triple = "linux"
	// TripleMacOS is an alias for aarch64-apple-darwin
	TripleMacOS Triple = "macos"

	TripleX8664PcWindowsMsvc      Triple = "x86_64-pc-windows-msvc"
	TripleI686PcWindowsMsvc       Triple = "i686-pc-windows-msvc"
	TripleAarch64PcWindowsMsvc    Triple = "aarch64-pc-windows-msvc"
	TripleX8664UnknownLinuxGnu    Triple = "x86_64-unknown-linux-gnu"
	TripleAarch64UnknownLinuxGnu  Triple = "aarch64-unknown-linux-gnu"
	TripleX8664UnknownLinuxMusl   Triple = "x86_64-unknown-linux-musl"
	TripleAarch64UnknownLinuxMusl Triple = "aarch64-unknown-linux-musl"
	TripleX8664AppleDarwin        Triple = "x86_64-apple-darwin"
	TripleAarch64AppleDarwin      Triple = "aarch64-apple-darwin"
)

// triples maps every accepted spelling to its canonical form
var triples = map[Triple]Triple{
	TripleWindows:                 TripleX8664PcWindowsMsvc,
	TripleLinux:                   TripleX8664UnknownLinuxGnu,
	TripleMacOS:                   TripleAarch64AppleDarwin,
	TripleX8664PcWindowsMsvc:      TripleX8664PcWindowsMsvc,
	TripleI686PcWindowsMsvc:       TripleI686PcWindowsMsvc,
	TripleAarch64PcWindowsMsvc:    TripleAarch64PcWindowsMsvc,
	TripleX8664UnknownLinuxGnu:    TripleX8664UnknownLinuxGnu,
	TripleAarch64UnknownLinuxGnu:  TripleAarch64UnknownLinuxGnu,
	TripleX8664UnknownLinuxMusl:   TripleX8664UnknownLinuxMusl,
	TripleAarch64UnknownLinuxMusl: TripleAarch64UnknownLinuxMusl,
	TripleX8664AppleDarwin:        TripleX8664AppleDarwin,
	TripleAarch64AppleDarwin:      TripleAarch64AppleDarwin,
}

// ParseTriple parses a target triple or one of its aliases
// (linux, macos, windows)
func ParseTriple(s string) (Triple, error) {
	canonical, ok := triples[Triple(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTriple, s)
	}
	return canonical, nil
}

// Canonical resolves aliases to their explicit triple
func (t Triple) Canonical() Triple {
	if canonical, ok := triples[t]; ok {
		return canonical
	}
	return t
}

// Platform returns the platform descriptor for the triple.
// Linux glibc triples assume a manylinux_2_17 baseline; musl triples
// assume musllinux_1_2; macOS triples assume the oldest supported
// deployment target for their architecture.
func (t Triple) Platform() Platform {
	switch t.Canonical() {
	case TripleX8664PcWindowsMsvc:
		return Platform{OS: OSWindows, Arch: "x86_64"}
	case TripleI686PcWindowsMsvc:
		return Platform{OS: OSWindows, Arch: "i686"}
	case TripleAarch64PcWindowsMsvc:
		return Platform{OS: OSWindows, Arch: "aarch64"}
	case TripleX8664UnknownLinuxGnu:
		return Platform{OS: OSLinux, Arch: "x86_64", LibC: LibCGnu, GlibcMajor: 2, GlibcMinor: 17}
	case TripleAarch64UnknownLinuxGnu:
		return Platform{OS: OSLinux, Arch: "aarch64", LibC: LibCGnu, GlibcMajor: 2, GlibcMinor: 17}
	case TripleX8664UnknownLinuxMusl:
		return Platform{OS: OSLinux, Arch: "x86_64", LibC: LibCMusl, MuslMajor: 1, MuslMinor: 2}
	case TripleAarch64UnknownLinuxMusl:
		return Platform{OS: OSLinux, Arch: "aarch64", LibC: LibCMusl, MuslMajor: 1, MuslMinor: 2}
	case TripleX8664AppleDarwin:
		return Platform{OS: OSDarwin, Arch: "x86_64", MacOSMajor: 10, MacOSMinor: 12}
	case TripleAarch64AppleDarwin:
		return Platform{OS: OSDarwin, Arch: "aarch64", MacOSMajor: 11, MacOSMinor: 0}
	}
	return Platform{}
}

// ManylinuxCompatible reports whether the target accepts manylinux
// platform tags: only glibc Linux targets do. Musl targets use musllinux
// tags instead.
func (t Triple) ManylinuxCompatible() bool {
	p := t.Platform()
	return p.OS == OSLinux && p.LibC == LibCGnu
}

// Markers layers the triple's platform markers on top of base. The Python
// version and implementation markers pass through untouched. Kernel release
// and version are unknowable for a foreign target and are cleared.
func (t Triple) Markers(base markers.Environment) markers.Environment {
	return t.Platform().Markers(base)
}

func darwinMachine(arch string) string {
	if arch == "aarch64" {
		return "arm64"
	}
	return arch
}

func windowsMachine(arch string) string {
	switch arch {
	case "x86_64":
		return "AMD64"
	case "aarch64":
		return "ARM64"
	case "i686":
		return "x86"
	}
	return arch
}

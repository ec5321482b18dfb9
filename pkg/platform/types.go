// pkg/platform/types.go
package platform

import "fmt"

// OS identifies an operating system family
type OS string

const (
	// OSLinux is any Linux distribution
	OSLinux OS = "linux"
	// OSDarwin is macOS
	OSDarwin OS = "darwin"
	// OSWindows is Windows
	OSWindows OS = "windows"
)

// LibC identifies the C library a Linux target links against
type LibC string

const (
	// LibCGnu is glibc
	LibCGnu LibC = "gnu"
	// LibCMusl is musl
	LibCMusl LibC = "musl"
	// LibCNone applies to non-Linux targets
	LibCNone LibC = ""
)

// Platform describes an OS/architecture combination precisely enough to
// generate wheel platform tags for it
type Platform struct {
	OS   OS     `yaml:"os"`
	Arch string `yaml:"arch"` // x86_64, aarch64, i686

	// Linux only
	LibC       LibC `yaml:"libc,omitempty"`
	GlibcMajor int  `yaml:"glibc_major,omitempty"`
	GlibcMinor int  `yaml:"glibc_minor,omitempty"`
	MuslMajor  int  `yaml:"musl_major,omitempty"`
	MuslMinor  int  `yaml:"musl_minor,omitempty"`

	// macOS only
	MacOSMajor int `yaml:"macos_major,omitempty"`
	MacOSMinor int `yaml:"macos_minor,omitempty"`
}

// String returns a string representation of the platform
func (p Platform) String() string {
	if p.OS == OSLinux && p.LibC != LibCNone {
		return fmt.Sprintf("%s-%s-%s", p.OS, p.Arch, p.LibC)
	}
	return fmt.Sprintf("%s-%s", p.OS, p.Arch)
}

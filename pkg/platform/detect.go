// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Detect returns a best-effort platform descriptor for the host this
// process runs on. It is a convenience for the CLI; resolution itself only
// ever consumes platforms recorded in an interpreter snapshot or derived
// from a target triple.
func Detect() (Platform, error) {
	arch, err := detectArch(runtime.GOARCH)
	if err != nil {
		return Platform{}, err
	}

	switch runtime.GOOS {
	case "linux":
		// Assume a glibc distribution at the manylinux_2_17 baseline;
		// a snapshot from the real interpreter is authoritative.
		return Platform{OS: OSLinux, Arch: arch, LibC: LibCGnu, GlibcMajor: 2, GlibcMinor: 17}, nil
	case "darwin":
		if arch == "aarch64" {
			return Platform{OS: OSDarwin, Arch: arch, MacOSMajor: 11, MacOSMinor: 0}, nil
		}
		return Platform{OS: OSDarwin, Arch: arch, MacOSMajor: 10, MacOSMinor: 12}, nil
	case "windows":
		return Platform{OS: OSWindows, Arch: arch}, nil
	default:
		return Platform{}, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func detectArch(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "x86_64", nil
	case "arm64":
		return "aarch64", nil
	case "386":
		return "i686", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

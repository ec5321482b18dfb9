// pkg/tags/generate.go
package tags

import (
	"fmt"

	"github.com/snakeyard/pipkit/pkg/platform"
)

// FromEnv generates the ordered compatibility tag list for an environment.
//
// plat and the python version may come from user overrides; the
// implementation identity and GIL flag always describe the real interpreter
// the resolution is performed for. manylinuxCompatible gates the manylinux
// platform tag series; gilDisabled selects the free-threaded ABI and rules
// out abi3.
func FromEnv(
	plat platform.Platform,
	pythonMajor, pythonMinor int,
	implementationName string,
	implementationMajor, implementationMinor int,
	manylinuxCompatible bool,
	gilDisabled bool,
) (*Tags, error) {
	platforms, err := platformTags(plat, manylinuxCompatible)
	if err != nil {
		return nil, err
	}

	var list []Tag
	var interpreter string

	switch implementationName {
	case "cpython":
		interpreter = fmt.Sprintf("cp%d%d", pythonMajor, pythonMinor)
		abi := interpreter
		if gilDisabled {
			abi += "t"
		}
		for _, p := range platforms {
			list = append(list, Tag{interpreter, abi, p})
		}
		// Stable-ABI wheels; not available on free-threaded builds.
		if !gilDisabled && pythonMajor == 3 {
			for minor := pythonMinor; minor >= 2; minor-- {
				for _, p := range platforms {
					list = append(list, Tag{fmt.Sprintf("cp3%d", minor), "abi3", p})
				}
			}
		}
		for _, p := range platforms {
			list = append(list, Tag{interpreter, "none", p})
		}
	case "pypy":
		interpreter = fmt.Sprintf("pp%d%d", pythonMajor, pythonMinor)
		abi := fmt.Sprintf("pypy%d%d_pp%d%d", pythonMajor, pythonMinor, implementationMajor, implementationMinor)
		for _, p := range platforms {
			list = append(list, Tag{interpreter, abi, p})
		}
		for _, p := range platforms {
			list = append(list, Tag{interpreter, "none", p})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImplementation, implementationName)
	}

	// Implementation-independent fallbacks.
	versioned := fmt.Sprintf("py%d%d", pythonMajor, pythonMinor)
	generic := fmt.Sprintf("py%d", pythonMajor)
	for _, p := range platforms {
		list = append(list, Tag{versioned, "none", p})
	}
	for _, p := range platforms {
		list = append(list, Tag{generic, "none", p})
	}
	list = append(list, Tag{interpreter, "none", "any"})
	list = append(list, Tag{versioned, "none", "any"})
	list = append(list, Tag{generic, "none", "any"})
	for minor := pythonMinor - 1; minor >= 0; minor-- {
		list = append(list, Tag{fmt.Sprintf("py%d%d", pythonMajor, minor), "none", "any"})
	}

	return New(list), nil
}

// platformTags expands a platform descriptor into its tag series, most
// specific first.
func platformTags(plat platform.Platform, manylinuxCompatible bool) ([]string, error) {
	if plat.Arch == "" {
		return nil, fmt.Errorf("%w: missing architecture", ErrUnsupportedPlatform)
	}

	switch plat.OS {
	case platform.OSLinux:
		return linuxTags(plat, manylinuxCompatible), nil
	case platform.OSDarwin:
		return darwinTags(plat), nil
	case platform.OSWindows:
		return windowsTags(plat)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, plat)
}

func linuxTags(plat platform.Platform, manylinuxCompatible bool) []string {
	var out []string
	switch plat.LibC {
	case platform.LibCGnu:
		// manylinux_2_17 (manylinux2014) is the floor; older glibc gets
		// only the vendor-specific linux tag.
		if manylinuxCompatible && plat.GlibcMajor == 2 {
			for minor := plat.GlibcMinor; minor >= 17; minor-- {
				out = append(out, fmt.Sprintf("manylinux_2_%d_%s", minor, plat.Arch))
			}
			if plat.GlibcMinor >= 17 {
				out = append(out, fmt.Sprintf("manylinux2014_%s", plat.Arch))
			}
		}
	case platform.LibCMusl:
		if plat.MuslMajor == 1 {
			for minor := plat.MuslMinor; minor >= 1; minor-- {
				out = append(out, fmt.Sprintf("musllinux_1_%d_%s", minor, plat.Arch))
			}
		}
	}
	return append(out, fmt.Sprintf("linux_%s", plat.Arch))
}

func darwinTags(plat platform.Platform) []string {
	arch := plat.Arch
	if arch == "aarch64" {
		arch = "arm64"
	}

	var out []string
	// Big Sur and later bump the major version per release.
	for major := plat.MacOSMajor; major >= 11; major-- {
		out = append(out, fmt.Sprintf("macosx_%d_0_%s", major, arch))
		out = append(out, fmt.Sprintf("macosx_%d_0_universal2", major))
	}
	// Intel builds remain compatible with the 10.x series.
	if arch == "x86_64" {
		start := plat.MacOSMinor
		if plat.MacOSMajor >= 11 {
			start = 15
		}
		for minor := start; minor >= 4; minor-- {
			out = append(out, fmt.Sprintf("macosx_10_%d_x86_64", minor))
			out = append(out, fmt.Sprintf("macosx_10_%d_universal2", minor))
		}
	}
	return out
}

func windowsTags(plat platform.Platform) ([]string, error) {
	switch plat.Arch {
	case "x86_64":
		return []string{"win_amd64"}, nil
	case "i686":
		return []string{"win32"}, nil
	case "aarch64":
		return []string{"win_arm64"}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, plat)
}

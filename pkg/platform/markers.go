// pkg/platform/markers.go
package platform

import "github.com/snakeyard/pipkit/pkg/markers"

// Markers layers the platform's markers on top of base. Kernel release and
// version are unknowable for a foreign platform and are cleared.
func (p Platform) Markers(base markers.Environment) markers.Environment {
	env := base
	env.PlatformRelease = ""
	env.PlatformVersion = ""

	switch p.OS {
	case OSLinux:
		env.OSName = "posix"
		env.PlatformMachine = p.Arch
		env.PlatformSystem = "Linux"
		env.SysPlatform = "linux"
	case OSDarwin:
		env.OSName = "posix"
		env.PlatformMachine = darwinMachine(p.Arch)
		env.PlatformSystem = "Darwin"
		env.SysPlatform = "darwin"
	case OSWindows:
		env.OSName = "nt"
		env.PlatformMachine = windowsMachine(p.Arch)
		env.PlatformSystem = "Windows"
		env.SysPlatform = "win32"
	}
	return env
}

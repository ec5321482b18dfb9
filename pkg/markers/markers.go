// pkg/markers/markers.go
package markers

import "fmt"

// Environment holds the PEP 508 marker variables for a target environment.
// Dependency conditions like `sys_platform == "linux"` are evaluated against
// these values.
//
// An Environment is a plain value: layering an override produces a new copy,
// the original is never mutated. This makes it safe to share one Environment
// across any number of concurrent readers.
type Environment struct {
	ImplementationName           string `yaml:"implementation_name"`
	ImplementationVersion        string `yaml:"implementation_version"`
	OSName                       string `yaml:"os_name"`
	PlatformMachine              string `yaml:"platform_machine"`
	PlatformPythonImplementation string `yaml:"platform_python_implementation"`
	PlatformRelease              string `yaml:"platform_release"`
	PlatformSystem               string `yaml:"platform_system"`
	PlatformVersion              string `yaml:"platform_version"`
	PythonFullVersion            string `yaml:"python_full_version"`
	PythonVersion                string `yaml:"python_version"`
	SysPlatform                  string `yaml:"sys_platform"`
}

// Get returns the value of a marker variable by its PEP 508 name.
// Unknown names return ok=false.
func (e Environment) Get(name string) (string, bool) {
	switch name {
	case "implementation_name":
		return e.ImplementationName, true
	case "implementation_version":
		return e.ImplementationVersion, true
	case "os_name":
		return e.OSName, true
	case "platform_machine":
		return e.PlatformMachine, true
	case "platform_python_implementation":
		return e.PlatformPythonImplementation, true
	case "platform_release":
		return e.PlatformRelease, true
	case "platform_system":
		return e.PlatformSystem, true
	case "platform_version":
		return e.PlatformVersion, true
	case "python_full_version":
		return e.PythonFullVersion, true
	case "python_version":
		return e.PythonVersion, true
	case "sys_platform":
		return e.SysPlatform, true
	}
	return "", false
}

// Names lists the marker variable names in a stable order.
func Names() []string {
	return []string{
		"implementation_name",
		"implementation_version",
		"os_name",
		"platform_machine",
		"platform_python_implementation",
		"platform_release",
		"platform_system",
		"platform_version",
		"python_full_version",
		"python_version",
		"sys_platform",
	}
}

// String renders the environment as one marker per line, for display.
func (e Environment) String() string {
	var out string
	for _, name := range Names() {
		value, _ := e.Get(name)
		out += fmt.Sprintf("%s == %q\n", name, value)
	}
	return out
}

// pipkit.go
package pipkit

import (
	"github.com/snakeyard/pipkit/pkg/interpreter"
	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/platform"
	"github.com/snakeyard/pipkit/pkg/pyversion"
	"github.com/snakeyard/pipkit/pkg/resolution"
	"github.com/snakeyard/pipkit/pkg/sysconfig"
	"github.com/snakeyard/pipkit/pkg/tags"
)

// Re-export core types for convenience
type (
	Tag               = tags.Tag
	Tags              = tags.Tags
	MarkerEnvironment = markers.Environment
	Interpreter       = interpreter.Interpreter
	Snapshot          = interpreter.Snapshot
	PythonVersion     = pyversion.PythonVersion
	Platform          = platform.Platform
	Triple            = platform.Triple
	ReplacementMode   = sysconfig.ReplacementMode
	ReplacementEntry  = sysconfig.ReplacementEntry
	SysconfigRules    = sysconfig.Rules
)

// Re-export target triple aliases
const (
	TripleLinux   = platform.TripleLinux
	TripleMacOS   = platform.TripleMacOS
	TripleWindows = platform.TripleWindows
)

// Re-export sysconfig replacement modes
const (
	ModeFull    = sysconfig.ModeFull
	ModePartial = sysconfig.ModePartial
)

// NewInterpreter builds interpreter facts from a snapshot
func NewInterpreter(snap *Snapshot) (*Interpreter, error) {
	return interpreter.New(snap)
}

// LoadSnapshot reads an interpreter snapshot from a YAML file
func LoadSnapshot(path string) (*Snapshot, error) {
	return interpreter.LoadSnapshot(path)
}

// ParsePythonVersion parses a target Python version like "3.9" or "3.9.2"
func ParsePythonVersion(s string) (PythonVersion, error) {
	return pyversion.Parse(s)
}

// ParseTriple parses a target platform triple or one of its aliases
func ParseTriple(s string) (Triple, error) {
	return platform.ParseTriple(s)
}

// ResolutionTags resolves the ordered compatibility tag list for a target
// environment. Nil overrides fall back to the interpreter's own facts.
func ResolutionTags(version *PythonVersion, triple *Triple, interp *Interpreter) (*Tags, error) {
	return resolution.Tags(version, triple, interp)
}

// ResolutionMarkers resolves the marker environment for a target environment
func ResolutionMarkers(version *PythonVersion, triple *Triple, interp *Interpreter) MarkerEnvironment {
	return resolution.Markers(version, triple, interp)
}

// ResolutionEnvironment resolves tags and markers together
func ResolutionEnvironment(version *PythonVersion, triple *Triple, interp *Interpreter) (*Tags, MarkerEnvironment, error) {
	return resolution.Environment(version, triple, interp)
}

// DefaultSysconfigRules returns the built-in sysconfig replacement table
func DefaultSysconfigRules() SysconfigRules {
	return sysconfig.DefaultRules
}

// pkg/resolution/resolver.go

// Package resolution computes the compatibility view of a target Python
// environment: the ordered wheel tag list used to rank candidate artifacts
// and the marker environment used to evaluate conditional dependencies.
//
// The target is the running interpreter by default. A target Python version
// and a target platform triple may each independently override the
// corresponding interpreter fact; the implementation identity and GIL flag
// always come from the interpreter. All functions are pure and safe for
// unbounded concurrent use.
package resolution

import (
	"github.com/snakeyard/pipkit/pkg/interpreter"
	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/platform"
	"github.com/snakeyard/pipkit/pkg/pyversion"
	"github.com/snakeyard/pipkit/pkg/tags"
)

// overrides enumerates the four override combinations. Classifying the two
// optionals once, and switching on the result in each resolver, keeps the
// tag and marker dispatch structurally identical.
type overrides int

const (
	overrideNone overrides = iota
	overrideVersion
	overridePlatform
	overrideBoth
)

func classify(version *pyversion.PythonVersion, triple *platform.Triple) overrides {
	switch {
	case version != nil && triple != nil:
		return overrideBoth
	case version != nil:
		return overrideVersion
	case triple != nil:
		return overridePlatform
	}
	return overrideNone
}

// Tags resolves the ordered compatibility tag list for the target
// environment. A nil version and triple mean "the interpreter itself", in
// which case the interpreter's own cached tag list is returned as-is.
//
// Errors surface only from tag generation, when the requested platform,
// version and implementation combination admits no valid tag set.
func Tags(version *pyversion.PythonVersion, triple *platform.Triple, interp *interpreter.Interpreter) (*tags.Tags, error) {
	implementationName := interp.ImplementationName()
	implementationMajor, implementationMinor := interp.ImplementationTuple()

	switch classify(version, triple) {
	case overrideBoth:
		return tags.FromEnv(
			triple.Platform(),
			version.Major(), version.Minor(),
			implementationName,
			implementationMajor, implementationMinor,
			triple.ManylinuxCompatible(),
			interp.GilDisabled(),
		)
	case overridePlatform:
		pythonMajor, pythonMinor := interp.PythonTuple()
		return tags.FromEnv(
			triple.Platform(),
			pythonMajor, pythonMinor,
			implementationName,
			implementationMajor, implementationMinor,
			triple.ManylinuxCompatible(),
			interp.GilDisabled(),
		)
	case overrideVersion:
		return tags.FromEnv(
			interp.Platform(),
			version.Major(), version.Minor(),
			implementationName,
			implementationMajor, implementationMinor,
			interp.ManylinuxCompatible(),
			interp.GilDisabled(),
		)
	default:
		return interp.Tags()
	}
}

// Markers resolves the marker environment for the target environment. Each
// override layers its own fields on top of the interpreter's measured
// markers; with no overrides the interpreter's own environment is returned
// unchanged. Markers cannot fail.
func Markers(version *pyversion.PythonVersion, triple *platform.Triple, interp *interpreter.Interpreter) markers.Environment {
	switch classify(version, triple) {
	case overrideBoth:
		return version.Markers(triple.Markers(interp.Markers()))
	case overridePlatform:
		return triple.Markers(interp.Markers())
	case overrideVersion:
		return version.Markers(interp.Markers())
	default:
		return interp.Markers()
	}
}

// Environment resolves tags and markers together. It is exactly the product
// of Tags and Markers; call sites needing both use this form so the two
// views cannot drift apart.
func Environment(version *pyversion.PythonVersion, triple *platform.Triple, interp *interpreter.Interpreter) (*tags.Tags, markers.Environment, error) {
	resolved, err := Tags(version, triple, interp)
	if err != nil {
		return nil, markers.Environment{}, err
	}
	return resolved, Markers(version, triple, interp), nil
}

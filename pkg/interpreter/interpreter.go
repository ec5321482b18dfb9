// pkg/interpreter/interpreter.go
package interpreter

import (
	"fmt"
	"sync"

	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/platform"
	"github.com/snakeyard/pipkit/pkg/pyversion"
	"github.com/snakeyard/pipkit/pkg/tags"
)

// Interpreter holds the measured facts about one Python interpreter. It is
// immutable after construction; every accessor is safe to call from any
// number of goroutines.
//
// The default tag list is computed at most once and the same value is
// handed to every caller, so resolution without overrides is guaranteed to
// see the interpreter's own view of itself, not a reconstruction.
type Interpreter struct {
	platform            platform.Platform
	pythonMajor         int
	pythonMinor         int
	implementationName  string
	implementationMajor int
	implementationMinor int
	manylinuxCompatible bool
	gilDisabled         bool
	markers             markers.Environment

	tagsOnce func() (*tags.Tags, error)
}

// New builds an Interpreter from a snapshot
func New(snap *Snapshot) (*Interpreter, error) {
	if snap.ImplementationName == "" {
		return nil, fmt.Errorf("snapshot missing implementation_name")
	}

	python, err := pyversion.Parse(snap.PythonVersion)
	if err != nil {
		return nil, fmt.Errorf("snapshot python_version: %w", err)
	}

	implementation := python
	if snap.ImplementationVersion != "" {
		implementation, err = pyversion.Parse(snap.ImplementationVersion)
		if err != nil {
			return nil, fmt.Errorf("snapshot implementation_version: %w", err)
		}
	}

	interp := &Interpreter{
		platform:            snap.Platform,
		pythonMajor:         python.Major(),
		pythonMinor:         python.Minor(),
		implementationName:  snap.ImplementationName,
		implementationMajor: implementation.Major(),
		implementationMinor: implementation.Minor(),
		manylinuxCompatible: manylinuxDefault(snap),
		gilDisabled:         snap.GilDisabled,
	}

	if snap.Markers != nil {
		interp.markers = *snap.Markers
	} else {
		interp.markers = deriveMarkers(snap.Platform, python, implementation, snap.ImplementationName)
	}

	interp.tagsOnce = sync.OnceValues(func() (*tags.Tags, error) {
		return tags.FromEnv(
			interp.platform,
			interp.pythonMajor, interp.pythonMinor,
			interp.implementationName,
			interp.implementationMajor, interp.implementationMinor,
			interp.manylinuxCompatible,
			interp.gilDisabled,
		)
	})
	return interp, nil
}

// manylinuxDefault honors an explicit snapshot value and otherwise assumes
// glibc Linux hosts accept manylinux wheels.
func manylinuxDefault(snap *Snapshot) bool {
	if snap.ManylinuxCompatible != nil {
		return *snap.ManylinuxCompatible
	}
	return snap.Platform.OS == platform.OSLinux && snap.Platform.LibC == platform.LibCGnu
}

// deriveMarkers reconstructs the marker environment from the other facts
// when the snapshot does not carry one.
func deriveMarkers(plat platform.Platform, python, implementation pyversion.PythonVersion, name string) markers.Environment {
	env := plat.Markers(markers.Environment{})
	env = python.Markers(env)
	env.ImplementationName = name
	env.ImplementationVersion = fmt.Sprintf("%d.%d.%d", implementation.Major(), implementation.Minor(), implementation.Patch())
	env.PlatformPythonImplementation = implementationTitle(name)
	return env
}

func implementationTitle(name string) string {
	switch name {
	case "cpython":
		return "CPython"
	case "pypy":
		return "PyPy"
	case "graalpy":
		return "GraalVM"
	}
	return name
}

// Platform returns the interpreter's measured platform
func (i *Interpreter) Platform() platform.Platform {
	return i.platform
}

// PythonTuple returns the interpreter's own (major, minor) version
func (i *Interpreter) PythonTuple() (int, int) {
	return i.pythonMajor, i.pythonMinor
}

// ImplementationName returns the lowercase implementation identifier,
// e.g. "cpython"
func (i *Interpreter) ImplementationName() string {
	return i.implementationName
}

// ImplementationTuple returns the implementation's (major, minor) version.
// For CPython this equals PythonTuple; for PyPy it is the PyPy release.
func (i *Interpreter) ImplementationTuple() (int, int) {
	return i.implementationMajor, i.implementationMinor
}

// ManylinuxCompatible reports whether the host accepts manylinux wheels
func (i *Interpreter) ManylinuxCompatible() bool {
	return i.manylinuxCompatible
}

// GilDisabled reports whether the interpreter is a free-threaded build
func (i *Interpreter) GilDisabled() bool {
	return i.gilDisabled
}

// Markers returns the interpreter's own marker environment
func (i *Interpreter) Markers() markers.Environment {
	return i.markers
}

// Tags returns the interpreter's own compatibility tag list. The list is
// computed once; every call returns the identical value.
func (i *Interpreter) Tags() (*tags.Tags, error) {
	return i.tagsOnce()
}

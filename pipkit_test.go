// pipkit_test.go
package pipkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeyard/pipkit"
)

func TestResolutionRoundTrip(t *testing.T) {
	interp, err := pipkit.NewInterpreter(&pipkit.Snapshot{
		Platform: pipkit.Platform{
			OS: "linux", Arch: "x86_64",
			LibC: "gnu", GlibcMajor: 2, GlibcMinor: 31,
		},
		PythonVersion:      "3.12.1",
		ImplementationName: "cpython",
	})
	require.NoError(t, err)

	version, err := pipkit.ParsePythonVersion("3.10")
	require.NoError(t, err)
	triple, err := pipkit.ParseTriple("macos")
	require.NoError(t, err)

	resolvedTags, resolvedMarkers, err := pipkit.ResolutionEnvironment(&version, &triple, interp)
	require.NoError(t, err)

	assert.Equal(t, "cp310-cp310-macosx_11_0_arm64", resolvedTags.List()[0].String())
	assert.Equal(t, "3.10", resolvedMarkers.PythonVersion)
	assert.Equal(t, "darwin", resolvedMarkers.SysPlatform)
}

func TestParseErrors(t *testing.T) {
	_, err := pipkit.ParsePythonVersion("not-a-version")
	assert.ErrorIs(t, err, pipkit.ErrInvalidVersion)

	_, err = pipkit.ParseTriple("amiga")
	assert.ErrorIs(t, err, pipkit.ErrUnknownTriple)
}

func TestErrorWrapping(t *testing.T) {
	wrapped := &pipkit.Error{Op: "resolving tags", Target: "on wasm32", Err: pipkit.ErrUnsupportedPlatform}
	assert.Equal(t, "resolving tags on wasm32: unsupported platform", wrapped.Error())
	assert.True(t, errors.Is(wrapped, pipkit.ErrUnsupportedPlatform))

	bare := &pipkit.Error{Op: "resolving tags", Err: pipkit.ErrUnsupportedPlatform}
	assert.Equal(t, "resolving tags: unsupported platform", bare.Error())
}

func TestDefaultSysconfigRules(t *testing.T) {
	rules := pipkit.DefaultSysconfigRules()
	assert.Equal(t, "cc -pthread", rules.PatchValue("CC", "clang -pthread"))
}

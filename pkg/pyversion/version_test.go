// pkg/pyversion/version_test.go
package pyversion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/pyversion"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		major   int
		minor   int
		patch   int
		wantErr bool
	}{
		{input: "3.9", major: 3, minor: 9},
		{input: "3.9.2", major: 3, minor: 9, patch: 2},
		{input: "3.13", major: 3, minor: 13},
		{input: "3", major: 3},
		{input: "3.12.0", major: 3, minor: 12},
		{input: "", wantErr: true},
		{input: "python3.9", wantErr: true},
		{input: "3.9.2rc1", wantErr: true},
		{input: "3.9.2-rc1", wantErr: true},
		{input: "3.9.2+local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := pyversion.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, pyversion.ErrInvalidVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.major, v.Major())
			assert.Equal(t, tt.minor, v.Minor())
			assert.Equal(t, tt.patch, v.Patch())
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestMarkers(t *testing.T) {
	base := markers.Environment{
		ImplementationName:           "cpython",
		ImplementationVersion:        "3.11.4",
		OSName:                       "posix",
		PlatformMachine:              "x86_64",
		PlatformPythonImplementation: "CPython",
		PlatformSystem:               "Linux",
		PythonFullVersion:            "3.11.4",
		PythonVersion:                "3.11",
		SysPlatform:                  "linux",
	}

	env := pyversion.MustParse("3.9").Markers(base)

	assert.Equal(t, "3.9", env.PythonVersion)
	assert.Equal(t, "3.9.0", env.PythonFullVersion)

	// Only the version markers change.
	assert.Equal(t, base.ImplementationName, env.ImplementationName)
	assert.Equal(t, base.ImplementationVersion, env.ImplementationVersion)
	assert.Equal(t, base.PlatformMachine, env.PlatformMachine)
	assert.Equal(t, base.SysPlatform, env.SysPlatform)

	// The base is untouched.
	assert.Equal(t, "3.11", base.PythonVersion)
}

func TestMarkersPatchVersion(t *testing.T) {
	env := pyversion.MustParse("3.9.2").Markers(markers.Environment{})
	assert.Equal(t, "3.9", env.PythonVersion)
	assert.Equal(t, "3.9.2", env.PythonFullVersion)
}

// pkg/platform/triple_test.go
package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/platform"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		input   string
		want    platform.Triple
		wantErr bool
	}{
		{input: "linux", want: platform.TripleX8664UnknownLinuxGnu},
		{input: "macos", want: platform.TripleAarch64AppleDarwin},
		{input: "windows", want: platform.TripleX8664PcWindowsMsvc},
		{input: "x86_64-unknown-linux-gnu", want: platform.TripleX8664UnknownLinuxGnu},
		{input: "aarch64-unknown-linux-musl", want: platform.TripleAarch64UnknownLinuxMusl},
		{input: "x86_64-apple-darwin", want: platform.TripleX8664AppleDarwin},
		{input: "i686-pc-windows-msvc", want: platform.TripleI686PcWindowsMsvc},
		{input: "riscv64-unknown-linux-gnu", wantErr: true},
		{input: "Linux", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := platform.ParseTriple(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, platform.ErrUnknownTriple)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriplePlatform(t *testing.T) {
	linux := platform.TripleX8664UnknownLinuxGnu.Platform()
	assert.Equal(t, platform.OSLinux, linux.OS)
	assert.Equal(t, "x86_64", linux.Arch)
	assert.Equal(t, platform.LibCGnu, linux.LibC)
	assert.Equal(t, 2, linux.GlibcMajor)
	assert.Equal(t, 17, linux.GlibcMinor)

	musl := platform.TripleX8664UnknownLinuxMusl.Platform()
	assert.Equal(t, platform.LibCMusl, musl.LibC)

	mac := platform.TripleAarch64AppleDarwin.Platform()
	assert.Equal(t, platform.OSDarwin, mac.OS)
	assert.Equal(t, 11, mac.MacOSMajor)

	// Aliases resolve before mapping.
	assert.Equal(t, linux, platform.TripleLinux.Platform())
}

func TestTripleManylinuxCompatible(t *testing.T) {
	assert.True(t, platform.TripleX8664UnknownLinuxGnu.ManylinuxCompatible())
	assert.True(t, platform.TripleAarch64UnknownLinuxGnu.ManylinuxCompatible())
	assert.False(t, platform.TripleX8664UnknownLinuxMusl.ManylinuxCompatible())
	assert.False(t, platform.TripleAarch64UnknownLinuxMusl.ManylinuxCompatible())

	// manylinux is a Linux concept; other OSes never claim it.
	assert.False(t, platform.TripleX8664PcWindowsMsvc.ManylinuxCompatible())
	assert.False(t, platform.TripleAarch64AppleDarwin.ManylinuxCompatible())
	assert.False(t, platform.TripleMacOS.ManylinuxCompatible())
}

func TestTripleMarkers(t *testing.T) {
	base := markers.Environment{
		ImplementationName:           "cpython",
		ImplementationVersion:        "3.11.4",
		OSName:                       "posix",
		PlatformMachine:              "x86_64",
		PlatformPythonImplementation: "CPython",
		PlatformRelease:              "6.1.0",
		PlatformSystem:               "Linux",
		PlatformVersion:              "#1 SMP",
		PythonFullVersion:            "3.11.4",
		PythonVersion:                "3.11",
		SysPlatform:                  "linux",
	}

	tests := []struct {
		name    string
		triple  platform.Triple
		system  string
		sysPlat string
		osName  string
		machine string
	}{
		{"linux aarch64", platform.TripleAarch64UnknownLinuxGnu, "Linux", "linux", "posix", "aarch64"},
		{"macos arm64", platform.TripleAarch64AppleDarwin, "Darwin", "darwin", "posix", "arm64"},
		{"macos intel", platform.TripleX8664AppleDarwin, "Darwin", "darwin", "posix", "x86_64"},
		{"windows amd64", platform.TripleX8664PcWindowsMsvc, "Windows", "win32", "nt", "AMD64"},
		{"windows x86", platform.TripleI686PcWindowsMsvc, "Windows", "win32", "nt", "x86"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := tt.triple.Markers(base)

			assert.Equal(t, tt.system, env.PlatformSystem)
			assert.Equal(t, tt.sysPlat, env.SysPlatform)
			assert.Equal(t, tt.osName, env.OSName)
			assert.Equal(t, tt.machine, env.PlatformMachine)

			// Kernel facts from the host do not describe the target.
			assert.Empty(t, env.PlatformRelease)
			assert.Empty(t, env.PlatformVersion)

			// Version and implementation markers pass through.
			assert.Equal(t, base.PythonVersion, env.PythonVersion)
			assert.Equal(t, base.PythonFullVersion, env.PythonFullVersion)
			assert.Equal(t, base.ImplementationName, env.ImplementationName)
		})
	}
}

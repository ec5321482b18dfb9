// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakeyard/pipkit"
	"github.com/snakeyard/pipkit/pkg/interpreter"
	"github.com/snakeyard/pipkit/pkg/platform"
)

var (
	snapshotFile   string
	pythonVersion  string
	pythonPlatform string
	hostPython     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pipkit",
	Short: "Python target environment inspector",
	Long: `pipkit - Python target environment inspector

Computes the wheel compatibility tags and dependency marker environment
for a Python environment, including environments other than the one the
tool runs on. The target defaults to the interpreter described by a
snapshot file and can be retargeted with --python-version and
--python-platform.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&snapshotFile, "snapshot", "", "interpreter snapshot file (YAML)")
	rootCmd.PersistentFlags().StringVar(&pythonVersion, "python-version", "", "target Python version, e.g. 3.9")
	rootCmd.PersistentFlags().StringVar(&pythonPlatform, "python-platform", "", "target platform triple, e.g. x86_64-unknown-linux-gnu")
	rootCmd.PersistentFlags().StringVar(&hostPython, "host-python", "3.12", "assumed host Python version when no snapshot is given")

	// Add commands
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(markersCmd)
	rootCmd.AddCommand(sysconfigCmd)
	rootCmd.AddCommand(versionCmd)
}

// targetInterpreter loads interpreter facts from the snapshot file, or
// falls back to a best-effort probe of the host.
func targetInterpreter() (*pipkit.Interpreter, error) {
	if snapshotFile != "" {
		snap, err := interpreter.LoadSnapshot(snapshotFile)
		if err != nil {
			return nil, err
		}
		return interpreter.New(snap)
	}

	plat, err := platform.Detect()
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}
	return interpreter.New(&interpreter.Snapshot{
		Platform:           plat,
		PythonVersion:      hostPython,
		ImplementationName: "cpython",
	})
}

// overrides parses the target override flags
func overrides() (*pipkit.PythonVersion, *pipkit.Triple, error) {
	var version *pipkit.PythonVersion
	var triple *pipkit.Triple

	if pythonVersion != "" {
		v, err := pipkit.ParsePythonVersion(pythonVersion)
		if err != nil {
			return nil, nil, err
		}
		version = &v
	}
	if pythonPlatform != "" {
		t, err := pipkit.ParseTriple(pythonPlatform)
		if err != nil {
			return nil, nil, err
		}
		triple = &t
	}
	return version, triple, nil
}

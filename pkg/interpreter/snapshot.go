// pkg/interpreter/snapshot.go
package interpreter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snakeyard/pipkit/pkg/markers"
	"github.com/snakeyard/pipkit/pkg/platform"
)

// Snapshot is the serialized form of interpreter facts, as produced by
// probing a real Python interpreter. A snapshot records everything the
// resolvers need so that resolution never has to re-inspect the
// interpreter, and can run against an interpreter that is not present on
// this machine at all.
type Snapshot struct {
	Platform              platform.Platform    `yaml:"platform"`
	PythonVersion         string               `yaml:"python_version"`
	ImplementationName    string               `yaml:"implementation_name"`
	ImplementationVersion string               `yaml:"implementation_version"`
	GilDisabled           bool                 `yaml:"gil_disabled"`
	ManylinuxCompatible   *bool                `yaml:"manylinux_compatible,omitempty"`
	Markers               *markers.Environment `yaml:"markers,omitempty"`
}

// LoadSnapshot reads a snapshot from a YAML file
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes a snapshot from YAML
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

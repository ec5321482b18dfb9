// internal/cli/markers.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakeyard/pipkit"
	"github.com/snakeyard/pipkit/pkg/markers"
)

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Print the marker environment for the target environment",
	Long: `Print the PEP 508 marker environment that dependency conditions are
evaluated against for the target environment.`,
	Args: cobra.NoArgs,
	RunE: runMarkers,
}

func runMarkers(cmd *cobra.Command, args []string) error {
	interp, err := targetInterpreter()
	if err != nil {
		return fmt.Errorf("loading interpreter facts: %w", err)
	}

	version, triple, err := overrides()
	if err != nil {
		return err
	}

	env := pipkit.ResolutionMarkers(version, triple, interp)
	for _, name := range markers.Names() {
		value, _ := env.Get(name)
		fmt.Printf("%s = %q\n", name, value)
	}
	return nil
}

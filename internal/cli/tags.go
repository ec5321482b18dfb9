// internal/cli/tags.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakeyard/pipkit"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print compatibility tags for the target environment",
	Long: `Print the ordered wheel compatibility tags for the target environment,
most preferred first.`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	interp, err := targetInterpreter()
	if err != nil {
		return fmt.Errorf("loading interpreter facts: %w", err)
	}

	version, triple, err := overrides()
	if err != nil {
		return err
	}

	resolved, err := pipkit.ResolutionTags(version, triple, interp)
	if err != nil {
		return &pipkit.Error{Op: "resolving tags", Target: targetName(version, triple), Err: err}
	}

	for _, tag := range resolved.List() {
		fmt.Println(tag)
	}
	return nil
}

// targetName describes the override combination for error messages
func targetName(version *pipkit.PythonVersion, triple *pipkit.Triple) string {
	switch {
	case version != nil && triple != nil:
		return fmt.Sprintf("for %s on %s", version, *triple)
	case version != nil:
		return fmt.Sprintf("for %s", version)
	case triple != nil:
		return fmt.Sprintf("on %s", *triple)
	}
	return ""
}

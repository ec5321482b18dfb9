// internal/cli/sysconfig.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakeyard/pipkit/pkg/sysconfig"
)

var rulesFile string

var sysconfigCmd = &cobra.Command{
	Use:   "sysconfig [key] [value]",
	Short: "Patch a sysconfig value for the target layout",
	Long: `Apply the sysconfig replacement rules to a recorded configuration value
and print the patched result. Uses the built-in rule table unless --rules
points at a YAML rule file.`,
	Args: cobra.ExactArgs(2),
	RunE: runSysconfig,
}

func init() {
	sysconfigCmd.Flags().StringVar(&rulesFile, "rules", "", "replacement rule file (YAML)")
}

func runSysconfig(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	rules := sysconfig.DefaultRules
	if rulesFile != "" {
		loaded, err := sysconfig.LoadRules(rulesFile)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		rules = loaded
	}

	fmt.Println(rules.PatchValue(key, value))
	return nil
}

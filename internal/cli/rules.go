package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule tables as YAML",
	Long: "Prints every rule the pipeline will apply, in application order,\n" +
		"including extra replacements loaded from the config file.",
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	out, err := yaml.Marshal(a.rules.Dump())
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

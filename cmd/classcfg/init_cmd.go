package main

import (
	"fmt"
	"os"

	"github.com/rota-app/classcfg"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classcfg.yaml config file",
	Long:  `Create a .classcfg.yaml file in the current directory holding the default content configuration.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(configFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		record, err := renderYAML(classcfg.Default())
		if err != nil {
			return err
		}

		data := append([]byte(configHeader), record...)
		data = append(data, []byte(configFooter)...)
		if err := os.WriteFile(configFileName, data, 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
		return nil
	},
}

const configHeader = `# classcfg configuration
#
# content: templates scanned for utility-class usage (doublestar globs,
#          relative to --root)
# theme.extend: additive design-token overrides
# plugins: plugin references loaded before generation (built-in: alpine)

`

const configFooter = `
# Tool settings
# output:
#   format: text   # text | json
# verbose: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

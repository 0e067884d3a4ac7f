package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssguide.yaml config file",
	Long:  `Create a .cssguide.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssguide.yaml"); err == nil && !force {
			return fmt.Errorf(".cssguide.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssguide.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssguide.yaml")
		return nil
	},
}

const defaultConfig = `# cssguide configuration
# Docs: https://github.com/j-d-b/css-guide

# Shared settings
variant: double-underscore  # dash-modifier | double-underscore | bootstrap-hybrid | bootstrap-hybrid-ac
strict: false
verbose: false

# Extra namespace prefixes (prefix: namespace)
# namespaces:
#   qa-: js-hook

# Linting settings
lint:
  paths:
    - "**/*.css"
    - "**/*.scss"
    - "**/*.html"
    - "**/*.templ"
  output-format: issues    # issues | summary | full | json | markdown
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

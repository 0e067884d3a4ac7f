package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssguide",
	Short: "Class-name linter for namespaced BEM conventions",
	Long: `Validate CSS class names against the guide's naming conventions.
Classes are parsed into namespace prefix, block, element and modifier,
then checked against the rules of the selected naming variant.`,
	// Default behavior: run lint when no subcommand is given.
	// loadConfig must run here because PreRunE of lintCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("variant", "double-underscore", "Naming variant: dash-modifier|double-underscore|bootstrap-hybrid|bootstrap-hybrid-ac")
	rootCmd.PersistentFlags().Bool("strict", false, "Treat advisory violations as errors and exit 1 on any issue")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssguide.yaml", "Config file path")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

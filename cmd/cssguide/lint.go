package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cssguide "github.com/j-d-b/css-guide"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint class names in stylesheets and templates",
	Long: `Scan files for CSS class names and validate each against the
selected naming variant. Malformed names are errors, namespace rule
breaks are warnings, and styled js- hooks are advisories.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.css",
		"**/*.scss",
		"**/*.html",
		"**/*.templ",
	}, "File patterns to scan for class names")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bemlint) suffix on issues")
}

// runLint is shared between `cssguide lint` and the bare `cssguide`
// invocation.
func runLint() error {
	config := buildLintConfig()

	result, err := cssguide.Lint(config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssguide.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		cssguide.WriteOutput(os.Stdout, result, format, config)
	}

	// Exit code logic - "Soft Gate" approach: only errors fail the build
	// unless --strict, which fails on any issue.
	if config.Strict {
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		os.Exit(1)
	}

	return nil
}

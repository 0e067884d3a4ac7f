package cssguide

import (
	"io"
	"os"
)

// OutputFormat represents the linter output format.
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and top offenders only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + top offenders
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format based on flags.
// Issues-only is the default, following golangci-lint's UX.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet wins (exit code only; output suppressed by caller)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return OutputIssues
}

// WriteOutput writes the lint result in the specified format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config Config) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		useColors := shouldUseColors(config)
		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintStatistics(*result)
		verbose.PrintConformance(*result)
		verbose.PrintTopOffenders(*result)
		verbose.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.showHint = false
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintConformance(*result)
		verbose.PrintTopOffenders(*result)
		verbose.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}
	}
}

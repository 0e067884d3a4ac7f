package cssguide

import (
	"fmt"
	"io"
	"time"
)

// WriteMarkdown writes the lint result as a shareable Markdown report.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("# Class Naming Lint Report\n\n")
	p("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	p("## Summary\n\n")
	p("| Metric | Value |\n")
	p("|--------|-------|\n")
	p("| Files scanned | %d |\n", result.FilesScanned)
	p("| Classes checked | %d |\n", result.TokensChecked)
	p("| Conforming | %d (%.1f%%) |\n", result.ValidTokens, result.ConformancePercentage)
	p("| Errors | %d |\n", result.ErrorCount)
	p("| Warnings | %d |\n\n", result.WarningCount)

	if len(result.Issues) > 0 {
		p("## Issues\n\n")
		p("| Location | Severity | Message |\n")
		p("|----------|----------|--------|\n")
		for _, issue := range result.Issues {
			severity := issue.Severity
			if severity == SeverityInfo {
				severity = "info"
			}
			p("| %s:%d:%d | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				severity, issue.Text)
		}
		p("\n")
	}

	if len(result.TopOffenders) > 0 {
		p("## Top Offenders\n\n")
		p("| Class | Occurrences | Violation |\n")
		p("|-------|-------------|----------|\n")
		for _, offender := range result.TopOffenders {
			p("| `%s` | %d | %s |\n",
				offender.ClassName, offender.Occurrences, offender.Message)
		}
		p("\n")
	}

	if result.TruncatedCount > 0 {
		p("_%d issues truncated by output limits._\n", result.TruncatedCount)
	}

	return err
}
